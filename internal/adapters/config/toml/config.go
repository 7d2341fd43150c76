package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDirName   = "mlp"
	configFileName  = "config.toml"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
	envPrefix       = "MLP"
)

const (
	KeyConfigFile       = "config"
	KeyAPIRoot          = "api_root"
	KeyHealthInterval   = "health_interval"
	KeyRequestTimeout   = "request_timeout"
	KeyDefaultBatchSize = "default_batch_size"
	KeyLogLevel         = "log_level"
	keyVersion          = "version"
)

const (
	DefaultAPIRoot          = "http://localhost:5000/api"
	DefaultHealthInterval   = 30 * time.Second
	DefaultRequestTimeout   = 30 * time.Second
	DefaultDefaultBatchSize = "10"
	DefaultLogLevel         = "info"
)

var ErrConfigExists = errors.New("config file already exists")

// Config is the effective client configuration.
type Config struct {
	APIRoot          string
	HealthInterval   time.Duration
	RequestTimeout   time.Duration
	DefaultBatchSize string
	LogLevel         string

	// Path is the config file that was read, empty when none was found.
	Path string
}

// File returns cfg in its on-disk form.
func (c Config) File() File {
	file := File{
		APIRoot:          c.APIRoot,
		HealthInterval:   c.HealthInterval.String(),
		RequestTimeout:   c.RequestTimeout.String(),
		DefaultBatchSize: c.DefaultBatchSize,
		LogLevel:         c.LogLevel,
	}
	file.applyDefaults()
	return file
}

func Defaults() Config {
	return Config{
		APIRoot:          DefaultAPIRoot,
		HealthInterval:   DefaultHealthInterval,
		RequestTimeout:   DefaultRequestTimeout,
		DefaultBatchSize: DefaultDefaultBatchSize,
		LogLevel:         DefaultLogLevel,
	}
}

// DefaultPath is ~/.config/mlp/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", configDirName, configFileName), nil
}

// Load resolves the configuration from, lowest precedence first: built-in
// defaults, the config file, MLP_ environment variables and values set
// on cfg directly (bound flags). KeyConfigFile selects an explicit file;
// without it a missing default file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	defaults := Defaults()
	cfg.SetDefault(KeyAPIRoot, defaults.APIRoot)
	cfg.SetDefault(KeyHealthInterval, defaults.HealthInterval)
	cfg.SetDefault(KeyRequestTimeout, defaults.RequestTimeout)
	cfg.SetDefault(KeyDefaultBatchSize, defaults.DefaultBatchSize)
	cfg.SetDefault(KeyLogLevel, defaults.LogLevel)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	cfg.AutomaticEnv()
	if err := cfg.BindEnv(KeyDefaultBatchSize, envPrefix+"_BATCH_SIZE", envPrefix+"_DEFAULT_BATCH_SIZE"); err != nil {
		return Config{}, fmt.Errorf("bind batch size env: %w", err)
	}

	if explicit := cfg.GetString(KeyConfigFile); explicit != "" {
		cfg.SetConfigFile(explicit)
		cfg.SetConfigType(configType)
	} else {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Dir(defaultPath))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := validateVersion(cfg.GetInt(keyVersion)); err != nil {
		return Config{}, err
	}

	loaded := Config{
		APIRoot:          strings.TrimSpace(cfg.GetString(KeyAPIRoot)),
		HealthInterval:   cfg.GetDuration(KeyHealthInterval),
		RequestTimeout:   cfg.GetDuration(KeyRequestTimeout),
		DefaultBatchSize: strings.TrimSpace(cfg.GetString(KeyDefaultBatchSize)),
		LogLevel:         strings.ToLower(strings.TrimSpace(cfg.GetString(KeyLogLevel))),
		Path:             cfg.ConfigFileUsed(),
	}

	if loaded.APIRoot == "" {
		return Config{}, errors.New("api_root is empty")
	}
	if loaded.HealthInterval <= 0 {
		return Config{}, fmt.Errorf("health_interval must be a positive duration, got %q", cfg.GetString(KeyHealthInterval))
	}
	if loaded.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request_timeout must be a positive duration, got %q", cfg.GetString(KeyRequestTimeout))
	}

	return loaded, nil
}

// WriteDefault writes the default configuration to path. An existing file
// is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	return writeFile(path, Defaults().File())
}

func writeFile(path string, file File) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

// Encode renders file as TOML text.
func Encode(file File) ([]byte, error) {
	file.applyDefaults()
	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
