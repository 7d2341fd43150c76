package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type ServiceStatus string

const (
	ServiceHealthy   ServiceStatus = "healthy"
	ServiceUnhealthy ServiceStatus = "unhealthy"
)

// StatusClass groups a reported service status for display.
type StatusClass int

const (
	StatusClassUnknown StatusClass = iota
	StatusClassHealthy
	StatusClassUnhealthy
)

func (s ServiceStatus) Class() StatusClass {
	switch s {
	case ServiceHealthy:
		return StatusClassHealthy
	case ServiceUnhealthy:
		return StatusClassUnhealthy
	default:
		return StatusClassUnknown
	}
}

type HealthReport struct {
	Services map[string]ServiceStatus `json:"status"`
	// Order lists service names in the order the service reported them.
	Order []string `json:"-"`
}

// Names returns service names in reported order. Services missing from
// Order follow, sorted.
func (h HealthReport) Names() []string {
	names := make([]string, 0, len(h.Services))
	listed := make(map[string]bool, len(h.Order))
	for _, name := range h.Order {
		if _, ok := h.Services[name]; ok && !listed[name] {
			listed[name] = true
			names = append(names, name)
		}
	}

	rest := make([]string, 0, len(h.Services)-len(names))
	for name := range h.Services {
		if !listed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// UnmarshalJSON reads {"status": {...}} and remembers the key order of
// the status object. A missing or null status leaves Services nil.
func (h *HealthReport) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Status json.RawMessage `json:"status"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	h.Services, h.Order = nil, nil
	if len(envelope.Status) == 0 || bytes.Equal(envelope.Status, []byte("null")) {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(envelope.Status))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("health status: expected an object, got %v", token)
	}

	services := map[string]ServiceStatus{}
	var order []string
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		name, _ := token.(string)

		var status ServiceStatus
		if err := decoder.Decode(&status); err != nil {
			return fmt.Errorf("health status %q: %w", name, err)
		}
		if _, seen := services[name]; !seen {
			order = append(order, name)
		}
		services[name] = status
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}

	h.Services, h.Order = services, order
	return nil
}

type CollectedBatch struct {
	Count   int          `json:"count"`
	Records []DataRecord `json:"data"`
}

type SaveReceipt struct {
	Count int `json:"count"`
}

type StoredRecords struct {
	Records []DataRecord `json:"data"`
}

type ClearReceipt struct {
	Message string `json:"message"`
}

type TrainMetrics struct {
	TrainAccuracy float64 `json:"train_accuracy"`
	TestAccuracy  float64 `json:"test_accuracy"`
	Samples       int     `json:"n_samples,omitempty"`
	ModelType     string  `json:"model_type,omitempty"`
	Classes       []Label `json:"classes,omitempty"`
	TrainedAt     string  `json:"training_date,omitempty"`
}

type TrainReport struct {
	Metrics TrainMetrics `json:"metrics"`
}

type Prediction struct {
	PredictedClass Label     `json:"predicted_class"`
	ClassLabels    []Label   `json:"class_labels"`
	Probabilities  []float64 `json:"probabilities"`
}

const (
	ModelStatusLoaded  = "loaded"
	ModelStatusNoModel = "no_model"
)

type ModelInfo struct {
	Status   string        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Metadata *TrainMetrics `json:"metadata,omitempty"`
}

func (m ModelInfo) Loaded() bool {
	return strings.EqualFold(m.Status, ModelStatusLoaded)
}
