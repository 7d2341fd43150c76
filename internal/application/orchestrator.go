package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/bnema/mlops-panel/internal/ports"
)

// DefaultHealthInterval is the period of the recurring health poll.
const DefaultHealthInterval = 30 * time.Second

const (
	noBatchNotice   = "No data collected yet. Please collect data first."
	confirmClearAsk = "Are you sure you want to clear all data from storage?"
)

// ErrNotConfirmed is returned by Clear when the user declines.
var ErrNotConfirmed = errors.New("clear storage not confirmed")

// Orchestrator runs one routine per user intent. Each routine calls the
// pipeline, updates the session when it owns state, renders the panel and
// records exactly one activity entry for the outcome. Routines do not
// exclude each other: when two overlap, the last response to arrive is the
// one left on screen.
type Orchestrator struct {
	api     ports.PipelineAPI
	session *Session
	view    ports.View
	prompt  ports.Prompter
	logger  *slog.Logger
}

func NewOrchestrator(api ports.PipelineAPI, session *Session, view ports.View, prompt ports.Prompter, logger *slog.Logger) *Orchestrator {
	if session == nil {
		session = NewViewSession(view, nil)
	}
	if view == nil {
		view = discardView{}
	}
	if prompt == nil {
		prompt = declinePrompter{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Orchestrator{
		api:     api,
		session: session,
		view:    view,
		prompt:  prompt,
		logger:  logger,
	}
}

// NewViewSession creates a session whose activity log re-renders into
// view after every change.
func NewViewSession(view ports.View, clock ports.Clock) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	var onChange func([]domain.ActivityEntry)
	if view != nil {
		onChange = func(entries []domain.ActivityEntry) {
			view.ShowActivity(RenderActivity(entries))
		}
	}

	return NewSession(domain.NewActivityLog(clock.Now, onChange))
}

func (o *Orchestrator) Session() *Session {
	return o.session
}

// Start performs the initial health check and storage load concurrently.
func (o *Orchestrator) Start(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = o.CheckHealth(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = o.Load(ctx)
	}()
	wg.Wait()
}

func (o *Orchestrator) CheckHealth(ctx context.Context) error {
	result := o.api.CheckHealth(ctx)
	o.view.ShowPanel(RenderHealth(result))

	if err := result.Err(); err != nil {
		return o.fail("health", "Health check failed: ", err)
	}

	o.record("System health checked", domain.ActivityInfo)
	return nil
}

// RunHealthPoll checks health now and then every interval until ctx ends.
// Each tick starts its own check, so a slow check never delays the next.
func (o *Orchestrator) RunHealthPoll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	var inflight sync.WaitGroup
	launch := func() {
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			_ = o.CheckHealth(ctx)
		}()
	}

	launch()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			inflight.Wait()
			return
		case <-ticker.C:
			launch()
		}
	}
}

// Collect fetches a batch of batchSize records (passed through as typed)
// and makes it the session batch, then redraws the charts from it.
func (o *Orchestrator) Collect(ctx context.Context, batchSize string) error {
	result := o.api.Collect(ctx, batchSize)
	batch, err := result.Unwrap()
	if err != nil {
		o.view.ShowPanel(RenderCollected(result))
		return o.fail("collect", "Data collection failed: ", err)
	}

	o.session.ReplaceBatch(batch.Records)
	o.view.ShowPanel(RenderCollected(result))
	o.drawCharts()
	o.record(fmt.Sprintf("Collected %d data records", batch.Count), domain.ActivityInfo)
	return nil
}

// Save stores the session batch and reloads the storage view. Without a
// batch it only shows a notice: no request, no activity entry.
func (o *Orchestrator) Save(ctx context.Context) error {
	batch, ok := o.session.Batch()
	if !ok {
		o.prompt.Notify(noBatchNotice)
		o.logger.Debug("save skipped", "reason", "no collected batch")
		return &domain.LocalGuardFailure{Operation: "save", Notice: noBatchNotice}
	}

	result := o.api.SaveBatch(ctx, batch.Records())
	o.view.ShowPanel(RenderSaved(result))

	receipt, err := result.Unwrap()
	if err != nil {
		return o.fail("save", "Storage save failed: ", err)
	}

	o.record(fmt.Sprintf("Saved %d records to storage", receipt.Count), domain.ActivityInfo)
	_ = o.Load(ctx)
	return nil
}

// Load replaces the storage view with the service's current contents.
func (o *Orchestrator) Load(ctx context.Context) error {
	result := o.api.LoadStored(ctx)
	for _, view := range RenderStorage(result) {
		o.view.ShowPanel(view)
	}

	if err := result.Err(); err != nil {
		return o.fail("load", "Storage load failed: ", err)
	}

	o.record("Loaded data from storage", domain.ActivityInfo)
	return nil
}

// Clear wipes stored data after the user confirms. A declined or failed
// confirmation issues no request and changes nothing.
func (o *Orchestrator) Clear(ctx context.Context) error {
	confirmed, err := o.prompt.Confirm(ctx, confirmClearAsk)
	if err != nil {
		return fmt.Errorf("confirm clear storage: %w", err)
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	result := o.api.ClearStored(ctx)
	for _, view := range RenderCleared(result) {
		o.view.ShowPanel(view)
	}

	if err := result.Err(); err != nil {
		return o.fail("clear", "Storage clear failed: ", err)
	}

	o.record("Storage cleared", domain.ActivityWarning)
	return nil
}

func (o *Orchestrator) Train(ctx context.Context) error {
	result := o.api.Train(ctx)
	o.view.ShowPanel(RenderTrain(result))

	if err := result.Err(); err != nil {
		return o.fail("train", "Model training failed: ", err)
	}

	o.record("Model trained successfully", domain.ActivityInfo)
	return nil
}

// Predict parses the four raw inputs and sends them as they come out;
// an unparseable input becomes NaN.
func (o *Orchestrator) Predict(ctx context.Context, raw [4]string) error {
	result := o.api.Predict(ctx, ParseFeatures(raw))
	o.view.ShowPanel(RenderPrediction(result))

	prediction, err := result.Unwrap()
	if err != nil {
		return o.fail("predict", "Prediction failed: ", err)
	}

	o.record("Prediction made: class "+prediction.PredictedClass.String(), domain.ActivityInfo)
	return nil
}

func (o *Orchestrator) ModelInfo(ctx context.Context) error {
	result := o.api.ModelInfo(ctx)
	o.view.ShowPanel(RenderModelInfo(result))

	if err := result.Err(); err != nil {
		return o.fail("model-info", "Model info failed: ", err)
	}

	o.record("Model info loaded", domain.ActivityInfo)
	return nil
}

// RefreshCharts redraws the charts from the session batch. It does
// nothing when no batch has been collected.
func (o *Orchestrator) RefreshCharts() {
	if !o.drawCharts() {
		return
	}
	o.record("Charts updated", domain.ActivityInfo)
}

func (o *Orchestrator) drawCharts() bool {
	batch, ok := o.session.Batch()
	if !ok {
		return false
	}

	o.view.ShowCharts(BuildCharts(batch))
	return true
}

func (o *Orchestrator) record(message string, kind domain.ActivityKind) {
	o.session.Log().Record(message, kind)
}

func (o *Orchestrator) fail(action, prefix string, err error) error {
	o.logger.Debug("action failed",
		"action", action,
		"transport", domain.IsTransportFailure(err),
		"domain", domain.IsDomainFailure(err),
		"error", err,
	)
	o.record(prefix+domain.FailureReason(err), domain.ActivityError)
	return err
}

// ParseFeatures converts the raw prediction inputs to numbers. Each input
// is read up to the end of its longest leading decimal literal, so "5.1cm"
// is 5.1 and "0x10" is 0. Inputs with no numeric prefix become NaN rather
// than an error; literals out of range become ±Inf.
func ParseFeatures(raw [4]string) [4]domain.Feature {
	var features [4]domain.Feature
	for i, value := range raw {
		features[i] = domain.Feature(parseLeadingFloat(value))
	}
	return features
}

func parseLeadingFloat(value string) float64 {
	literal := leadingDecimal(strings.TrimLeftFunc(value, unicode.IsSpace))
	if literal == "" {
		return math.NaN()
	}

	parsed, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return parsed
}

// leadingDecimal returns the longest prefix of s of the form
// [sign](Infinity | digits[.digits][exponent] | .digits[exponent]).
func leadingDecimal(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	end := skipDigits(s, i)
	digits := end - i
	if end < len(s) && s[end] == '.' {
		fracEnd := skipDigits(s, end+1)
		if digits > 0 || fracEnd > end+1 {
			digits += fracEnd - end - 1
			end = fracEnd
		}
	}
	if digits == 0 {
		return ""
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if expEnd := skipDigits(s, exp); expEnd > exp {
			end = expEnd
		}
	}
	return s[:end]
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

type discardView struct{}

func (discardView) ShowPanel(domain.PanelView)         {}
func (discardView) ShowCharts([]domain.ChartSpec)      {}
func (discardView) ShowActivity([]domain.ActivityLine) {}

type declinePrompter struct{}

func (declinePrompter) Confirm(context.Context, string) (bool, error) { return false, nil }
func (declinePrompter) Notify(string)                                 {}
