// Package fakeapi is an in-memory pipeline service for tests. It serves
// the same routes as the real gateway under /api and keeps its state in
// process, so a test can assert on what a client stored.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/labstack/echo/v4"
)

// MinTrainingRecords is the smallest stored set training accepts.
const MinTrainingRecords = 5

type failure struct {
	status int
	body   any
}

type Service struct {
	mu       sync.Mutex
	health   map[string]domain.ServiceStatus
	services []string
	source   []domain.DataRecord
	stored   []domain.DataRecord
	metrics  *domain.TrainMetrics
	failures map[string]failure
	calls    map[string]int

	echo *echo.Echo
}

func New() *Service {
	s := &Service{
		health: map[string]domain.ServiceStatus{
			"collector":  domain.ServiceHealthy,
			"storage":    domain.ServiceHealthy,
			"ml_service": domain.ServiceHealthy,
		},
		services: []string{"collector", "storage", "ml_service"},
		source:   Records(20),
		failures: map[string]failure{},
		calls:    map[string]int{},
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.intercept)

	api := e.Group("/api")
	api.GET("/system/health", s.getHealth)
	api.GET("/collector/batch", s.getBatch)
	api.POST("/storage/data", s.postData)
	api.GET("/storage/data", s.getData)
	api.DELETE("/storage/data", s.deleteData)
	api.POST("/ml/train", s.postTrain)
	api.POST("/ml/predict", s.postPredict)
	api.GET("/ml/model/info", s.getModelInfo)

	s.echo = e
	return s
}

// Start serves a new Service until the test ends and returns it with the
// API root clients should use.
func Start(t testing.TB) (*Service, string) {
	t.Helper()

	s := New()
	server := httptest.NewServer(s)
	t.Cleanup(server.Close)
	return s, server.URL + "/api"
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Records builds n collector records with nested features and targets
// cycling through three classes.
func Records(n int) []domain.DataRecord {
	classes := []string{"setosa", "versicolor", "virginica"}
	records := make([]domain.DataRecord, 0, n)
	for i := 1; i <= n; i++ {
		raw := fmt.Sprintf(
			`{"id":%d,"timestamp":"2026-02-14T09:%02d:00","features":{"feature1":%d.1,"feature2":%d.5,"feature3":%d.4,"feature4":0.%d,"target":%q}}`,
			i, i%60, 4+i%3, 2+i%2, 1+i%5, i%10, classes[i%len(classes)],
		)
		record, err := domain.ParseDataRecord([]byte(raw))
		if err != nil {
			panic(err)
		}
		records = append(records, record)
	}
	return records
}

// FailWith makes every request to route ("GET /api/storage/data") answer
// with status and body until Recover is called.
func (s *Service) FailWith(route string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body}
}

func (s *Service) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, route)
}

func (s *Service) SetHealth(service string, status domain.ServiceStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.health[service]; !ok {
		s.services = append(s.services, service)
	}
	s.health[service] = status
}

// Seed replaces the stored records.
func (s *Service) Seed(records []domain.DataRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored = append([]domain.DataRecord(nil), records...)
}

func (s *Service) Stored() []domain.DataRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.DataRecord(nil), s.stored...)
}

// Calls reports how many requests reached route.
func (s *Service) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

func (s *Service) intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		route := c.Request().Method + " " + c.Path()

		s.mu.Lock()
		s.calls[route]++
		f, failing := s.failures[route]
		s.mu.Unlock()

		if failing {
			if text, ok := f.body.(string); ok {
				return c.String(f.status, text)
			}
			return c.JSON(f.status, f.body)
		}
		return next(c)
	}
}

// getHealth writes services in registration order, which a map would lose.
func (s *Service) getHealth(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var body bytes.Buffer
	body.WriteString(`{"status":{`)
	for i, name := range s.services {
		if i > 0 {
			body.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		value, _ := json.Marshal(s.health[name])
		body.Write(key)
		body.WriteByte(':')
		body.Write(value)
	}
	body.WriteString(`}}`)

	return c.JSONBlob(http.StatusOK, body.Bytes())
}

func (s *Service) getBatch(c echo.Context) error {
	size := 10
	if raw := c.QueryParam("batch_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("invalid batch_size %q", raw)})
		}
		size = n
	}

	s.mu.Lock()
	batch := s.source[:min(size, len(s.source))]
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"data": batch, "size": len(batch)})
}

func (s *Service) postData(c echo.Context) error {
	var payload struct {
		Data []domain.DataRecord `json:"data"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	if len(payload.Data) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No data provided"})
	}

	s.mu.Lock()
	s.stored = append(s.stored, payload.Data...)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "count": len(payload.Data)})
}

func (s *Service) getData(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": s.Stored()})
}

func (s *Service) deleteData(c echo.Context) error {
	s.mu.Lock()
	s.stored = nil
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "All data cleared"})
}

func (s *Service) postTrain(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stored) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No training data available"})
	}
	if len(s.stored) < MinTrainingRecords {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "insufficient data"})
	}

	classes := distinctTargets(s.stored)
	s.metrics = &domain.TrainMetrics{
		TrainAccuracy: 0.988,
		TestAccuracy:  0.9,
		Samples:       len(s.stored),
		ModelType:     "RandomForestClassifier",
		Classes:       classes,
		TrainedAt:     "2026-02-14T09:30:00",
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Model trained successfully",
		"metrics": s.metrics,
	})
}

func (s *Service) postPredict(c echo.Context) error {
	var payload struct {
		Features []json.RawMessage `json:"features"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil || len(payload.Features) != len(domain.FeatureNames) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "features must be a list of 4 values"})
	}
	for _, raw := range payload.Features {
		var v *float64
		if err := json.Unmarshal(raw, &v); err != nil || v == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "features must be numeric"})
		}
	}

	s.mu.Lock()
	metrics := s.metrics
	s.mu.Unlock()

	if metrics == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Model not trained. Please train the model first."})
	}

	probabilities := make([]float64, len(metrics.Classes))
	if len(probabilities) > 0 {
		probabilities[0] = 1
	}
	if len(probabilities) > 1 {
		probabilities[0], probabilities[1] = 0.7, 0.3
	}

	var predicted domain.Label
	if len(metrics.Classes) > 0 {
		predicted = metrics.Classes[0]
	}

	return c.JSON(http.StatusOK, echo.Map{
		"predictions":   []domain.Label{predicted},
		"probabilities": [][]float64{probabilities},
		"class_labels":  metrics.Classes,
	})
}

func (s *Service) getModelInfo(c echo.Context) error {
	s.mu.Lock()
	metrics := s.metrics
	s.mu.Unlock()

	if metrics == nil {
		return c.JSON(http.StatusOK, echo.Map{"status": domain.ModelStatusNoModel, "message": "No model trained"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": domain.ModelStatusLoaded, "metadata": metrics})
}

func distinctTargets(records []domain.DataRecord) []domain.Label {
	seen := map[domain.Label]bool{}
	var labels []domain.Label
	for _, record := range records {
		target, ok := record.Target()
		if !ok || seen[target] {
			continue
		}
		seen[target] = true
		labels = append(labels, target)
	}
	return labels
}
