package application

import (
	"errors"
	"testing"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHealthKeepsReportedOrderAndColorsByStatus(t *testing.T) {
	view := RenderHealth(domain.Success(domain.HealthReport{
		Services: map[string]domain.ServiceStatus{
			"trainer":   "degraded",
			"collector": domain.ServiceHealthy,
		},
		Order: []string{"trainer", "collector"},
	}))

	require.Len(t, view.Items, 2)
	assert.Equal(t, domain.ViewItem{Label: "trainer", Value: "degraded", Tone: domain.ToneDanger}, view.Items[0])
	assert.Equal(t, domain.ViewItem{Label: "collector", Value: "healthy", Tone: domain.ToneSuccess}, view.Items[1])
}

func TestRenderHealthSortsUnorderedServices(t *testing.T) {
	view := RenderHealth(domain.Success(domain.HealthReport{Services: map[string]domain.ServiceStatus{
		"trainer":   "degraded",
		"collector": domain.ServiceHealthy,
	}}))

	require.Len(t, view.Items, 2)
	assert.Equal(t, "collector", view.Items[0].Label)
	assert.Equal(t, "trainer", view.Items[1].Label)
}

func TestRenderHealthFailure(t *testing.T) {
	view := RenderHealth(domain.Failure[domain.HealthReport](domain.NewTransportFailure("health", errors.New("dial tcp: refused"))))

	assert.Equal(t, domain.ToneDanger, view.Tone)
	assert.Equal(t, []string{"Error checking system health: dial tcp: refused"}, view.Lines)
}

func TestRenderStorageTruncatesLongFeatures(t *testing.T) {
	record, err := domain.ParseDataRecord([]byte(`{"id":"x","features":{"feature1":1.123456789,"feature2":2.123456789,"feature3":3.123456789,"feature4":4.123456789}}`))
	require.NoError(t, err)

	views := RenderStorage(domain.Success(domain.StoredRecords{Records: []domain.DataRecord{record}}))
	require.Len(t, views, 2)

	table := views[1].Table
	require.NotNil(t, table)
	assert.Equal(t, []string{"ID", "Features", "Timestamp"}, table.Header)
	require.Len(t, table.Rows, 1)

	features := table.Rows[0][1]
	assert.Equal(t, record.FeaturesJSON()[:featurePreviewWidth]+"...", features)
	assert.Empty(t, table.Footer)
}

func TestRenderStorageAlwaysEndsFeaturesWithEllipsis(t *testing.T) {
	record, err := domain.ParseDataRecord([]byte(`{"id":7,"features":{"feature1":1}}`))
	require.NoError(t, err)

	views := RenderStorage(domain.Success(domain.StoredRecords{Records: []domain.DataRecord{record}}))
	require.Len(t, views, 2)
	require.Len(t, views[1].Table.Rows, 1)
	assert.Equal(t, `{"feature1":1}...`, views[1].Table.Rows[0][1])
}

func TestRenderStorageFailureLeavesDataPanel(t *testing.T) {
	views := RenderStorage(domain.Failure[domain.StoredRecords](domain.NewDomainFailure("load", "storage offline")))

	require.Len(t, views, 1)
	assert.Equal(t, domain.PanelStorageInfo, views[0].Panel)
	assert.Equal(t, []string{"Error loading storage data: storage offline"}, views[0].Lines)
}

func TestRenderPredictionMissingProbability(t *testing.T) {
	view := RenderPrediction(domain.Success(domain.Prediction{
		PredictedClass: "1",
		ClassLabels:    []domain.Label{"0", "1", "2"},
		Probabilities:  []float64{0.05, 0.95},
	}))

	assert.Equal(t, []string{"Class: 1", "Probabilities:", "0: 5.00%", "1: 95.00%", "2: n/a"}, view.Lines)
}

func TestRenderPredictionTransportFailureIsPrefixed(t *testing.T) {
	view := RenderPrediction(domain.Failure[domain.Prediction](domain.NewTransportFailuref("predict", "status %d: %s", 502, "bad gateway")))

	assert.Equal(t, []string{"Error making prediction: status 502: bad gateway"}, view.Lines)
}

func TestRenderModelInfo(t *testing.T) {
	missing := RenderModelInfo(domain.Success(domain.ModelInfo{Status: domain.ModelStatusNoModel, Message: "No model trained yet"}))
	assert.Equal(t, domain.ToneWarning, missing.Tone)
	assert.Equal(t, "No model trained", missing.Title)
	assert.Equal(t, []string{"No model trained yet"}, missing.Lines)

	loaded := RenderModelInfo(domain.Success(domain.ModelInfo{
		Status: domain.ModelStatusLoaded,
		Metadata: &domain.TrainMetrics{
			TrainAccuracy: 1,
			TestAccuracy:  0.95,
			Samples:       150,
			ModelType:     "RandomForest",
			TrainedAt:     "2026-02-14T10:00:00",
		},
	}))
	assert.Equal(t, "Model loaded", loaded.Title)
	assert.Equal(t, []string{
		"Samples: 150, model: RandomForest",
		"Accuracy: Train=1.000, Test=0.950",
		"Trained at: 2026-02-14T10:00:00",
	}, loaded.Lines)
}

func TestRenderActivityMapsSeverity(t *testing.T) {
	lines := RenderActivity([]domain.ActivityEntry{
		{Timestamp: "10:00:03", Message: "boom", Kind: domain.ActivityError},
		{Timestamp: "10:00:02", Message: "careful", Kind: domain.ActivityWarning},
		{Timestamp: "10:00:01", Message: "ok", Kind: domain.ActivityInfo},
	})

	require.Len(t, lines, 3)
	assert.Equal(t, domain.SeverityDanger, lines[0].Severity)
	assert.Equal(t, domain.SeverityInfo, lines[1].Severity)
	assert.Equal(t, domain.SeverityInfo, lines[2].Severity)
	assert.Equal(t, "boom", lines[0].Message)
}
