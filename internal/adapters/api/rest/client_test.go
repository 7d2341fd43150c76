package rest

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+"/api/", WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsInvalidAPIRoot(t *testing.T) {
	t.Parallel()

	for _, root := range []string{"", "ftp://example.com", "http://", "::not a url"} {
		_, err := NewClient(root)
		require.Error(t, err, root)
		assert.ErrorIs(t, err, ErrInvalidAPIRoot)
	}
}

func TestCheckHealthParsesServiceStatuses(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/system/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":{"collector":"healthy","storage":"unhealthy","ml_service":"unavailable"}}`))
	})

	report, err := client.CheckHealth(context.Background()).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, []string{"collector", "storage", "ml_service"}, report.Names())
	assert.Equal(t, domain.StatusClassHealthy, report.Services["collector"].Class())
	assert.Equal(t, domain.StatusClassUnhealthy, report.Services["storage"].Class())
	assert.Equal(t, domain.StatusClassUnknown, report.Services["ml_service"].Class())
}

func TestCheckHealthMissingStatusIsTransportFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":null}`))
	})

	_, err := client.CheckHealth(context.Background()).Unwrap()
	require.Error(t, err)
	assert.True(t, domain.IsTransportFailure(err))
	assert.Contains(t, err.Error(), "missing status")
}

func TestCheckHealthNonJSONBodyIsTransportFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})

	result := client.CheckHealth(context.Background())
	require.False(t, result.OK())
	assert.True(t, domain.IsTransportFailure(result.Err()))
	assert.Contains(t, result.Err().Error(), "decode health response")
}

func TestTransportErrorCarriesUnderlyingText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient(url)
	require.NoError(t, err)

	result := client.CheckHealth(context.Background())
	require.False(t, result.OK())
	assert.True(t, domain.IsTransportFailure(result.Err()))
	assert.Contains(t, result.Err().Error(), "connect")
}

func TestRequestTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":{}}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, WithHTTPClient(server.Client()), WithRequestTimeout(20*time.Millisecond))
	require.NoError(t, err)

	result := client.CheckHealth(context.Background())
	require.False(t, result.OK())
	assert.True(t, domain.IsTransportFailure(result.Err()))
}

func TestCollectForwardsBatchSizeVerbatim(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collector/batch", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("batch_size"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid batch size"}`))
	})

	result := client.Collect(context.Background(), "abc")
	require.False(t, result.OK())
	assert.True(t, domain.IsDomainFailure(result.Err()))
	assert.Equal(t, "invalid batch size", result.Err().Error())
}

func TestCollectReadsCountAndRecords(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("batch_size"))
		_, _ = w.Write([]byte(`{"count":2,"data":[{"id":1,"feature1":5.1,"target":"A"},{"id":2,"feature1":4.9,"target":"B"}]}`))
	})

	batch, err := client.Collect(context.Background(), "2").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Count)
	require.Len(t, batch.Records, 2)
	assert.Equal(t, "1", batch.Records[0].ID())
	target, ok := batch.Records[1].Target()
	require.True(t, ok)
	assert.Equal(t, domain.Label("B"), target)
}

func TestCollectFallsBackToSizeField(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"size":3,"data":[{"id":1},{"id":2},{"id":3}]}`))
	})

	batch, err := client.Collect(context.Background(), "3").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Count)
}

func TestSaveBatchPostsRecordsVerbatim(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/storage/data", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[{"id":7,"extra":{"nested":true},"features":{"feature1":1}}]}`, string(body))

		_, _ = w.Write([]byte(`{"count":1}`))
	})

	record, err := domain.ParseDataRecord([]byte(`{"id":7,"extra":{"nested":true},"features":{"feature1":1}}`))
	require.NoError(t, err)

	receipt, err := client.SaveBatch(context.Background(), []domain.DataRecord{record}).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Count)
}

func TestLoadStoredTreatsMissingDataAsEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	stored, err := client.LoadStored(context.Background()).Unwrap()
	require.NoError(t, err)
	assert.NotNil(t, stored.Records)
	assert.Empty(t, stored.Records)
}

func TestClearStoredUsesDelete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/storage/data", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Storage cleared"}`))
	})

	receipt, err := client.ClearStored(context.Background()).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "Storage cleared", receipt.Message)
}

func TestTrainErrorFieldIsDomainFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"error":"insufficient data"}`))
	})

	result := client.Train(context.Background())
	require.False(t, result.OK())
	assert.True(t, domain.IsDomainFailure(result.Err()))
	assert.False(t, domain.IsTransportFailure(result.Err()))
	assert.Equal(t, "insufficient data", result.Err().Error())
}

func TestTrainServerErrorWithoutErrorFieldIsTransportFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	result := client.Train(context.Background())
	require.False(t, result.OK())
	assert.True(t, domain.IsTransportFailure(result.Err()))
	assert.Equal(t, "status 502: upstream down", result.Err().Error())
}

func TestTrainParsesMetrics(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","metrics":{"train_accuracy":0.95,"test_accuracy":0.9,"n_samples":120,"model_type":"RandomForestClassifier","classes":[0,1,2]}}`))
	})

	report, err := client.Train(context.Background()).Unwrap()
	require.NoError(t, err)
	assert.InDelta(t, 0.95, report.Metrics.TrainAccuracy, 1e-9)
	assert.InDelta(t, 0.9, report.Metrics.TestAccuracy, 1e-9)
	assert.Equal(t, 120, report.Metrics.Samples)
	assert.Equal(t, []domain.Label{"0", "1", "2"}, report.Metrics.Classes)
}

func TestPredictSendsFeaturesAndParsesFirstRow(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/predict", r.URL.Path)

		var body map[string][]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{1.0, 2.0, nil, 4.5}, body["features"])

		_, _ = w.Write([]byte(`{"predictions":["A"],"class_labels":["A","B"],"probabilities":[[0.7,0.3]]}`))
	})

	features := [4]domain.Feature{1, 2, domain.Feature(math.NaN()), 4.5}
	prediction, err := client.Predict(context.Background(), features).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, domain.Label("A"), prediction.PredictedClass)
	assert.Equal(t, []domain.Label{"A", "B"}, prediction.ClassLabels)
	assert.Equal(t, []float64{0.7, 0.3}, prediction.Probabilities)
}

func TestPredictWithoutPredictionsIsTransportFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions":[]}`))
	})

	result := client.Predict(context.Background(), [4]domain.Feature{1, 2, 3, 4})
	require.False(t, result.OK())
	assert.True(t, domain.IsTransportFailure(result.Err()))
}

func TestModelInfoNoModel(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/model/info", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"no_model","message":"Model not trained"}`))
	})

	info, err := client.ModelInfo(context.Background()).Unwrap()
	require.NoError(t, err)
	assert.False(t, info.Loaded())
	assert.Equal(t, "Model not trained", info.Message)
}
