package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/mlops-panel/internal/domain"
	"github.com/bnema/mlops-panel/internal/ports"
)

const (
	maxResponseBytes      = 8 << 20
	defaultRequestTimeout = 30 * time.Second
	userAgent             = "mlp"
)

const (
	OpHealth    = "health"
	OpCollect   = "collect"
	OpSave      = "save"
	OpLoad      = "load"
	OpClear     = "clear"
	OpTrain     = "train"
	OpPredict   = "predict"
	OpModelInfo = "model-info"
)

var ErrInvalidAPIRoot = errors.New("invalid api root")

// Client talks to the pipeline gateway. All paths are resolved against a
// fixed API root.
type Client struct {
	apiRoot        string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *slog.Logger
}

var _ ports.PipelineAPI = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.requestTimeout = timeout
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(apiRoot string, opts ...Option) (*Client, error) {
	root, err := normalizeAPIRoot(apiRoot)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiRoot:        root,
		httpClient:     http.DefaultClient,
		requestTimeout: defaultRequestTimeout,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) APIRoot() string {
	return c.apiRoot
}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

type collectPayload struct {
	Count *int                `json:"count"`
	Size  *int                `json:"size"`
	Data  []domain.DataRecord `json:"data"`
}

type savePayload struct {
	Data []domain.DataRecord `json:"data"`
}

type trainPayload struct {
	Metrics *domain.TrainMetrics `json:"metrics"`
}

type predictRequest struct {
	Features [4]domain.Feature `json:"features"`
}

type predictPayload struct {
	Predictions   []domain.Label `json:"predictions"`
	ClassLabels   []domain.Label `json:"class_labels"`
	Probabilities [][]float64    `json:"probabilities"`
}

type errorEnvelope struct {
	Error any `json:"error"`
}

func (c *Client) CheckHealth(ctx context.Context) domain.Result[domain.HealthReport] {
	result := send[domain.HealthReport](ctx, c, request{op: OpHealth, method: http.MethodGet, path: "system/health"})
	report, err := result.Unwrap()
	if err != nil {
		return result
	}
	if report.Services == nil {
		return domain.Failure[domain.HealthReport](domain.NewTransportFailuref(OpHealth, "health response missing status"))
	}

	return domain.Success(report)
}

// Collect forwards batchSize untouched; validating it is the service's job.
func (c *Client) Collect(ctx context.Context, batchSize string) domain.Result[domain.CollectedBatch] {
	query := url.Values{}
	query.Set("batch_size", batchSize)

	result := send[collectPayload](ctx, c, request{op: OpCollect, method: http.MethodGet, path: "collector/batch", query: query})
	payload, err := result.Unwrap()
	if err != nil {
		return domain.Failure[domain.CollectedBatch](err)
	}

	count := len(payload.Data)
	switch {
	case payload.Count != nil:
		count = *payload.Count
	case payload.Size != nil:
		count = *payload.Size
	}

	return domain.Success(domain.CollectedBatch{Count: count, Records: payload.Data})
}

func (c *Client) SaveBatch(ctx context.Context, records []domain.DataRecord) domain.Result[domain.SaveReceipt] {
	if records == nil {
		records = []domain.DataRecord{}
	}

	return send[domain.SaveReceipt](ctx, c, request{
		op:     OpSave,
		method: http.MethodPost,
		path:   "storage/data",
		body:   savePayload{Data: records},
	})
}

func (c *Client) LoadStored(ctx context.Context) domain.Result[domain.StoredRecords] {
	result := send[domain.StoredRecords](ctx, c, request{op: OpLoad, method: http.MethodGet, path: "storage/data"})
	payload, err := result.Unwrap()
	if err != nil {
		return result
	}
	if payload.Records == nil {
		payload.Records = []domain.DataRecord{}
	}

	return domain.Success(payload)
}

func (c *Client) ClearStored(ctx context.Context) domain.Result[domain.ClearReceipt] {
	return send[domain.ClearReceipt](ctx, c, request{op: OpClear, method: http.MethodDelete, path: "storage/data"})
}

func (c *Client) Train(ctx context.Context) domain.Result[domain.TrainReport] {
	result := send[trainPayload](ctx, c, request{op: OpTrain, method: http.MethodPost, path: "ml/train"})
	payload, err := result.Unwrap()
	if err != nil {
		return domain.Failure[domain.TrainReport](err)
	}
	if payload.Metrics == nil {
		return domain.Failure[domain.TrainReport](domain.NewTransportFailuref(OpTrain, "train response missing metrics"))
	}

	return domain.Success(domain.TrainReport{Metrics: *payload.Metrics})
}

func (c *Client) Predict(ctx context.Context, features [4]domain.Feature) domain.Result[domain.Prediction] {
	result := send[predictPayload](ctx, c, request{
		op:     OpPredict,
		method: http.MethodPost,
		path:   "ml/predict",
		body:   predictRequest{Features: features},
	})
	payload, err := result.Unwrap()
	if err != nil {
		return domain.Failure[domain.Prediction](err)
	}
	if len(payload.Predictions) == 0 {
		return domain.Failure[domain.Prediction](domain.NewTransportFailuref(OpPredict, "predict response has no predictions"))
	}

	var probabilities []float64
	if len(payload.Probabilities) > 0 {
		probabilities = payload.Probabilities[0]
	}

	return domain.Success(domain.Prediction{
		PredictedClass: payload.Predictions[0],
		ClassLabels:    payload.ClassLabels,
		Probabilities:  probabilities,
	})
}

func (c *Client) ModelInfo(ctx context.Context) domain.Result[domain.ModelInfo] {
	return send[domain.ModelInfo](ctx, c, request{op: OpModelInfo, method: http.MethodGet, path: "ml/model/info"})
}

// send performs one request and classifies the response: an "error" field
// in the body is a domain failure whatever the status; anything else that
// is not a decodable 2xx body is a transport failure.
func send[T any](ctx context.Context, c *Client, req request) domain.Result[T] {
	started := time.Now()
	status, body, err := c.roundTrip(ctx, req)
	if err != nil {
		c.logger.Warn("pipeline request failed", "op", req.op, "method", req.method, "path", req.path, "error", err)
		return domain.Failure[T](domain.NewTransportFailure(req.op, err))
	}

	c.logger.Debug("pipeline request", "op", req.op, "method", req.method, "path", req.path, "status", status, "duration", time.Since(started))

	if message, ok := errorMessage(body); ok {
		c.logger.Warn("pipeline reported error", "op", req.op, "status", status, "error", message)
		return domain.Failure[T](domain.NewDomainFailure(req.op, message))
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return domain.Failure[T](domain.NewTransportFailuref(req.op, "status %d: %s", status, strings.TrimSpace(string(body))))
	}

	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Failure[T](domain.NewTransportFailuref(req.op, "decode %s response: %w", req.op, err))
	}

	return domain.Success(payload)
}

func (c *Client) roundTrip(ctx context.Context, req request) (int, []byte, error) {
	endpoint := c.endpoint(req.path, req.query)

	var reader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s request: %w", req.op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create %s request: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", req.op, err)
	}

	return resp.StatusCode, body, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.requestTimeout)
}

func (c *Client) endpoint(path string, query url.Values) string {
	endpoint := c.apiRoot + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

func errorMessage(body []byte) (string, bool) {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}

	switch value := envelope.Error.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(value) == "" {
			return "", false
		}
		return value, true
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value), true
		}
		return string(encoded), true
	}
}

func normalizeAPIRoot(apiRoot string) (string, error) {
	trimmed := strings.TrimSpace(apiRoot)
	if trimmed == "" {
		return "", fmt.Errorf("%w: api root is required", ErrInvalidAPIRoot)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAPIRoot, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: must use http or https", ErrInvalidAPIRoot)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: host is required", ErrInvalidAPIRoot)
	}

	return strings.TrimRight(trimmed, "/"), nil
}
