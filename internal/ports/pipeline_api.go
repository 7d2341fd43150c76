package ports

import (
	"context"

	"github.com/bnema/mlops-panel/internal/domain"
)

// PipelineAPI is the remote pipeline service. Every call yields exactly
// one success or one failure; failures are *domain.TransportFailure or
// *domain.DomainFailure.
type PipelineAPI interface {
	CheckHealth(ctx context.Context) domain.Result[domain.HealthReport]
	Collect(ctx context.Context, batchSize string) domain.Result[domain.CollectedBatch]
	SaveBatch(ctx context.Context, records []domain.DataRecord) domain.Result[domain.SaveReceipt]
	LoadStored(ctx context.Context) domain.Result[domain.StoredRecords]
	ClearStored(ctx context.Context) domain.Result[domain.ClearReceipt]
	Train(ctx context.Context) domain.Result[domain.TrainReport]
	Predict(ctx context.Context, features [4]domain.Feature) domain.Result[domain.Prediction]
	ModelInfo(ctx context.Context) domain.Result[domain.ModelInfo]
}
