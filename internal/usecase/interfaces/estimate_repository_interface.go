package interfaces

import (
	"context"

	"roofpro/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The estimating service must be able to:
//   - create an estimate when a lead's selections are calculated
//   - update estimate status by lead ID (approve/decline/cancel)
//   - fetch an estimate by its own ID or by the owning lead
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByLeadID(ctx context.Context, leadID string) (entities.Estimate, error)
	UpdateStatusByLeadID(ctx context.Context, leadID string, status entities.EstimateStatus) (entities.Estimate, error)
}
