package interfaces

import (
	"context"

	"roofpro/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for
// DepositPayment.
type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}
