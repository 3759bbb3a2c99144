package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"roofpro/internal/domain/entities"
	"roofpro/internal/domain/pricing"
	"roofpro/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidLeadID         = errors.New("invalid lead_id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrEmptyEstimate         = errors.New("estimate has no line items")
)

// IEstimateUseCase exposes the estimating operations.
//
// Calculation operations (PreviewEstimate, ExpandMacro) are pure and do not
// touch the repository; the lifecycle operations persist estimates keyed by
// lead, one active estimate per lead.
type IEstimateUseCase interface {
	PreviewEstimate(vars entities.RoofVariables, inputs []entities.LineItemInput, opts *entities.CalculationOptions) entities.EstimateCalculation
	ExpandMacro(macroID string) ([]entities.LineItemInput, error)

	CreateEstimate(ctx context.Context, leadID string, vars entities.RoofVariables, inputs []entities.LineItemInput, opts *entities.CalculationOptions) (entities.Estimate, error)
	CreateEstimateFromMacro(ctx context.Context, leadID, macroID string, vars entities.RoofVariables, opts *entities.CalculationOptions) (entities.Estimate, error)
	ApproveByLeadID(ctx context.Context, leadID string) (entities.Estimate, error)
	DeclineByLeadID(ctx context.Context, leadID string) (entities.Estimate, error)
	CancelByLeadID(ctx context.Context, leadID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByLeadID(ctx context.Context, leadID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	engine *pricing.Engine
	repo   interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(engine *pricing.Engine, repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{engine: engine, repo: repo}
}

func (u *EstimateUseCase) PreviewEstimate(vars entities.RoofVariables, inputs []entities.LineItemInput, opts *entities.CalculationOptions) entities.EstimateCalculation {
	return u.engine.CalculateEstimate(inputs, vars, opts)
}

func (u *EstimateUseCase) ExpandMacro(macroID string) ([]entities.LineItemInput, error) {
	return u.engine.ApplyMacro(strings.TrimSpace(macroID))
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, leadID string, vars entities.RoofVariables, inputs []entities.LineItemInput, opts *entities.CalculationOptions) (entities.Estimate, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Estimate{}, ErrInvalidLeadID
	}
	if len(inputs) == 0 {
		return entities.Estimate{}, ErrEmptyEstimate
	}

	// Enforce: 1 active estimate per lead.
	if existing, err := u.repo.GetByLeadID(ctx, leadID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	calc := u.engine.CalculateEstimate(inputs, vars, opts)

	now := time.Now().UTC()
	e := entities.CalculationToEstimate(calc)
	e.ID = uuid.NewString()
	e.LeadID = leadID
	e.Status = entities.EstimateStatusPending
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) CreateEstimateFromMacro(ctx context.Context, leadID, macroID string, vars entities.RoofVariables, opts *entities.CalculationOptions) (entities.Estimate, error) {
	inputs, err := u.engine.ApplyMacro(strings.TrimSpace(macroID))
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.CreateEstimate(ctx, leadID, vars, inputs, opts)
}

func (u *EstimateUseCase) ApproveByLeadID(ctx context.Context, leadID string) (entities.Estimate, error) {
	return u.updateStatusByLeadID(ctx, leadID, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) DeclineByLeadID(ctx context.Context, leadID string) (entities.Estimate, error) {
	return u.updateStatusByLeadID(ctx, leadID, entities.EstimateStatusDeclined)
}

func (u *EstimateUseCase) CancelByLeadID(ctx context.Context, leadID string) (entities.Estimate, error) {
	return u.updateStatusByLeadID(ctx, leadID, entities.EstimateStatusCanceled)
}

func (u *EstimateUseCase) updateStatusByLeadID(ctx context.Context, leadID string, status entities.EstimateStatus) (entities.Estimate, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Estimate{}, ErrInvalidLeadID
	}

	updated, err := u.repo.UpdateStatusByLeadID(ctx, leadID, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByLeadID(ctx context.Context, leadID string) (entities.Estimate, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Estimate{}, ErrInvalidLeadID
	}

	e, err := u.repo.GetByLeadID(ctx, leadID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
