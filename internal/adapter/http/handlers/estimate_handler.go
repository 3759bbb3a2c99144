package handlers

import (
	"context"
	"errors"
	"net/http"

	request "roofpro/internal/adapter/http/dto/request"
	response "roofpro/internal/adapter/http/dto/response"
	"roofpro/internal/domain/entities"
	"roofpro/internal/domain/pricing"
	"roofpro/internal/usecase"
	"roofpro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for roofing estimates: preview,
// creation, macro expansion and the approve/decline/cancel lifecycle.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// PreviewEstimate calculates an estimate without persisting anything.
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimatePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	calc := h.usecase.PreviewEstimate(payload.Variables, payload.LineItems, payload.Options)
	c.JSON(http.StatusOK, response.FromCalculation(calc))
}

// CreateEstimate calculates and persists an estimate for a lead. When the
// payload carries a macro id the macro's default selection seeds the
// estimate instead of an explicit line item list.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	leadID := payload.ResolveLeadID()
	if leadID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	var (
		estimate entities.Estimate
		err      error
	)
	if macroID := payload.ResolveMacroID(); macroID != "" {
		estimate, err = h.usecase.CreateEstimateFromMacro(c.Request.Context(), leadID, macroID, payload.Variables, payload.Options)
	} else {
		estimate, err = h.usecase.CreateEstimate(c.Request.Context(), leadID, payload.Variables, payload.LineItems, payload.Options)
	}
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate fetches a persisted estimate by its id.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ExpandMacro expands a macro into editable line item inputs without
// touching persistence.
func (h *EstimateHandler) ExpandMacro(c *gin.Context) {
	macroID := c.Param("macro_id")
	inputs, err := h.usecase.ExpandMacro(macroID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MacroExpansionResponse{MacroID: macroID, LineItems: inputs})
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.ApproveByLeadID)
}

func (h *EstimateHandler) DeclineEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.DeclineByLeadID)
}

func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.CancelByLeadID)
}

func (h *EstimateHandler) patchEstimateStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, leadID string) (entities.Estimate, error),
) {
	var payload request.EstimateLifecycleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	leadID := payload.ResolveLeadID()
	if leadID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	estimate, err := updater(c.Request.Context(), leadID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrEmptyEstimate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this lead", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrMacroNotFound):
		return pkg.NewDomainErrorSimple("MACRO_NOT_FOUND", "Macro not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
