package handlers

import (
	"errors"
	"net/http"

	request "roofpro/internal/adapter/http/dto/request"
	response "roofpro/internal/adapter/http/dto/response"
	"roofpro/internal/domain/formula"
	"roofpro/internal/usecase"
	"roofpro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFormulaPayload = pkg.NewDomainErrorSimple("INVALID_FORMULA_INPUT", "Invalid formula payload", http.StatusBadRequest)
)

// FormulaHandler handles the standalone formula endpoints used by the
// formula editor.

type FormulaHandler struct {
	usecase usecase.IFormulaUseCase
}

func NewFormulaHandler(uc usecase.IFormulaUseCase) *FormulaHandler {
	return &FormulaHandler{usecase: uc}
}

// Evaluate evaluates a formula against the given roof measurements. Unlike
// Validate, evaluation is strict: unknown variables, syntax errors and
// division by zero are reported as errors.
func (h *FormulaHandler) Evaluate(c *gin.Context) {
	var payload request.FormulaEvaluateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Evaluate(payload.Formula, payload.Variables)
	if err != nil {
		appErr := mapFormulaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FormulaEvaluateResponse{Formula: payload.Formula, Result: result})
}

// Validate checks a formula for syntax errors and reports the variables it
// references. A malformed formula is still a 200 response; the result
// carries the error.
func (h *FormulaHandler) Validate(c *gin.Context) {
	var payload request.FormulaValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormulaPayload.HTTPStatus, errInvalidFormulaPayload.ToHTTPError())
		return
	}

	res := h.usecase.Validate(payload.Formula)
	c.JSON(http.StatusOK, response.FromValidationResult(res))
}

func mapFormulaError(err error) *pkg.AppError {
	var unknownVar *formula.UnknownVariableError
	var syntaxErr *formula.SyntaxError
	switch {
	case errors.As(err, &unknownVar):
		return pkg.NewDomainErrorSimple("UNKNOWN_VARIABLE", unknownVar.Error(), http.StatusBadRequest)
	case errors.As(err, &syntaxErr):
		return pkg.NewDomainErrorSimple("FORMULA_SYNTAX_ERROR", syntaxErr.Error(), http.StatusBadRequest)
	case errors.Is(err, formula.ErrDivisionByZero):
		return pkg.NewDomainErrorSimple("DIVISION_BY_ZERO", "Formula divides by zero", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
