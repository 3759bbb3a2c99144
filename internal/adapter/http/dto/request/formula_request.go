package request

import "roofpro/internal/domain/entities"

// FormulaEvaluateRequest evaluates one formula against a set of roof
// measurements. An empty formula evaluates to zero, so there is no binding
// requirement on the field.
type FormulaEvaluateRequest struct {
	Formula   string                 `json:"formula"`
	Variables entities.RoofVariables `json:"variables"`
}

// FormulaValidateRequest checks a formula for syntax errors and reports the
// variables it references. Used by the formula editor while typing.
type FormulaValidateRequest struct {
	Formula string `json:"formula"`
}
