package response

import "roofpro/internal/domain/formula"

type FormulaEvaluateResponse struct {
	Formula string  `json:"formula"`
	Result  float64 `json:"result"`
}

type FormulaValidateResponse struct {
	Valid             bool     `json:"valid"`
	RequiredVariables []string `json:"required_variables"`
	Error             string   `json:"error,omitempty"`
}

func FromValidationResult(res formula.ValidationResult) FormulaValidateResponse {
	return FormulaValidateResponse{
		Valid:             res.Valid,
		RequiredVariables: res.RequiredVariables,
		Error:             res.Error,
	}
}
