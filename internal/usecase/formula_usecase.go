package usecase

import (
	"roofpro/internal/domain/entities"
	"roofpro/internal/domain/formula"
)

// IFormulaUseCase exposes standalone formula evaluation and validation, used
// by the formula editor endpoints. Evaluation is strict; editors should use
// Validate rather than catching Evaluate failures.
type IFormulaUseCase interface {
	Evaluate(formulaText string, vars entities.RoofVariables) (float64, error)
	Validate(formulaText string) formula.ValidationResult
}

type FormulaUseCase struct{}

var _ IFormulaUseCase = (*FormulaUseCase)(nil)

func NewFormulaUseCase() *FormulaUseCase {
	return &FormulaUseCase{}
}

func (u *FormulaUseCase) Evaluate(formulaText string, vars entities.RoofVariables) (float64, error) {
	return formula.Evaluate(formulaText, vars)
}

func (u *FormulaUseCase) Validate(formulaText string) formula.ValidationResult {
	return formula.Validate(formulaText)
}
