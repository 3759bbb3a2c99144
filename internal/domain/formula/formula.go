// Package formula evaluates the restricted arithmetic expression language
// used by roofing quantity formulas. The grammar is:
//
//	expression := term (('+' | '-') term)*
//	term       := unary (('*' | '/') unary)*
//	unary      := '-' unary | primary
//	primary    := number | identifier | '(' expression ')'
//
// Identifiers resolve case-insensitively against a VariableSource. There are
// no function calls, no assignment and no loops.
package formula

import (
	"errors"
	"fmt"
	"strings"
)

// VariableSource resolves a variable name to its value. RoofVariables in the
// entities package is the production implementation.
type VariableSource interface {
	Lookup(name string) (float64, bool)
}

// ErrDivisionByZero is returned when a division's right operand evaluates
// to zero.
var ErrDivisionByZero = errors.New("division by zero")

// UnknownVariableError names an identifier the variable set does not know.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// SyntaxError reports a malformed formula.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Reason
}

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	Valid bool `json:"valid"`
	// RequiredVariables lists the identifiers the formula references,
	// deduplicated case-insensitively, in order of first occurrence.
	RequiredVariables []string `json:"required_variables"`
	Error             string   `json:"error,omitempty"`
}

// Evaluate computes a formula against the variable set. An empty or
// whitespace-only formula evaluates to 0. Failures are strict: unknown
// variables, division by zero and malformed input all return an error.
func Evaluate(input string, vars VariableSource) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, nil
	}
	tokens, err := tokenize(input)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens, vars: vars}
	value, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if !p.atEnd() {
		return 0, &SyntaxError{Reason: fmt.Sprintf("unexpected token %q", p.peek().text)}
	}
	return value, nil
}

// Validate runs the same tokenizer and parser as Evaluate but captures the
// failure instead of returning it, and collects the referenced identifiers
// from the token stream regardless of whether evaluation would succeed.
// Variable resolution and division-by-zero do not affect validity.
func Validate(input string) ValidationResult {
	if strings.TrimSpace(input) == "" {
		return ValidationResult{Valid: true, RequiredVariables: []string{}}
	}

	tokens, err := tokenize(input)
	if err != nil {
		return ValidationResult{Valid: false, RequiredVariables: []string{}, Error: err.Error()}
	}

	required := collectIdentifiers(tokens)

	p := &parser{tokens: tokens, syntaxOnly: true}
	if _, err := p.parseExpression(); err != nil {
		return ValidationResult{Valid: false, RequiredVariables: required, Error: err.Error()}
	}
	if !p.atEnd() {
		reason := &SyntaxError{Reason: fmt.Sprintf("unexpected token %q", p.peek().text)}
		return ValidationResult{Valid: false, RequiredVariables: required, Error: reason.Error()}
	}
	return ValidationResult{Valid: true, RequiredVariables: required}
}

// collectIdentifiers dedupes case-insensitively and keeps the first-seen
// spelling in order of first occurrence.
func collectIdentifiers(tokens []token) []string {
	required := []string{}
	seen := make(map[string]struct{})
	for _, t := range tokens {
		if t.typ != tokenIdent {
			continue
		}
		key := strings.ToUpper(t.text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		required = append(required, t.text)
	}
	return required
}
