package formula

import (
	"fmt"
	"strconv"
)

type tokenType int

const (
	tokenNumber tokenType = iota
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

type token struct {
	typ   tokenType
	text  string
	value float64
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' }
func isIdent(c byte) bool  { return isLetter(c) || isDigit(c) }
func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// tokenize splits a formula into tokens. Anything outside numbers,
// identifiers, the four operators, parentheses and whitespace is a syntax
// error, which is also what rejects attempted code injection: there is no
// token for ';', '=', ',' or quote characters.
func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isSpace(c):
			i++
		case isDigit(c):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			if i < len(input) && input[i] == '.' {
				i++
				for i < len(input) && isDigit(input[i]) {
					i++
				}
			}
			text := input[start:i]
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Reason: fmt.Sprintf("invalid number %q", text)}
			}
			tokens = append(tokens, token{typ: tokenNumber, text: text, value: value})
		case isLetter(c):
			start := i
			for i < len(input) && isIdent(input[i]) {
				i++
			}
			// Slope-qualified form: IDENT '.' IDENT (e.g. F1.SQ).
			if i+1 < len(input) && input[i] == '.' && isLetter(input[i+1]) {
				i += 2
				for i < len(input) && isIdent(input[i]) {
					i++
				}
			}
			tokens = append(tokens, token{typ: tokenIdent, text: input[start:i]})
		case c == '+':
			tokens = append(tokens, token{typ: tokenPlus, text: "+"})
			i++
		case c == '-':
			tokens = append(tokens, token{typ: tokenMinus, text: "-"})
			i++
		case c == '*':
			tokens = append(tokens, token{typ: tokenStar, text: "*"})
			i++
		case c == '/':
			tokens = append(tokens, token{typ: tokenSlash, text: "/"})
			i++
		case c == '(':
			tokens = append(tokens, token{typ: tokenLParen, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{typ: tokenRParen, text: ")"})
			i++
		default:
			return nil, &SyntaxError{Reason: fmt.Sprintf("unexpected character %q", string(c))}
		}
	}
	return tokens, nil
}
