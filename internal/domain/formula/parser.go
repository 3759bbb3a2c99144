package formula

import "fmt"

// parser is a recursive-descent evaluator over the token stream. In
// syntaxOnly mode (used by Validate) identifiers resolve to zero and
// divisions are not performed, so only the shape of the formula matters.
type parser struct {
	tokens     []token
	pos        int
	vars       VariableSource
	syntaxOnly bool
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) match(typ tokenType) bool {
	if p.atEnd() || p.tokens[p.pos].typ != typ {
		return false
	}
	p.pos++
	return true
}

func (p *parser) parseExpression() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for !p.atEnd() {
		switch p.peek().typ {
		case tokenPlus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case tokenMinus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
	return value, nil
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for !p.atEnd() {
		switch p.peek().typ {
		case tokenStar:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case tokenSlash:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if p.syntaxOnly {
				continue
			}
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			value /= rhs
		default:
			return value, nil
		}
	}
	return value, nil
}

func (p *parser) parseUnary() (float64, error) {
	if p.match(tokenMinus) {
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -value, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	if p.atEnd() {
		return 0, &SyntaxError{Reason: "unexpected end of formula"}
	}

	t := p.next()
	switch t.typ {
	case tokenNumber:
		return t.value, nil
	case tokenIdent:
		if p.syntaxOnly {
			return 0, nil
		}
		value, ok := p.vars.Lookup(t.text)
		if !ok {
			return 0, &UnknownVariableError{Name: t.text}
		}
		return value, nil
	case tokenLParen:
		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.match(tokenRParen) {
			return 0, &SyntaxError{Reason: "unbalanced parentheses"}
		}
		return value, nil
	default:
		return 0, &SyntaxError{Reason: fmt.Sprintf("unexpected token %q", t.text)}
	}
}
