package calc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type kind int

const (
	number kind = iota
	operator
)

type token struct {
	kind kind
	text string
}

func tokenize(expr string) ([]token, error) {
	var out []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(expr) && expr[j] >= '0' && expr[j] <= '9' {
				j++
			}
			lit := expr[i:j]
			if len(lit) > 1 && lit[0] == '0' && strings.Trim(lit, "0") != "" {
				return nil, fmt.Errorf("%w: leading zeros in %q", ErrSyntax, lit)
			}
			out = append(out, token{kind: number, text: lit})
			i = j
		case (c == '*' || c == '/') && i+1 < len(expr) && expr[i+1] == c:
			out = append(out, token{kind: operator, text: expr[i : i+2]})
			i += 2
		default:
			out = append(out, token{kind: operator, text: string(c)})
			i++
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	return out, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() string {
	if p.pos < len(p.toks) && p.toks[p.pos].kind == operator {
		return p.toks[p.pos].text
	}
	return ""
}

func (p *parser) sum() (Value, error) {
	left, err := p.product()
	if err != nil {
		return Value{}, err
	}
	for {
		op := p.peek()
		if op != "+" && op != "-" {
			return left, nil
		}
		p.pos++
		right, err := p.product()
		if err != nil {
			return Value{}, err
		}
		if left, err = apply(op, left, right); err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) product() (Value, error) {
	left, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	for {
		op := p.peek()
		if op != "*" && op != "/" && op != "//" {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		if left, err = apply(op, left, right); err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) unary() (Value, error) {
	switch p.peek() {
	case "+":
		p.pos++
		return p.unary()
	case "-":
		p.pos++
		v, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		return negate(v), nil
	}
	return p.power()
}

func (p *parser) power() (Value, error) {
	base, err := p.atom()
	if err != nil {
		return Value{}, err
	}
	if p.peek() != "**" {
		return base, nil
	}
	p.pos++
	exp, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	return apply("**", base, exp)
}

func (p *parser) atom() (Value, error) {
	if p.pos >= len(p.toks) {
		return Value{}, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	t := p.toks[p.pos]
	if t.kind != number {
		return Value{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, t.text)
	}
	p.pos++
	d, err := decimal.NewFromString(t.text)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Value{i: d}, nil
}
