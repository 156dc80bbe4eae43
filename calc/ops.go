package calc

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

func negate(v Value) Value {
	if v.isFloat {
		return Float(-v.f)
	}
	return Value{i: v.i.Neg()}
}

func apply(op string, a, b Value) (Value, error) {
	if op == "/" {
		return trueDiv(a, b)
	}
	if op == "**" {
		return pow(a, b)
	}
	if a.isFloat || b.isFloat {
		return floatOp(op, a.Float64(), b.Float64())
	}
	switch op {
	case "+":
		return Value{i: a.i.Add(b.i)}, nil
	case "-":
		return Value{i: a.i.Sub(b.i)}, nil
	case "*":
		return Value{i: a.i.Mul(b.i)}, nil
	case "//":
		if b.i.IsZero() {
			return Value{}, ErrDivisionByZero
		}
		q, r := a.i.QuoRem(b.i, 0)
		// QuoRem truncates; floor division rounds toward negative infinity
		if !r.IsZero() && r.Sign() != b.i.Sign() {
			q = q.Sub(decimal.NewFromInt(1))
		}
		return Value{i: q}, nil
	}
	return Value{}, fmt.Errorf("%w: operator %q", ErrSyntax, op)
}

func floatOp(op string, a, b float64) (Value, error) {
	switch op {
	case "+":
		return Float(a + b), nil
	case "-":
		return Float(a - b), nil
	case "*":
		return Float(a * b), nil
	case "//":
		if b == 0 {
			return Value{}, ErrDivisionByZero
		}
		return Float(math.Floor(a / b)), nil
	}
	return Value{}, fmt.Errorf("%w: operator %q", ErrSyntax, op)
}

func trueDiv(a, b Value) (Value, error) {
	if (b.isFloat && b.f == 0) || (!b.isFloat && b.i.IsZero()) {
		return Value{}, ErrDivisionByZero
	}
	r := a.Float64() / b.Float64()
	if math.IsInf(r, 0) {
		return Value{}, ErrOverflow
	}
	return Float(r), nil
}

func pow(a, b Value) (Value, error) {
	if !a.isFloat && !b.isFloat && b.i.Sign() >= 0 {
		if !b.i.IsInteger() || b.i.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
			return Value{}, ErrOverflow
		}
		n := b.i.IntPart()
		if abs := a.i.Abs(); abs.GreaterThan(decimal.NewFromInt(1)) {
			if float64(n)*math.Log10(abs.InexactFloat64()) > maxPowDigits {
				return Value{}, ErrOverflow
			}
		}
		return Value{i: intPow(a.i, n)}, nil
	}
	x, y := a.Float64(), b.Float64()
	if x == 0 && y < 0 {
		return Value{}, ErrDivisionByZero
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) {
		return Value{}, ErrOverflow
	}
	return Float(r), nil
}

func intPow(base decimal.Decimal, n int64) decimal.Decimal {
	r := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return r
}
