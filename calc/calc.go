package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Allowed is the full character set an expression may use.
const Allowed = "0123456789+-*/ "

var (
	ErrForbiddenChar  = errors.New("forbidden character")
	ErrDivisionByZero = errors.New("division by zero")
	ErrSyntax         = errors.New("invalid syntax")
	ErrOverflow       = errors.New("result too large")
)

// digits above which integer powers are refused
const maxPowDigits = 10000

// Value is an integer or a float. Integers are exact; true division and
// negative powers produce floats.
type Value struct {
	isFloat bool
	i       decimal.Decimal
	f       float64
}

func Int(n int64) Value       { return Value{i: decimal.NewFromInt(n)} }
func Float(f float64) Value   { return Value{isFloat: true, f: f} }
func (v Value) IsFloat() bool { return v.isFloat }

func (v Value) Float64() float64 {
	if v.isFloat {
		return v.f
	}
	return v.i.InexactFloat64()
}

// String prints integers in full and floats in their shortest form with
// at least one fractional digit; large and tiny floats use an exponent.
func (v Value) String() string {
	if !v.isFloat {
		return v.i.String()
	}
	f := v.f
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	exp := int(math.Floor(math.Log10(math.Abs(f))))
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Check reports the first character outside Allowed.
func Check(expr string) error {
	for _, r := range expr {
		if !strings.ContainsRune(Allowed, r) {
			return fmt.Errorf("%w: %q", ErrForbiddenChar, r)
		}
	}
	return nil
}

// Eval checks the character set and evaluates expr with the usual
// precedence: ** binds tightest and to the right, then unary signs, then
// * / //, then + -.
func Eval(expr string) (Value, error) {
	if err := Check(expr); err != nil {
		return Value{}, err
	}
	toks, err := tokenize(expr)
	if err != nil {
		return Value{}, err
	}
	p := &parser{toks: toks}
	v, err := p.sum()
	if err != nil {
		return Value{}, err
	}
	if p.pos != len(p.toks) {
		return Value{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.toks[p.pos].text)
	}
	if v.isFloat && (math.IsInf(v.f, 0) || math.IsNaN(v.f)) {
		return Value{}, ErrOverflow
	}
	return v, nil
}
