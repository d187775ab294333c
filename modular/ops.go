package modular

import (
	"github.com/cockroachdb/errors"
	"math"
	"math/big"
	"modulo-pkg/arithmetic"
	"strconv"
)

// Number 演算結果。*Int か Float のどちらか
type Number interface {
	String() string
	isNumber()
}

// Float 剰余環から降格した素の数値
type Float float64

func (Float) isNumber() {}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (*Int) isNumber() {}

// Pos +x
func (x *Int) Pos() *Int {
	return x.Copy()
}

// Neg -x
func (x *Int) Neg() *Int {
	return x.with(new(big.Int).Neg(x.value))
}

// Add x + y
func (x *Int) Add(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		return Float(x.Float64() + o.f), nil
	}
	return x.with(new(big.Int).Add(x.value, o.mod.value)), nil
}

// Sub x - y
func (x *Int) Sub(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		return Float(x.Float64() - o.f), nil
	}
	return x.with(new(big.Int).Sub(x.value, o.mod.value)), nil
}

// RSub y - x
func (x *Int) RSub(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		return Float(o.f - x.Float64()), nil
	}
	return x.with(new(big.Int).Sub(o.mod.value, x.value)), nil
}

// Mul x * y
func (x *Int) Mul(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		return Float(x.Float64() * o.f), nil
	}
	return x.with(new(big.Int).Mul(x.value, o.mod.value)), nil
}

// Div 通常の除算 x / y。結果は常に float64 で Int にはならない
// 素の整数 y は還元せずにそのまま使う。
func (x *Int) Div(y any) (float64, error) {
	o, err := x.convert(y)
	if err != nil {
		return 0, err
	}
	d := o.float()
	if d == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%s / %v", x, y)
	}
	return x.Float64() / d, nil
}

// RDiv 通常の除算 y / x
func (x *Int) RDiv(y any) (float64, error) {
	o, err := x.convert(y)
	if err != nil {
		return 0, err
	}
	if x.IsZero() {
		return 0, errors.Wrapf(ErrDivisionByZero, "%v / %s", y, x)
	}
	return o.float() / x.Float64(), nil
}

// FloorDiv x // y
//
// y が同じ法の Int か整数なら y の逆元を掛ける (r * y ≡ x となる r を返す)。
// y が浮動小数点数なら floor(x / y) を Float で返す。
func (x *Int) FloorDiv(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		if o.f == 0 {
			return nil, errors.Wrapf(ErrDivisionByZero, "%s // %v", x, y)
		}
		return Float(math.Floor(x.Float64() / o.f)), nil
	}

	if o.mod.IsZero() {
		return nil, errors.Wrapf(ErrDivisionByZero, "%s // %s", x, o.mod)
	}
	if x.IsZero() {
		return x.Copy(), nil
	}
	inv, err := o.mod.Inverse()
	if err != nil {
		return nil, err
	}
	return x.with(new(big.Int).Mul(x.value, inv.value)), nil
}

// RFloorDiv y // x
func (x *Int) RFloorDiv(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if x.IsZero() {
		return nil, errors.Wrapf(ErrDivisionByZero, "%v // %s", y, x)
	}
	if o.kind == kindFloat {
		return Float(math.Floor(o.f / x.Float64())), nil
	}

	if o.mod.IsZero() {
		return o.mod.Copy(), nil
	}
	inv, err := x.Inverse()
	if err != nil {
		return nil, err
	}
	return x.with(new(big.Int).Mul(o.mod.value, inv.value)), nil
}

// Pow x ** y
//
// 指数が Int の場合はその正規化済みの値を指数に使うため、指数について周期 m を持つ。
// 素の整数の指数は還元しない。負の指数は逆元を |y| 乗する。
func (x *Int) Pow(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		return Float(math.Pow(x.Float64(), o.f)), nil
	}

	base, exp := x, o.raw
	if exp.Sign() < 0 {
		if base, err = x.Inverse(); err != nil {
			return nil, err
		}
		exp = new(big.Int).Neg(exp)
	}
	r, err := arithmetic.ModExp(base.value, exp, x.modulus)
	if err != nil {
		return nil, err
	}
	return x.with(r), nil
}

// RPow y ** x
func (x *Int) RPow(y any) (Number, error) {
	o, err := x.convert(y)
	if err != nil {
		return nil, err
	}
	if o.kind == kindFloat {
		return Float(math.Pow(o.f, x.Float64())), nil
	}
	r, err := arithmetic.ModExp(o.mod.value, x.value, x.modulus)
	if err != nil {
		return nil, err
	}
	return x.with(r), nil
}
