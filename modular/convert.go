package modular

import (
	"github.com/cockroachdb/errors"
	"math/big"
)

// number 素の数値 (整数か浮動小数点数)
type number struct {
	i       *big.Int
	f       float64
	isFloat bool
}

// toNumber Go の数値型を number に変換する。数値でなければ ok=false
func toNumber(v any) (n number, ok bool) {
	switch t := v.(type) {
	case int:
		return number{i: big.NewInt(int64(t))}, true
	case int8:
		return number{i: big.NewInt(int64(t))}, true
	case int16:
		return number{i: big.NewInt(int64(t))}, true
	case int32:
		return number{i: big.NewInt(int64(t))}, true
	case int64:
		return number{i: big.NewInt(t)}, true
	case uint:
		return number{i: new(big.Int).SetUint64(uint64(t))}, true
	case uint8:
		return number{i: new(big.Int).SetUint64(uint64(t))}, true
	case uint16:
		return number{i: new(big.Int).SetUint64(uint64(t))}, true
	case uint32:
		return number{i: new(big.Int).SetUint64(uint64(t))}, true
	case uint64:
		return number{i: new(big.Int).SetUint64(t)}, true
	case *big.Int:
		if t == nil {
			return number{}, false
		}
		return number{i: new(big.Int).Set(t)}, true
	case big.Int:
		return number{i: new(big.Int).Set(&t)}, true
	case *Int:
		if t == nil {
			return number{}, false
		}
		return number{i: t.Value()}, true
	case float32:
		return number{f: float64(t), isFloat: true}, true
	case float64:
		return number{f: t, isFloat: true}, true
	case Float:
		return number{f: float64(t), isFloat: true}, true
	}
	return number{}, false
}

type operandKind int

const (
	// kindModular 同じ法の Int に変換できる
	kindModular operandKind = iota + 1
	// kindFloat 浮動小数点数。剰余環の外で計算する
	kindFloat
)

// operand 二項演算の相手を変換した結果
type operand struct {
	kind operandKind
	// mod kindModular のとき、法 x.modulus の Int
	mod *Int
	// raw 素の整数のときの還元前の値。*Int のときは正規化済みの値
	raw *big.Int
	f   float64
}

// convert 相手を x の法の Int か浮動小数点数に変換する
func (x *Int) convert(other any) (operand, error) {
	if y, ok := other.(*Int); ok && y != nil {
		if y.modulus.Cmp(x.modulus) != 0 {
			return operand{}, errors.Wrapf(ErrModulusMismatch, "%s != %s", x.modulus, y.modulus)
		}
		return operand{kind: kindModular, mod: y, raw: y.value}, nil
	}

	n, ok := toNumber(other)
	if !ok {
		return operand{}, errors.Wrapf(ErrInvalidValue, "%v (%T)", other, other)
	}
	if n.isFloat {
		return operand{kind: kindFloat, f: n.f}, nil
	}
	return operand{kind: kindModular, mod: x.with(n.i), raw: n.i}, nil
}

// float 演算相手の浮動小数点数としての値
func (o operand) float() float64 {
	if o.kind == kindFloat {
		return o.f
	}
	return bigToFloat(o.raw)
}
