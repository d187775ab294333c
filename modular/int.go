// Package modular は法 m の剰余類を表す値型 Int とその演算を提供する。
//
// Int は不変で、すべての演算は新しい Int か素の数値 (Float) を返す。
// 整数との演算は剰余環に留まり、浮動小数点数との演算は素の数値に降格する。
package modular

import (
	"fmt"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"math"
	"math/big"
	"modulo-pkg/arithmetic"
)

var bigOne = big.NewInt(1)

// Int 剰余類 value mod modulus。value は常に [0, modulus) に正規化される
type Int struct {
	value   *big.Int
	modulus *big.Int
}

// New value を modulus で還元した Int を生成する
//
// value, modulus には Go の整数型, *big.Int, big.Int, *Int, float32, float64 を渡せる。
// 浮動小数点数の value は 0 方向に切り捨ててから還元する。
func New(value, modulus any) (*Int, error) {
	v, err := parseValue(value)
	if err != nil {
		return nil, err
	}
	m, err := parseModulus(modulus)
	if err != nil {
		return nil, err
	}
	return fromBig(v, m), nil
}

// MustNew New のエラー時に panic する版
func MustNew(value, modulus any) *Int {
	x, err := New(value, modulus)
	if err != nil {
		panic(err)
	}
	return x
}

// NewInt64 int64 用のコンストラクタ
func NewInt64(value, modulus int64) (*Int, error) {
	return New(value, modulus)
}

// fromBig 検証済みの法で還元する。m は呼び出し側で共有してよい (変更しないため)
func fromBig(v, m *big.Int) *Int {
	return &Int{
		value:   new(big.Int).Mod(v, m),
		modulus: m,
	}
}

// with 同じ法で新しい値を持つ Int
func (x *Int) with(v *big.Int) *Int {
	return fromBig(v, x.modulus)
}

func parseValue(value any) (*big.Int, error) {
	n, ok := toNumber(value)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidValue, "%v (%T)", value, value)
	}
	if !n.isFloat {
		return n.i, nil
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
		return nil, errors.Wrapf(ErrInvalidValue, "%v", n.f)
	}
	i, _ := new(big.Float).SetFloat64(n.f).Int(nil)
	return i, nil
}

func parseModulus(modulus any) (*big.Int, error) {
	n, ok := toNumber(modulus)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidModulus, "%v (%T)", modulus, modulus)
	}

	m := n.i
	if n.isFloat {
		if n.f == 0 {
			return nil, ErrZeroModulus
		}
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) || n.f != math.Trunc(n.f) {
			return nil, errors.Wrapf(ErrNonIntegerModulus, "%v", n.f)
		}
		m, _ = new(big.Float).SetFloat64(n.f).Int(nil)
	}

	switch m.Sign() {
	case 0:
		return nil, ErrZeroModulus
	case -1:
		return nil, errors.Wrapf(ErrNegativeModulus, "%s", m)
	}
	return m, nil
}

// Modulus 法
func (x *Int) Modulus() *big.Int {
	return new(big.Int).Set(x.modulus)
}

// Value 正規化済みの値 [0, modulus)
func (x *Int) Value() *big.Int {
	return new(big.Int).Set(x.value)
}

// Int64 値を int64 で返す。収まらない場合の結果は不定
func (x *Int) Int64() int64 {
	return x.value.Int64()
}

// Float64 値を float64 で返す
func (x *Int) Float64() float64 {
	return bigToFloat(x.value)
}

// IsZero 値が0か
func (x *Int) IsZero() bool {
	return x.value.Sign() == 0
}

// Hash 正規化済みの値のみから計算するハッシュ
func (x *Int) Hash() uint64 {
	return xxhash.Sum64(x.value.Bytes())
}

// String "(value % modulus)" 形式。診断用で再解析は想定しない
func (x *Int) String() string {
	return fmt.Sprintf("(%s %% %s)", x.value, x.modulus)
}

// Copy 同じ値と法のコピー
func (x *Int) Copy() *Int {
	return &Int{
		value:   new(big.Int).Set(x.value),
		modulus: x.modulus,
	}
}

// CopyWithModulus 値を新しい法で還元し直したコピー
func (x *Int) CopyWithModulus(modulus any) (*Int, error) {
	m, err := parseModulus(modulus)
	if err != nil {
		return nil, err
	}
	return fromBig(x.value, m), nil
}

// Inverse 逆元 y (x * y ≡ 1 mod m)
func (x *Int) Inverse() (*Int, error) {
	gcd, t := arithmetic.ExtendedGcd(x.modulus, x.value)
	if gcd.Cmp(bigOne) != 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "%s", x)
	}
	if t.Sign() < 0 {
		t.Add(t, x.modulus)
	}
	return x.with(t), nil
}

func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
