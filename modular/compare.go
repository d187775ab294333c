package modular

import (
	"github.com/cockroachdb/errors"
	"math"
	"math/big"
)

// Compare x と y を比較し -1, 0, 1 を返す
//
// y が Int なら小さい方の法で、それ以外なら x の法で両者を還元してから比べる。
// そのため法の異なる Int 同士でも小さい法で合同なら等しいとみなす。
// 浮動小数点数は 0 方向に切り捨てて整数として扱う。
func (x *Int) Compare(y any) (int, error) {
	m := x.modulus
	var other *big.Int

	if v, ok := y.(*Int); ok && v != nil {
		if v.modulus.Cmp(m) < 0 {
			m = v.modulus
		}
		other = v.value
	} else {
		n, ok := toNumber(y)
		if !ok {
			return 0, errors.Wrapf(ErrNotComparable, "%v (%T)", y, y)
		}
		other = n.i
		if n.isFloat {
			if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
				return 0, errors.Wrapf(ErrNotComparable, "%v", n.f)
			}
			other, _ = new(big.Float).SetFloat64(n.f).Int(nil)
		}
	}

	a := new(big.Int).Mod(x.value, m)
	b := new(big.Int).Mod(other, m)
	return a.Cmp(b), nil
}

// Equal 数値でない y とは常に false
func (x *Int) Equal(y any) bool {
	c, err := x.Compare(y)
	return err == nil && c == 0
}

func (x *Int) Less(y any) bool {
	c, err := x.Compare(y)
	return err == nil && c < 0
}

func (x *Int) LessEqual(y any) bool {
	c, err := x.Compare(y)
	return err == nil && c <= 0
}

func (x *Int) Greater(y any) bool {
	c, err := x.Compare(y)
	return err == nil && c > 0
}

func (x *Int) GreaterEqual(y any) bool {
	c, err := x.Compare(y)
	return err == nil && c >= 0
}
