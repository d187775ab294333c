package arithmetic

import (
	"github.com/cockroachdb/errors"
	"math/big"
)

// ErrInvalidModulus 法が正の整数でない
var ErrInvalidModulus = errors.New("modulus must be a positive integer")

// ErrNoInverse 逆元が存在しない
var ErrNoInverse = errors.New("modular inverse does not exist")

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Gcd 最大公約数を求める
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// Lcm 最小公倍数を求める
func Lcm(p, q *big.Int) *big.Int {
	if p.Sign() == 0 || q.Sign() == 0 {
		return new(big.Int)
	}
	l := new(big.Int).Quo(p, Gcd(p, q))
	l.Mul(l, q)
	return l.Abs(l)
}

// ExtendedGcd 拡張ユークリッドの互除法
// (modulus, 0), (value, 1) から始め、余りが 0 になった時点の
// gcd(modulus, value) と value 側のベズー係数 t を返す。
func ExtendedGcd(modulus, value *big.Int) (gcd, t *big.Int) {
	r, newR := new(big.Int).Set(modulus), new(big.Int).Set(value)
	t, newT := new(big.Int), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for newR.Sign() != 0 {
		floorDiv(q, r, newR)

		tmp.Mul(q, newT)
		t, newT = newT, tmp.Sub(t, tmp)
		tmp = new(big.Int)

		tmp.Mul(q, newR)
		r, newR = newR, tmp.Sub(r, tmp)
		tmp = new(big.Int)
	}
	return r, t
}

// floorDiv z = floor(x / y)
// big.Int.Div はユークリッド除算なので負の除数で floor と一致しない
func floorDiv(z, x, y *big.Int) *big.Int {
	m := new(big.Int)
	z.QuoRem(x, y, m)
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		z.Sub(z, bigOne)
	}
	return z
}

// ModInverse value * x ≡ 1 (mod modulus) となる x を [0, modulus) で返す
func ModInverse(value, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "modulus %s", modulus)
	}
	v := new(big.Int).Mod(value, modulus)
	gcd, t := ExtendedGcd(modulus, v)
	if gcd.Cmp(bigOne) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd(%s, %s) = %s", v, modulus, gcd)
	}
	if t.Sign() < 0 {
		t.Add(t, modulus)
	}
	return t, nil
}

// ModExp 冪乗のMod(繰り返し二乗法)
// 負の指数は逆元を exp の絶対値で冪乗する
func ModExp(base, exp, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "modulus %s", modulus)
	}

	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exp)
	if e.Sign() < 0 {
		inv, err := ModInverse(b, modulus)
		if err != nil {
			return nil, err
		}
		b = inv
		e.Neg(e)
	}

	result := new(big.Int).Mod(bigOne, modulus)
	for e.Cmp(bigZero) > 0 {
		// ビット演算 1桁目を確認
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}

		b.Mul(b, b)
		b.Mod(b, modulus)

		// 右へ1bitずらす。1101 -> 110
		e.Rsh(e, 1)
	}
	return result, nil
}
