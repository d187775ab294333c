package main

import (
	"github.com/cockroachdb/errors"
	"math/big"
	"modulo-pkg/arithmetic"
	"modulo-pkg/modular"
)

var errInvalidKey = errors.New("invalid rsa key")

type keyPair struct {
	modulus *big.Int
	public  *modular.Int
	private *modular.Int
}

// carmichael 素因数分解からカーマイケル関数 λ(n) を求める
// p^k の成分は p^(k-1) * (p-1)
func carmichael(primes []int64) (*big.Int, error) {
	if len(primes) == 0 {
		return nil, errors.Wrap(errInvalidKey, "no prime factors")
	}

	powers := make(map[int64]int)
	for _, p := range primes {
		if p < 2 || !big.NewInt(p).ProbablyPrime(20) {
			return nil, errors.Wrapf(errInvalidKey, "%d is not prime", p)
		}
		powers[p]++
	}

	lambda := big.NewInt(1)
	for p, k := range powers {
		bp := big.NewInt(p)
		part := new(big.Int).Exp(bp, big.NewInt(int64(k-1)), nil)
		part.Mul(part, new(big.Int).Sub(bp, big.NewInt(1)))
		lambda = arithmetic.Lcm(lambda, part)
	}
	return lambda, nil
}

// deriveKey 素因数と公開指数から鍵を作る。秘密指数は e の λ(n) を法とした逆元
func deriveKey(primes []int64, e int64) (*keyPair, error) {
	n := big.NewInt(1)
	for _, p := range primes {
		n.Mul(n, big.NewInt(p))
	}

	lambda, err := carmichael(primes)
	if err != nil {
		return nil, err
	}
	d, err := modular.MustNew(e, lambda).Inverse()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "public exponent %d", e), errInvalidKey)
	}

	public, err := modular.New(e, n)
	if err != nil {
		return nil, err
	}
	private, err := modular.New(d.Value(), n)
	if err != nil {
		return nil, err
	}
	return &keyPair{modulus: n, public: public, private: private}, nil
}

// power base ** exponent
// exponent は Int なので、base が整数なら反転した冪乗で剰余環に入る
func power(base any, exponent *modular.Int) (*modular.Int, error) {
	r, err := modular.Apply(modular.OpPow, base, exponent)
	if err != nil {
		return nil, err
	}
	x, ok := r.(*modular.Int)
	if !ok {
		return nil, errors.Newf("unexpected non modular result %s", r)
	}
	return x, nil
}
