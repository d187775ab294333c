package rand

import (
	"context"
	"crypto/rand"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"io"
	"math/big"
	"modulo-pkg/backoff"
	"modulo-pkg/modular"
	"time"
)

// DefaultMaxTries Unit の既定の試行回数
const DefaultMaxTries uint = 64

// ErrNoUnit 試行回数内に逆元を持つ値が引けなかった
var ErrNoUnit = errors.New("no invertible residue found")

var logger = logrus.WithFields(logrus.Fields{
	"pkg": "rand",
})

// Residue random を乱数源に [0, modulus) から一様に引いた Int
func Residue(random io.Reader, modulus *big.Int) (*modular.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, errors.Wrapf(modular.ErrInvalidModulus, "%v", modulus)
	}
	v, err := draw(random, modulus)
	if err != nil {
		return nil, errors.Wrap(err, "read random residue")
	}
	return modular.New(v, modulus)
}

// draw [0, m) の一様乱数。m のビット長で読み、範囲外なら読み直す
func draw(random io.Reader, m *big.Int) (*big.Int, error) {
	bitLen := m.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	// 先頭バイトの有効ビット数
	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, err
		}
		buf[0] &= uint8(int(1<<b) - 1)
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(m) < 0 {
			return v, nil
		}
	}
}

// Unit 逆元を持つ (modulus と互いに素な) Int を引く
//
// 逆元を持たない値を引いた場合は maxTries 回まで引き直す。
// maxTries が 0 の場合は DefaultMaxTries。
func Unit(ctx context.Context, random io.Reader, modulus *big.Int, maxTries uint) (*modular.Int, error) {
	if maxTries == 0 {
		maxTries = DefaultMaxTries
	}
	if random == nil {
		random = rand.Reader
	}

	bw := backoff.NewImmediate[*modular.Int](ctx, maxTries)
	bw.SetDoOperation(func() (*modular.Int, error) {
		x, err := Residue(random, modulus)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if _, err := x.Inverse(); err != nil {
			return nil, err
		}
		return x, nil
	})
	bw.SetNotify(func(err error, _ time.Duration) {
		logger.WithFields(logrus.Fields{
			"modulus": modulus.String(),
			"error":   err,
		}).Debug("redraw residue")
	})

	x, err := bw.Exec()
	if err != nil {
		if errors.Is(err, modular.ErrNotInvertible) {
			return nil, errors.Wrapf(ErrNoUnit, "modulus %s after %d tries", modulus, maxTries)
		}
		return nil, err
	}
	return x, nil
}
