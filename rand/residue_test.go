package rand

import (
	"bytes"
	"context"
	"crypto/rand"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/big"
	"modulo-pkg/modular"
	"testing"
)

func TestResidue(t *testing.T) {
	m := big.NewInt(17)
	values := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		x, err := Residue(rand.Reader, m)
		require.NoError(t, err)
		assert.Equal(t, int64(17), x.Modulus().Int64())
		assert.GreaterOrEqual(t, x.Int64(), int64(0))
		assert.Less(t, x.Int64(), int64(17))
		values[x.Int64()] = true
	}
	// 範囲の全てにアクセスできるか
	assert.Len(t, values, 17)
}

func TestResidue_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		modulus *big.Int
	}{
		{name: "異常: nil", modulus: nil},
		{name: "異常: 0", modulus: big.NewInt(0)},
		{name: "異常: 負", modulus: big.NewInt(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Residue(rand.Reader, tt.modulus)
			assert.True(t, errors.Is(err, modular.ErrInvalidModulus))
		})
	}
}

func TestUnit(t *testing.T) {
	// 36 の単数は 1, 5, 7, 11, 13, 17, 19, 23, 25, 29, 31, 35
	m := big.NewInt(36)
	for i := 0; i < 100; i++ {
		x, err := Unit(context.Background(), nil, m, 0)
		require.NoError(t, err)
		_, err = x.Inverse()
		assert.NoError(t, err, "%s", x)
	}
}

func TestUnit_NoUnit(t *testing.T) {
	// 常に 0 を返す乱数源では単数を引けない
	zeros := bytes.NewReader(make([]byte, 1024))
	_, err := Unit(context.Background(), zeros, big.NewInt(36), 4)
	assert.True(t, errors.Is(err, ErrNoUnit), "got %v", err)
}

func TestUnit_ReadError(t *testing.T) {
	// 空の乱数源は読み出しエラーでリトライしない
	_, err := Unit(context.Background(), bytes.NewReader(nil), big.NewInt(36), 4)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoUnit))
}
