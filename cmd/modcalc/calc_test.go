package main

import (
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/big"
	"modulo-pkg/moduli"
	"modulo-pkg/modular"
	"testing"
)

func TestEvaluate(t *testing.T) {
	m17 := big.NewInt(17)

	tests := []struct {
		name    string
		args    []string
		modulus *big.Int
		want    string
		wantErr error
	}{
		{name: "正常: 左辺を剰余類にする", args: []string{"7", "+", "11"}, modulus: m17, want: "(1 % 17)"},
		{name: "正常: 反転した減算", args: []string{"5", "-", "%7"}, modulus: m17, want: "(15 % 17)"},
		{name: "正常: 逆元を掛ける除算", args: []string{"7", "//", "6"}, modulus: m17, want: "(4 % 17)"},
		{name: "正常: 通常の除算", args: []string{"8", "/", "5"}, modulus: m17, want: "1.6"},
		{name: "正常: 浮動小数点数への降格", args: []string{"7", "+", "12.5"}, modulus: m17, want: "19.5"},
		{name: "正常: 冪乗", args: []string{"2", "**", "%7"}, modulus: m17, want: "(9 % 17)"},
		{name: "正常: 剰余類同士", args: []string{"%7", "*", "%3"}, modulus: m17, want: "(4 % 17)"},
		{name: "正常: 比較", args: []string{"24", "==", "%7"}, modulus: m17, want: "true"},
		{name: "正常: 大小比較", args: []string{"%7", "<", "8"}, modulus: m17, want: "true"},
		{name: "正常: 逆元", args: []string{"7", "inv"}, modulus: m17, want: "(5 % 17)"},
		{name: "正常: 符号反転", args: []string{"7", "neg"}, modulus: m17, want: "(10 % 17)"},
		{name: "異常: 逆元なし", args: []string{"4", "inv"}, modulus: big.NewInt(8), wantErr: modular.ErrNotInvertible},
		{name: "異常: 0 による除算", args: []string{"7", "//", "17"}, modulus: m17, wantErr: modular.ErrDivisionByZero},
		{name: "異常: 未知の演算子", args: []string{"7", "%", "2"}, modulus: m17, wantErr: modular.ErrUnknownOp},
		{name: "異常: 数値でない", args: []string{"x", "+", "2"}, modulus: m17, wantErr: modular.ErrInvalidValue},
		{name: "異常: 浮動小数点数の左辺", args: []string{"2.5", "+", "2"}, modulus: m17, wantErr: modular.ErrInvalidValue},
		{name: "異常: 引数の数", args: []string{"7"}, modulus: m17, wantErr: errUsage},
		{name: "異常: 未知の単項演算", args: []string{"7", "sqrt"}, modulus: m17, wantErr: errUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluate(tt.args, tt.modulus)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_NamedModulus(t *testing.T) {
	n, err := moduli.Parse("secp256k1.n")
	require.NoError(t, err)

	inv, err := evaluate([]string{"2", "inv"}, n)
	require.NoError(t, err)
	want, err := modular.MustNew(2, n).Inverse()
	require.NoError(t, err)
	assert.Equal(t, want.String(), inv)

	// 2 * 2^-1 == 1
	got, err := evaluate([]string{"2", "*", "%" + want.Value().String()}, n)
	require.NoError(t, err)
	assert.Equal(t, "(1 % "+n.String()+")", got)
}
