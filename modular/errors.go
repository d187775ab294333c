package modular

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidValue 値が数値ではない
	ErrInvalidValue = errors.New("value is not a number")
	// ErrInvalidModulus 法が数値ではない
	ErrInvalidModulus = errors.New("modulus is not a number")
	// ErrZeroModulus 法が0
	ErrZeroModulus = errors.New("modulus cannot be zero")
	// ErrNonIntegerModulus 法に小数部がある
	ErrNonIntegerModulus = errors.New("modulus is not an integer")
	// ErrNegativeModulus 法が負
	ErrNegativeModulus = errors.New("modulus must be positive")
	// ErrModulusMismatch 異なる法同士の演算
	ErrModulusMismatch = errors.New("moduli are different")
	// ErrNotInvertible gcd(value, modulus) != 1
	ErrNotInvertible = errors.New("value cannot be inverted")
	// ErrDivisionByZero 0 による除算
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotComparable 数値以外との大小比較
	ErrNotComparable = errors.New("operand is not comparable")
	// ErrUnknownOp 未知の演算子
	ErrUnknownOp = errors.New("unknown operator")
)
