package main

import (
	"github.com/cockroachdb/errors"
	"math/big"
	"modulo-pkg/modular"
	"strconv"
	"strings"
)

// modularPrefix この接頭辞の付いた整数は剰余類として扱う
const modularPrefix = "%"

var errUsage = errors.New("usage: modcalc [flags] <operand> <op> <operand> | <operand> inv|neg")

var comparisons = map[string]func(c int) bool{
	"==": func(c int) bool { return c == 0 },
	"!=": func(c int) bool { return c != 0 },
	"<":  func(c int) bool { return c < 0 },
	"<=": func(c int) bool { return c <= 0 },
	">":  func(c int) bool { return c > 0 },
	">=": func(c int) bool { return c >= 0 },
}

// parseOperand "%7" は Int、"7" は整数、"7.5" は浮動小数点数
func parseOperand(s string, modulus *big.Int) (any, error) {
	if rest, ok := strings.CutPrefix(s, modularPrefix); ok {
		v, ok := new(big.Int).SetString(rest, 10)
		if !ok {
			return nil, errors.Wrapf(modular.ErrInvalidValue, "%q", s)
		}
		return modular.New(v, modulus)
	}
	if v, ok := new(big.Int).SetString(s, 10); ok {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(modular.ErrInvalidValue, "%q", s)
	}
	return f, nil
}

// lift どちらも Int でなければ左辺を剰余類にする
func lift(lhs, rhs any, modulus *big.Int) (any, error) {
	if _, ok := lhs.(*modular.Int); ok {
		return lhs, nil
	}
	if _, ok := rhs.(*modular.Int); ok {
		return lhs, nil
	}
	if _, ok := lhs.(*big.Int); !ok {
		return nil, errors.Wrapf(modular.ErrInvalidValue, "left operand %v must be an integer", lhs)
	}
	return modular.New(lhs, modulus)
}

// evaluate 引数を評価して結果の文字列を返す
func evaluate(args []string, modulus *big.Int) (string, error) {
	switch len(args) {
	case 2:
		return evaluateUnary(args, modulus)
	case 3:
	default:
		return "", errUsage
	}

	lhs, err := parseOperand(args[0], modulus)
	if err != nil {
		return "", err
	}
	rhs, err := parseOperand(args[2], modulus)
	if err != nil {
		return "", err
	}
	if lhs, err = lift(lhs, rhs, modulus); err != nil {
		return "", err
	}

	if cmp, ok := comparisons[args[1]]; ok {
		c, err := modular.Compare(lhs, rhs)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(cmp(c)), nil
	}

	op, err := modular.ParseOp(args[1])
	if err != nil {
		return "", err
	}
	result, err := modular.Apply(op, lhs, rhs)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func evaluateUnary(args []string, modulus *big.Int) (string, error) {
	operand, err := parseOperand(args[0], modulus)
	if err != nil {
		return "", err
	}
	if operand, err = lift(operand, nil, modulus); err != nil {
		return "", err
	}
	x := operand.(*modular.Int)

	switch args[1] {
	case "inv":
		inv, err := x.Inverse()
		if err != nil {
			return "", err
		}
		return inv.String(), nil
	case "neg":
		return x.Neg().String(), nil
	}
	return "", errUsage
}
