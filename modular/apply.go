package modular

import (
	"github.com/cockroachdb/errors"
)

// Op 二項演算子
type Op int

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	// OpDiv 通常の除算。常に Float を返す
	OpDiv
	// OpFloorDiv 逆元を掛ける除算
	OpFloorDiv
	OpPow
)

var opSymbols = map[Op]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpFloorDiv: "//",
	OpPow:      "**",
}

func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return "?"
}

// ParseOp "+", "-", "*", "/", "//", "**" を Op に変換する
func ParseOp(s string) (Op, error) {
	for op, sym := range opSymbols {
		if sym == s {
			return op, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOp, "%q", s)
}

type binaryFunc func(x *Int, y any) (Number, error)

func divNumber(x *Int, y any) (Number, error) {
	f, err := x.Div(y)
	if err != nil {
		return nil, err
	}
	return Float(f), nil
}

func rdivNumber(x *Int, y any) (Number, error) {
	f, err := x.RDiv(y)
	if err != nil {
		return nil, err
	}
	return Float(f), nil
}

// directOps 左辺が Int のとき x op y
var directOps = map[Op]binaryFunc{
	OpAdd:      (*Int).Add,
	OpSub:      (*Int).Sub,
	OpMul:      (*Int).Mul,
	OpDiv:      divNumber,
	OpFloorDiv: (*Int).FloorDiv,
	OpPow:      (*Int).Pow,
}

// reflectedOps 右辺のみ Int のとき y op x を x のメソッドで計算する
var reflectedOps = map[Op]binaryFunc{
	OpAdd:      (*Int).Add,
	OpSub:      (*Int).RSub,
	OpMul:      (*Int).Mul,
	OpDiv:      rdivNumber,
	OpFloorDiv: (*Int).RFloorDiv,
	OpPow:      (*Int).RPow,
}

// Apply lhs op rhs を計算する
//
// 左辺が Int なら通常の演算、右辺だけが Int なら反転した演算を使う。
// どちらも Int でない場合は ErrInvalidValue。
func Apply(op Op, lhs, rhs any) (Number, error) {
	if x, ok := lhs.(*Int); ok && x != nil {
		f, ok := directOps[op]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownOp, "%d", int(op))
		}
		return f(x, rhs)
	}
	if x, ok := rhs.(*Int); ok && x != nil {
		f, ok := reflectedOps[op]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownOp, "%d", int(op))
		}
		return f(x, lhs)
	}
	return nil, errors.Wrapf(ErrInvalidValue, "%T %s %T: no modular operand", lhs, op, rhs)
}

// Compare lhs と rhs を比較する。少なくとも一方が Int である必要がある
func Compare(lhs, rhs any) (int, error) {
	if x, ok := lhs.(*Int); ok && x != nil {
		return x.Compare(rhs)
	}
	if x, ok := rhs.(*Int); ok && x != nil {
		c, err := x.Compare(lhs)
		return -c, err
	}
	return 0, errors.Wrapf(ErrNotComparable, "%T and %T: no modular operand", lhs, rhs)
}
