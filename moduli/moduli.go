// Package moduli はよく使われる法を名前で登録・取得する。
package moduli

import (
	"crypto/elliptic"
	"github.com/cockroachdb/errors"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"math/big"
	"modulo-pkg/modular"
	"sort"
	"strings"
	"sync"
)

// ToyRSA 例示用の RSA 法 (35879^2)
const ToyRSA = 1287302641

// ErrUnknownModulus 未登録の名前
var ErrUnknownModulus = errors.New("unknown modulus")

// ErrAlreadyRegistered 登録済みの名前
var ErrAlreadyRegistered = errors.New("modulus already registered")

var (
	mu       sync.RWMutex
	registry = make(map[string]*big.Int)
)

func init() {
	for _, c := range []elliptic.Curve{elliptic.P256(), elliptic.P384(), elliptic.P521(), secp256k1.S256()} {
		registerCurve(c)
	}
	mustRegister("toy-rsa", big.NewInt(ToyRSA))
}

// registerCurve 曲線の位数 (<name>.n) と体の標数 (<name>.p) を登録
func registerCurve(c elliptic.Curve) {
	params := c.Params()
	name := strings.ToLower(params.Name)
	mustRegister(name+".n", params.N)
	mustRegister(name+".p", params.P)
}

func mustRegister(name string, m *big.Int) {
	if err := Register(name, m); err != nil {
		panic(err)
	}
}

// Register 法を名前で登録する。法は正の整数
func Register(name string, m *big.Int) error {
	if err := validate(m); err != nil {
		return errors.Wrapf(err, "%s", name)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "%s", name)
	}
	registry[name] = new(big.Int).Set(m)
	return nil
}

func validate(m *big.Int) error {
	switch {
	case m == nil:
		return modular.ErrInvalidModulus
	case m.Sign() == 0:
		return modular.ErrZeroModulus
	case m.Sign() < 0:
		return errors.Wrapf(modular.ErrNegativeModulus, "%s", m)
	}
	return nil
}

// Get 名前から法を取得する
func Get(name string) (*big.Int, error) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModulus, "%s", name)
	}
	return new(big.Int).Set(m), nil
}

// Parse 10進数の整数か登録名を法として解釈する
func Parse(s string) (*big.Int, error) {
	if m, ok := new(big.Int).SetString(s, 10); ok {
		if err := validate(m); err != nil {
			return nil, err
		}
		return m, nil
	}
	return Get(s)
}

// New 登録名の法で Int を生成する
func New(value any, name string) (*modular.Int, error) {
	m, err := Get(name)
	if err != nil {
		return nil, err
	}
	return modular.New(value, m)
}

// Names 登録名の一覧 (昇順)
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
