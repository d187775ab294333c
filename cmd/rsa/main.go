// Command rsa は剰余演算の例として簡易 RSA の暗号化・復号・署名を行う。
package main

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"math/big"
	env "modulo-pkg/config"
	"modulo-pkg/modular"
	"modulo-pkg/rand"
	"os"
)

type config struct {
	Modulus         int64   `mapstructure:"modulus"`
	Primes          []int64 `mapstructure:"primes"`
	PublicExponent  int64   `mapstructure:"public_exponent"`
	PrivateExponent int64   `mapstructure:"private_exponent"`
	Message         int64   `mapstructure:"message"`
	SignText        string  `mapstructure:"sign_text"`
	BlindingTries   uint    `mapstructure:"blinding_tries"`
	LogLevel        string  `mapstructure:"log_level"`
}

var errRoundTrip = errors.New("round trip mismatch")

var logger = logrus.WithFields(logrus.Fields{
	"cmd": "rsa",
})

func main() {
	var cfg config
	if err := env.Read(&cfg); err != nil {
		logger.WithError(err).Fatal("read config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	if err := run(context.Background(), cfg); err != nil {
		logger.WithError(err).Error("rsa demo failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	key, err := deriveKey(cfg.Primes, cfg.PublicExponent)
	if err != nil {
		return err
	}
	if cfg.Modulus != 0 && key.modulus.Cmp(big.NewInt(cfg.Modulus)) != 0 {
		return errors.Wrapf(errInvalidKey, "modulus %d != product of primes %s", cfg.Modulus, key.modulus)
	}
	logger.WithFields(logrus.Fields{
		"public":  key.public.String(),
		"private": key.private.String(),
	}).Info("key pair")

	if err := roundTrip(key, cfg); err != nil {
		return err
	}
	if err := checkConfiguredExponent(key, cfg); err != nil {
		return err
	}
	if err := sign(key, cfg.SignText); err != nil {
		return err
	}
	return blind(ctx, key, cfg)
}

// roundTrip message ** e ** d == message
func roundTrip(key *keyPair, cfg config) error {
	logger.WithField("message", cfg.Message).Info("raw message")

	encrypted, err := power(cfg.Message, key.public)
	if err != nil {
		return err
	}
	logger.WithField("encrypted", encrypted.String()).Info("encrypted message")

	decrypted, err := power(encrypted, key.private)
	if err != nil {
		return err
	}
	logger.WithField("decrypted", decrypted.String()).Info("decrypted message")

	if !decrypted.Equal(cfg.Message) {
		return errors.Wrapf(errRoundTrip, "decrypted %s, want %d", decrypted, cfg.Message)
	}
	return nil
}

// checkConfiguredExponent 設定された秘密指数で復号できるか確認し、できなければ警告する
func checkConfiguredExponent(key *keyPair, cfg config) error {
	if cfg.PrivateExponent == 0 {
		return nil
	}
	configured, err := modular.New(cfg.PrivateExponent, key.modulus)
	if err != nil {
		return err
	}
	encrypted, err := power(cfg.Message, key.public)
	if err != nil {
		return err
	}
	decrypted, err := power(encrypted, configured)
	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"configured": configured.String(),
		"derived":    key.private.String(),
		"decrypted":  decrypted.String(),
	}
	if decrypted.Equal(cfg.Message) {
		logger.WithFields(fields).Info("configured private exponent is valid")
	} else {
		logger.WithFields(fields).Warn("configured private exponent does not decrypt, using derived one")
	}
	return nil
}

// sign H(text) ** d を署名とし、署名 ** e == H(text) で検証する
func sign(key *keyPair, text string) error {
	digest, err := modular.FromDigest([]byte(text), key.modulus)
	if err != nil {
		return err
	}
	signature, err := power(digest, key.private)
	if err != nil {
		return err
	}
	recovered, err := power(signature, key.public)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"digest":    digest.String(),
		"signature": signature.String(),
	}).Info("signed")

	if !recovered.Equal(digest) {
		return errors.Wrapf(errRoundTrip, "signature recovers %s, want %s", recovered, digest)
	}
	return nil
}

// blind 乱数 r で (m * r^e)^d = m * r を復号し、r の逆元を掛けて m を得る
func blind(ctx context.Context, key *keyPair, cfg config) error {
	r, err := rand.Unit(ctx, nil, key.modulus, cfg.BlindingTries)
	if err != nil {
		return err
	}

	encrypted, err := power(cfg.Message, key.public)
	if err != nil {
		return err
	}
	factor, err := power(r, key.public)
	if err != nil {
		return err
	}
	blinded, err := encrypted.Mul(factor)
	if err != nil {
		return err
	}
	decrypted, err := power(blinded, key.private)
	if err != nil {
		return err
	}
	unblinded, err := decrypted.FloorDiv(r)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"blinding":  r.String(),
		"unblinded": unblinded.String(),
	}).Info("blinded decryption")

	if u, ok := unblinded.(*modular.Int); !ok || !u.Equal(cfg.Message) {
		return errors.Wrapf(errRoundTrip, "unblinded %s, want %d", unblinded, cfg.Message)
	}
	return nil
}
