// Command modcalc は剰余類の二項演算を計算する。
//
//	modcalc --modulus 17 7 // 6        => (4 % 17)
//	modcalc --modulus 17 5 - %7        => (15 % 17)
//	modcalc --modulus secp256k1.n 2 inv
package main

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	env "modulo-pkg/config"
	"modulo-pkg/moduli"
	"os"
	"strings"
)

type config struct {
	Modulus  string `mapstructure:"modulus"`
	LogLevel string `mapstructure:"log_level"`
}

var logger = logrus.WithFields(logrus.Fields{
	"cmd": "modcalc",
})

func main() {
	flags := pflag.NewFlagSet("modcalc", pflag.ExitOnError)
	flags.String("modulus", "", "modulus: decimal integer or registered name")
	flags.String("log_level", "", "log level")
	list := flags.Bool("list", false, "list registered moduli")
	// "-" や "//" を演算子として受け取る
	flags.SetInterspersed(false)
	_ = flags.Parse(os.Args[1:])

	if *list {
		fmt.Println(strings.Join(moduli.Names(), "\n"))
		return
	}

	var cfg config
	if err := env.ReadWithFlags(&cfg, env.ConfigDirPath(), flags); err != nil {
		logger.WithError(err).Fatal("read config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	modulus, err := moduli.Parse(cfg.Modulus)
	if err != nil {
		logger.WithError(err).Fatal("parse modulus")
	}
	logger.WithField("modulus", modulus.String()).Debug("evaluate")

	result, err := evaluate(flags.Args(), modulus)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"args":  flags.Args(),
			"error": err,
		}).Error("evaluate failed")
		os.Exit(1)
	}
	fmt.Println(result)
}
