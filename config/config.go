package env

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	cmdDir    = "cmd"
	configDir = "configs"
)

// Read は環境変数とYAMLファイルから新規のコンフィグを取得
// 設定ディレクトリは呼び出し元の cmd/<name> から configs/<name> を求める
func Read(config any) error {
	return read(config, GetAppEnv(), getConfigDirPath(2), nil)
}

// ReadWithConfigDirPath は環境変数と指定の設定ディレクトリ名とYAMLファイルから新規のコンフィグを取得
func ReadWithConfigDirPath(config any, cfgDirPath string) error {
	return read(config, GetAppEnv(), cfgDirPath, nil)
}

// ReadWithFlags は ReadWithConfigDirPath に加えて、指定されたフラグで値を上書きする
func ReadWithFlags(config any, cfgDirPath string, flags *pflag.FlagSet) error {
	return read(config, GetAppEnv(), cfgDirPath, flags)
}

// ConfigDirPath 呼び出し元の cmd/<name> に対応する設定ディレクトリ
func ConfigDirPath() string {
	return getConfigDirPath(2)
}

// read はconfigの読み込みを実施
func read(cfg any, cfgName string, cfgDirPath string, flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(cfgName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfgDirPath)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read cfg error: %s/%s", cfgDirPath, cfgName)
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return errors.Wrap(err, "bind flags error")
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "parse cfg error")
	}
	return nil
}

// getConfigDirPath configディレクトリの取得(readでのみ使用)
func getConfigDirPath(skip int) string {
	// クロスプラットフォーム対策
	_, file, _, _ := runtime.Caller(skip)
	dirList := strings.Split(filepath.ToSlash(filepath.Dir(file)), "/")
	dirPath := "./"

	for i, dir := range dirList {
		if dir == cmdDir {
			dirPath = filepath.Join(configDir, filepath.Join(dirList[i+1:]...))
			break
		}
	}
	return dirPath
}
