package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultMarker = ".git"
	DefaultGit    = "git"

	envPrefix = "REPO_SYNC"
)

// ErrNoRoot 表示尚未配置扫描根目录。
var ErrNoRoot = errors.New("root directory is not configured")

type Config struct {
	Root   string
	Marker string
	Git    string
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "repo-sync"), nil
}

func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// Load 读取配置文件与环境变量，配置文件不存在时使用默认值。
func Load() (*Config, error) {
	configFile, err := File()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("root", "")
	v.SetDefault("marker", DefaultMarker)
	v.SetDefault("git", DefaultGit)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		Root:   strings.TrimSpace(v.GetString("root")),
		Marker: strings.TrimSpace(v.GetString("marker")),
		Git:    strings.TrimSpace(v.GetString("git")),
	}, nil
}

func Save(config Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile, err := File()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("root", config.Root)
	v.Set("marker", config.Marker)
	v.Set("git", config.Git)

	return v.WriteConfigAs(configFile)
}

// ReadRoot 返回配置中的扫描根目录（已展开为绝对路径）。
func ReadRoot() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.Root == "" {
		return "", ErrNoRoot
	}
	return ExpandPath(cfg.Root)
}

// ExpandPath 标准化路径：
// 1. 去除首尾空白
// 2. 展开 ~ 为用户主目录
// 3. 转换为绝对路径并清理
func ExpandPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.New("empty path")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
