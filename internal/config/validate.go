package config

import (
	"fmt"
	"os"
	"strings"
)

// ValidateConfig 检查配置项是否合法，返回问题描述列表，合法时返回空列表。
func ValidateConfig(cfg *Config) []string {
	issues := make([]string, 0)
	if cfg == nil {
		return append(issues, "config is nil")
	}

	if strings.TrimSpace(cfg.Root) == "" {
		issues = append(issues, "root is not set (use: repo-sync set root <dir>)")
	} else if _, err := ExpandPath(cfg.Root); err != nil {
		issues = append(issues, fmt.Sprintf("invalid root %q: %v", cfg.Root, err))
	}

	if err := ValidateMarker(cfg.Marker); err != nil {
		issues = append(issues, err.Error())
	}

	if strings.TrimSpace(cfg.Git) == "" {
		issues = append(issues, "git must not be empty")
	}

	return issues
}

// ValidateMarker 检查仓库标记是否为单个目录项名称。
func ValidateMarker(marker string) error {
	marker = strings.TrimSpace(marker)
	switch {
	case marker == "":
		return fmt.Errorf("marker must not be empty")
	case strings.ContainsRune(marker, os.PathSeparator), marker == ".", marker == "..":
		return fmt.Errorf("invalid marker %q: must be a single entry name", marker)
	}
	return nil
}
