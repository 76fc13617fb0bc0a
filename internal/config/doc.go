// Package config 提供 repo-sync 的配置管理功能。
//
// 配置文件存储在 ~/.config/repo-sync/config.yaml，使用 YAML 格式，
// 也可以通过 REPO_SYNC_ 前缀的环境变量覆盖。
// 支持的配置项包括扫描根目录、仓库标记名和 git 可执行文件。
package config
