// Package repo 提供根目录下 Git 仓库的扫描与健康检查功能。
//
// 主要功能：
//   - Scanner: 扫描根目录的直接子目录，维护当前工作集
//   - Marker: 判断目录是否为仓库（默认检查 .git）
//   - doctor 检查：分支可达性、读权限、性能预警
package repo
