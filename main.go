// repo-sync 扫描一个目录下的所有 Git 仓库，批量执行 fetch、status 和 pull。
package main

import (
	"repo-sync/cmd"
)

// main 是程序的入口函数，负责启动 CLI 命令执行。
func main() {
	cmd.Execute()
}
