// Package vcs 封装对版本控制工具的调用。
//
// 所有命令都只返回捕获到的文本输出；失败时返回空字符串并记录日志，
// 不向调用方返回错误。
package vcs

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Command 是批量操作支持的版本控制子命令。
type Command string

const (
	Fetch  Command = "fetch"
	Status Command = "status"
	Pull   Command = "pull"
)

// Executor 在 path 指向的仓库中执行 command 并返回输出文本。
// 失败与"成功但无输出"不做区分，都返回空字符串。
type Executor interface {
	Exec(path string, command Command) string
}

// ExecutorFunc 将普通函数适配为 Executor。
type ExecutorFunc func(path string, command Command) string

func (f ExecutorFunc) Exec(path string, command Command) string { return f(path, command) }

// GitExecutor 通过调用 git 可执行文件实现 Executor。
type GitExecutor struct {
	Binary string
	Log    *logrus.Entry
}

// NewGitExecutor 创建 GitExecutor，binary 为空时使用 PATH 中的 git。
func NewGitExecutor(binary string, log *logrus.Entry) *GitExecutor {
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &GitExecutor{Binary: binary, Log: log.WithField("component", "vcs")}
}

func (g *GitExecutor) Exec(path string, command Command) string {
	base := g.Log
	if base == nil {
		base = logrus.NewEntry(logrus.StandardLogger()).WithField("component", "vcs")
	}
	binary := g.Binary
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	log := base.WithFields(logrus.Fields{"repo": path, "command": command})

	cmd := exec.Command(binary, string(command))
	cmd.Dir = path
	// 固定英文输出以便匹配 status 文本；禁止凭据交互提示
	cmd.Env = append(os.Environ(), "LC_ALL=C", "GIT_TERMINAL_PROMPT=0")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	log.Debug("running")
	if err := cmd.Run(); err != nil {
		log.WithError(err).WithField("output", strings.TrimSpace(out.String())).Debug("command failed")
		return ""
	}
	return out.String()
}
