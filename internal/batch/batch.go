// Package batch 提供对工作集中所有仓库的批量操作。
//
// 每个操作都返回惰性序列：只有在消费方推进迭代时才会执行对应的命令，
// 仓库之间严格按工作集顺序串行执行。提前停止迭代不会再触发后续命令。
package batch

import (
	"iter"
	"strings"

	"repo-sync/internal/vcs"
)

// FastForwardMarker 出现在 status 输出中时表示当前分支可以快进到上游。
const FastForwardMarker = "can be fast-forwarded"

// WorkingSet 提供当前要操作的仓库路径列表。
type WorkingSet interface {
	Repos() []string
}

// Ops 对工作集执行 fetch / status / pull。
type Ops struct {
	ws   WorkingSet
	exec vcs.Executor
}

func New(ws WorkingSet, exec vcs.Executor) *Ops {
	return &Ops{ws: ws, exec: exec}
}

// IsPullable 判断 status 文本是否表明分支可以快进。
func IsPullable(status string) bool {
	return strings.Contains(status, FastForwardMarker)
}

// Fetch 依次对每个仓库执行 fetch，产出原始输出（失败时为空字符串）。
func (o *Ops) Fetch() iter.Seq[string] {
	return outputs(o.FetchResults())
}

// Status 依次对每个仓库执行 status，产出 (路径, status 文本)。
func (o *Ops) Status() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, path := range o.ws.Repos() {
			if !yield(path, o.exec.Exec(path, vcs.Status)) {
				return
			}
		}
	}
}

// Pullable 只产出 status 文本满足 IsPullable 的仓库路径。
func (o *Ops) Pullable() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path, status := range o.Status() {
			if !IsPullable(status) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// Pull 只对 Pullable 产出的仓库执行 pull，产出原始输出。
// 已是最新的仓库不会被 pull。
func (o *Ops) Pull() iter.Seq[string] {
	return outputs(o.PullResults())
}

// PullResults 与 Pull 相同，但同时产出被 pull 的仓库路径，便于展示。
func (o *Ops) PullResults() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for path := range o.Pullable() {
			if !yield(path, o.exec.Exec(path, vcs.Pull)) {
				return
			}
		}
	}
}

// FetchResults 与 Fetch 相同，但同时产出仓库路径。
func (o *Ops) FetchResults() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, path := range o.ws.Repos() {
			if !yield(path, o.exec.Exec(path, vcs.Fetch)) {
				return
			}
		}
	}
}

// StatusRecords 收集 Status 的结果，每个仓库对应一个只含一项的映射。
func (o *Ops) StatusRecords() []map[string]string {
	records := make([]map[string]string, 0)
	for path, status := range o.Status() {
		records = append(records, map[string]string{path: status})
	}
	return records
}

// outputs 丢弃路径，只保留命令输出。
func outputs(seq iter.Seq2[string, string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, out := range seq {
			if !yield(out) {
				return
			}
		}
	}
}
