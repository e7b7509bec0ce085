package game

import (
	"context"
)

// flavorResult 后台请求的结果，seq 用于丢弃过期结果
type flavorResult struct {
	seq  uint64
	text string
}

// FlavorText 异步获取的展示文案
//
// Request 启动后台 goroutine 获取文案，期间 Text() 返回占位文字；
// Poll 在游戏循环的帧边界非阻塞地取回结果。较新的 Request 或 Set
// 会让之前仍在进行的请求结果被丢弃。
// 除后台 goroutine 外，所有方法只能在游戏循环 goroutine 调用。
type FlavorText struct {
	text    string
	seq     uint64
	results chan flavorResult
}

// NewFlavorText 创建文案持有者
func NewFlavorText(initial string) *FlavorText {
	return &FlavorText{
		text:    initial,
		results: make(chan flavorResult, 4),
	}
}

// Text 返回当前文案
func (f *FlavorText) Text() string {
	return f.text
}

// Set 立即替换文案，并作废正在进行的请求
func (f *FlavorText) Set(text string) {
	f.seq++
	f.text = text
}

// Request 显示占位文字并在后台获取新文案
//
// 参数:
//   - ctx: 取消后请求 goroutine 放弃投递结果
//   - placeholder: 结果返回前显示的文字
//   - fetch: 获取文案的函数，必须自行处理失败（返回兜底文字）
func (f *FlavorText) Request(ctx context.Context, placeholder string, fetch func(context.Context) string) {
	f.Set(placeholder)
	seq := f.seq

	go func() {
		text := fetch(ctx)
		select {
		case f.results <- flavorResult{seq: seq, text: text}:
		case <-ctx.Done():
		}
	}()
}

// Poll 取回所有已完成的结果，返回文案是否发生变化
func (f *FlavorText) Poll() bool {
	changed := false
	for {
		select {
		case r := <-f.results:
			if r.seq == f.seq && r.text != f.text {
				f.text = r.text
				changed = true
			}
		default:
			return changed
		}
	}
}
