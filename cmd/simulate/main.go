// simulate 以无窗口方式运行确定性模拟
//
// 同一个种子和调参配置总是得到相同的结果，用于回放和调参。
//
// 用法:
//
//	go run ./cmd/simulate --seed 42 --ticks 20000
//	go run ./cmd/simulate --seed 42 --config my_tuning.yaml --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/game"
)

var (
	seed       = flag.Int64("seed", 1, "模拟随机种子")
	ticks      = flag.Int("ticks", 36000, "最多模拟的帧数（60 帧 = 1 秒）")
	configPath = flag.String("config", "", "调参文件路径（默认使用内置默认值）")
	retry      = flag.Bool("retry", true, "撞车后自动开始新一局")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

// Result 一次模拟的汇总
type Result struct {
	Ticks     int
	Crashes   int
	Won       bool
	Score     int
	HighScore int
	Letters   string
	Jumps     int
}

// Run 运行模拟直到胜利、帧数耗尽或（不重试时）第一次撞车
//
// 参数:
//   - cfg: 调参配置
//   - seed: 随机种子
//   - maxTicks: 最多模拟的帧数
//   - retry: 撞车后是否继续下一局
//
// 返回:
//   - Result: 汇总结果
func Run(cfg *config.TuningConfig, seed int64, maxTicks int, retry bool) Result {
	w := game.NewWorld(cfg, rand.New(rand.NewSource(seed)))
	pilot := NewAutopilot()
	w.Start()

	var res Result
	for res.Ticks < maxTicks {
		var in game.Input
		if pilot.Decide(w.Player, w.Obstacles, w.Speed) {
			in.Jumps = 1
		}
		ev := w.Tick(in)
		res.Ticks++
		res.Jumps += ev.Jumps

		if ev.GameOver {
			res.Crashes++
			log.Printf("[Simulate] Crash #%d at tick %d, score %d", res.Crashes, res.Ticks, ev.FinalScore)
			if !retry {
				break
			}
			w.Start()
		}
		if ev.Won {
			res.Won = true
			res.Score = ev.FinalScore
			break
		}
		res.Score = w.Metrics.Score
	}

	res.HighScore = w.Metrics.HighScore
	res.Letters = string(w.Letters)
	return res
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultTuning()
	if *configPath != "" {
		loaded, err := config.LoadTuning(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	res := Run(cfg, *seed, *ticks, *retry)

	fmt.Printf("Seed:       %d\n", *seed)
	fmt.Printf("Ticks:      %d\n", res.Ticks)
	fmt.Printf("Jumps:      %d\n", res.Jumps)
	fmt.Printf("Crashes:    %d\n", res.Crashes)
	fmt.Printf("Score:      %d\n", res.Score)
	fmt.Printf("High score: %d\n", res.HighScore)
	fmt.Printf("Letters:    %q\n", res.Letters)
	fmt.Printf("Won:        %v\n", res.Won)
}
