package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/sleighdash/pkg/app"
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "调参文件路径（默认查找用户配置目录，再使用内置文件）")
	seed       = flag.Int64("seed", 0, "模拟随机种子（0 表示使用当前时间）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	// 必须在任何配置加载之前注入内置数据
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Fullscreen: *fullscreen,
	})
	// 非 verbose 模式下日志被丢弃，错误直接写到 stderr
	if err != nil {
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Sleigh Dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(game)
	game.GetSceneManager().Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", err)
		os.Exit(1)
	}
}
