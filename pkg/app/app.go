// Package app 提供游戏应用的核心包装器
//
// 该包把启动时的装配逻辑从 main 包提取出来：读取调参配置、
// 打开本地存储、创建文案服务和音频，并把它们交给奔跑场景。
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/decker502/sleighdash/internal/flavor"
	"github.com/decker502/sleighdash/pkg/config"
	"github.com/decker502/sleighdash/pkg/embedded"
	"github.com/decker502/sleighdash/pkg/game"
	"github.com/decker502/sleighdash/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"
	"github.com/quasilyte/gdata/v2"
)

const (
	// AppName 本地存储和用户配置目录使用的应用名
	AppName = "sleighdash"

	// tuningAsset 内置调参文件
	tuningAsset = "data/tuning.yaml"

	// userTuningFile 用户配置目录下的覆盖文件（相对 XDG_CONFIG_HOME）
	userTuningFile = AppName + "/tuning.yaml"

	// apiKeyEnv 文案服务 API Key 的环境变量
	apiKeyEnv = "GEMINI_API_KEY"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指定调参文件，为空时依次查找用户配置目录和内置文件
	ConfigPath string
	// Seed 模拟随机种子，0 表示使用当前时间
	Seed int64
	// Fullscreen 以全屏启动（也会读取已保存的偏好）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	settings                 *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 本地存储或文案服务不可用时降级运行，只有调参配置无效才返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := loadTuning(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("调参配置加载失败: %w", err)
	}

	// 打开本地存储，失败时最高分和设置只保存在内存中
	var storage *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: Local storage unavailable: %v", err)
	} else {
		storage = m
	}

	settings := game.NewSettingsManager(storage)
	if cfg.Fullscreen || settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 会话上下文在场景关闭时取消，放弃进行中的文案请求
	ctx, cancel := context.WithCancel(context.Background())
	flavorService := flavor.New(ctx, lookupAPIKey(), tuning.Flavor)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Simulation seed: %d", seed)

	session := game.NewSession(ctx, tuning, rand.New(rand.NewSource(seed)),
		game.NewHighScoreStore(storage), flavorService, settings)

	audioContext := audio.NewContext(scenes.AudioSampleRate)
	audioManager := scenes.NewAudioManager(audioContext, settings.GetSettings().MusicVolume)
	log.Printf("[App] AudioManager initialized")

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewRunScene(session, audioManager, cancel))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// loadTuning 按优先级加载调参配置
//
// 查找顺序：命令行指定的文件 → 用户配置目录下的 sleighdash/tuning.yaml → 内置文件。
// 内置资源未初始化时（如测试环境）使用代码中的默认值。
//
// 参数:
//   - path: 命令行指定的文件，可为空
//
// 返回:
//   - *config.TuningConfig: 验证通过的配置
//   - error: 指定或找到的文件无法读取、解析或验证时返回错误
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading tuning from %s", path)
		return config.LoadTuning(path)
	}

	if userPath, err := xdg.SearchConfigFile(userTuningFile); err == nil {
		log.Printf("[Config] Loading user tuning from %s", userPath)
		return config.LoadTuning(userPath)
	}

	data, err := embedded.ReadFile(tuningAsset)
	if errors.Is(err, embedded.ErrNotInitialized) {
		log.Printf("[Config] Embedded data not initialized, using built-in defaults")
		return config.DefaultTuning(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tuningAsset, err)
	}
	return config.ParseTuning(data)
}

// lookupAPIKey 读取文案服务的 API Key
// 当前目录下的 .env 文件可选，已存在的环境变量优先
func lookupAPIKey() string {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[App] Warning: Failed to read .env: %v", err)
	}

	key := os.Getenv(apiKeyEnv)
	if key == "" {
		log.Printf("[App] %s not set, flavor text runs offline", apiKeyEnv)
	}
	return key
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存偏好
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to persist fullscreen setting: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时释放场景资源
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}
