// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/game"
	"github.com/decker502/voxelgrid/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// WorldFile 网格配置 YAML 文件路径，为空则使用已保存的设置
	WorldFile string

	// ChunkSize 覆盖每边方块数，小于 0 表示不覆盖
	ChunkSize int

	// BlockSize 覆盖方块边长，小于等于 0 表示不覆盖
	BlockSize float64

	// Persist 是否通过 gdata 持久化设置（测试和无头工具可关闭）
	Persist bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	var gdataManager *gdata.Manager
	if cfg.Persist {
		manager, err := gdata.Open(gdata.Config{AppName: config.AppName})
		if err != nil {
			// 无法持久化不是致命错误，降级为仅内存设置
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not be saved)", err)
		} else {
			gdataManager = manager
		}
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	if err := applyWorldOverrides(settingsManager, cfg); err != nil {
		return nil, err
	}

	settings := settingsManager.GetSettings()
	log.Printf("[App] World: chunk_size=%d block_size=%.2f", settings.World.ChunkSize, settings.World.BlockSize)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewVoxelScene(sceneManager, settingsManager.GetSettings())
	})
	sceneManager.SwitchTo(scenes.NewVoxelScene(sceneManager, settings))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// applyWorldOverrides 依次应用 YAML 文件和命令行对网格配置的覆盖
func applyWorldOverrides(sm *game.SettingsManager, cfg Config) error {
	world := sm.GetSettings().World

	if cfg.WorldFile != "" {
		loaded, err := config.LoadWorldConfig(cfg.WorldFile)
		if err != nil {
			return fmt.Errorf("网格配置加载失败: %w", err)
		}
		world = *loaded
		log.Printf("[App] 加载网格配置: %s", cfg.WorldFile)
	}
	if cfg.ChunkSize >= 0 {
		world.ChunkSize = cfg.ChunkSize
	}
	if cfg.BlockSize > 0 {
		world.BlockSize = cfg.BlockSize
	}

	if err := sm.SetWorld(world); err != nil {
		return fmt.Errorf("网格配置无效: %w", err)
	}
	return nil
}

// Update 更新逻辑
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
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settingsManager.SetFullscreen(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 软件光栅化的开销与分辨率成正比，因此逻辑尺寸固定，由 Ebitengine 负责缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(config.GameWindowWidth, config.GameWindowHeight)
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 在窗口关闭后调用：通知场景保存并持久化设置
func (a *App) Shutdown() error {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		saveable.SaveOnExit()
	}
	if err := a.settingsManager.Save(); err != nil {
		return fmt.Errorf("设置保存失败: %w", err)
	}
	log.Printf("[App] Shutdown complete")
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
