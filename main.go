package main

import (
	"flag"
	"log"

	"github.com/decker502/voxelgrid/pkg/app"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	worldFile = flag.String("world", "", "网格配置 YAML 文件（包含 world.block_size / world.chunk_size）")
	chunkSize = flag.Int("chunk", -1, "覆盖每边方块数（-1 表示使用已保存的设置）")
	blockSize = flag.Float64("block", 0, "覆盖方块边长（0 表示使用已保存的设置）")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		WorldFile: *worldFile,
		ChunkSize: *chunkSize,
		BlockSize: *blockSize,
		Persist:   true,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.GetSettingsManager().GetSettings().Fullscreen)

	// 窗口关闭后 RunGame 返回，再保存设置
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
	if err := gameApp.Shutdown(); err != nil {
		log.Printf("[main] %v", err)
	}
}
