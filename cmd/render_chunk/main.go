// render_chunk 无头渲染方块网格到 PNG
//
// 使用与游戏相同的摄像机初始位姿、高亮系统和 fauxgl 渲染系统，
// 输出一帧画面（准星下的方块以高亮材质绘制）。
//
// 用法：
//
//	go run ./cmd/render_chunk -o chunk.png
//	go run ./cmd/render_chunk -chunk 8 -block 1.5 -supersample 4 -o chunk.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/decker502/voxelgrid/pkg/entities"
	"github.com/decker502/voxelgrid/pkg/game"
	"github.com/decker502/voxelgrid/pkg/systems"
	"github.com/fogleman/fauxgl"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	output      = flag.String("o", "chunk.png", "输出 PNG 路径")
	worldFile   = flag.String("world", "", "网格配置 YAML 文件")
	chunkSize   = flag.Int("chunk", config.DefaultChunkSize, "每边方块数")
	blockSize   = flag.Float64("block", config.DefaultBlockSize, "方块边长")
	width       = flag.Int("width", config.GameWindowWidth, "图像宽度")
	height      = flag.Int("height", config.GameWindowHeight, "图像高度")
	supersample = flag.Int("supersample", 2, "超采样倍数")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	world := config.WorldConfig{BlockSize: *blockSize, ChunkSize: *chunkSize}
	if *worldFile != "" {
		loaded, err := config.LoadWorldConfig(*worldFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载网格配置失败: %v\n", err)
			os.Exit(1)
		}
		world = *loaded
	}
	if err := world.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "网格配置无效: %v\n", err)
		os.Exit(1)
	}

	settings := game.DefaultSettings()
	em := ecs.NewEntityManager()
	rm := game.NewResourceManager()

	materials := systems.SetupBlockMaterials(em, rm.Materials())
	blocks := entities.GenerateChunk(em, rm.Meshes(), materials, world)

	position, yaw, pitch := entities.DefaultCameraPose(world)
	entities.NewCameraEntity(em, components.Camera3DComponent{
		FovY: settings.Camera.FovY,
		Near: settings.Camera.Near,
		Far:  settings.Camera.Far,
	}, position, yaw, pitch)
	entities.NewWindowEntity(em, *width, *height)

	highlight := systems.NewBlockHighlightSystem(em)
	highlight.Update(1.0 / 60.0)

	renderer := systems.NewRenderSystem(em, rm, *supersample)
	frame, ok := renderer.RenderFrame(*width, *height)
	if !ok {
		fmt.Fprintln(os.Stderr, "渲染失败：视口为空或摄像机不唯一")
		os.Exit(1)
	}

	if err := fauxgl.SavePNG(*output, frame); err != nil {
		fmt.Fprintf(os.Stderr, "保存 PNG 失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rendered %d blocks to %s (%dx%d, supersample %d)\n", len(blocks), *output, *width, *height, *supersample)
	if picked := highlight.Highlighted(); picked != 0 {
		block, _ := ecs.GetComponent[*components.BlockComponent](em, picked)
		fmt.Printf("highlighted block: (%d, %d)\n", block.GridX, block.GridZ)
	}
}
