// verify_picking 无头验证准星拾取结果
//
// 按给定网格配置生成方块，把摄像机放在指定位置和朝向，
// 运行一次高亮系统并输出被选中的方块网格坐标和距离。
//
// 用法：
//
//	go run ./cmd/verify_picking -chunk 16 -x 8 -y 2.5 -z 17.5 -pitch -30
//	go run ./cmd/verify_picking -block 2 -pick-size 2 -x 4 -y 3 -z 12 -pitch -35
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
	"github.com/go-gl/mathgl/mgl64"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细日志")
	worldFile   = flag.String("world", "", "网格配置 YAML 文件")
	chunkSize   = flag.Int("chunk", config.DefaultChunkSize, "每边方块数")
	blockSize   = flag.Float64("block", config.DefaultBlockSize, "方块边长")
	camX        = flag.Float64("x", 8, "摄像机 X")
	camY        = flag.Float64("y", 2.5, "摄像机 Y")
	camZ        = flag.Float64("z", 17.5, "摄像机 Z")
	yawDeg      = flag.Float64("yaw", 0, "偏航角（度，0 朝 -Z）")
	pitchDeg    = flag.Float64("pitch", config.CameraStartPitchDegrees, "俯仰角（度，负值向下）")
	pickSize    = flag.Float64("pick-size", config.PickBlockSize, "拾取包围盒边长")
	maxDistance = flag.Float64("max-distance", config.PickMaxDistance, "最大拾取距离")
	screenX     = flag.Float64("sx", -1, "拾取点屏幕 X（-1 表示屏幕中心）")
	screenY     = flag.Float64("sy", -1, "拾取点屏幕 Y（-1 表示屏幕中心）")
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
	entities.GenerateChunk(em, rm.Meshes(), materials, world)
	entities.NewCameraEntity(em, components.Camera3DComponent{
		FovY: settings.Camera.FovY,
		Near: settings.Camera.Near,
		Far:  settings.Camera.Far,
	}, mgl64.Vec3{*camX, *camY, *camZ}, mgl64.DegToRad(*yawDeg), mgl64.DegToRad(*pitchDeg))

	windowID := entities.NewWindowEntity(em, config.GameWindowWidth, config.GameWindowHeight)

	highlight := systems.NewBlockHighlightSystem(em)
	highlight.PickBlockSize = *pickSize
	highlight.MaxDistance = *maxDistance
	if *screenX >= 0 && *screenY >= 0 {
		window, _ := ecs.GetComponent[*components.WindowComponent](em, windowID)
		window.CursorLocked = false
		window.CursorX, window.CursorY = *screenX, *screenY
		highlight.PickOrigin = systems.CursorPosition
	}

	highlight.Update(1.0 / 60.0)

	fmt.Printf("world: chunk_size=%d block_size=%.3f (pick size %.3f, max distance %.3f)\n",
		world.ChunkSize, world.BlockSize, highlight.PickBlockSize, highlight.MaxDistance)
	fmt.Printf("camera: (%.3f, %.3f, %.3f) yaw=%.1f° pitch=%.1f°\n", *camX, *camY, *camZ, *yawDeg, *pitchDeg)

	picked := highlight.Highlighted()
	if picked == 0 {
		fmt.Println("result: no block under the crosshair")
		return
	}

	block, _ := ecs.GetComponent[*components.BlockComponent](em, picked)
	mark, _ := ecs.GetComponent[*components.BlockHighlightComponent](em, picked)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, picked)
	fmt.Printf("result: block (%d, %d) entity=%d center=(%.3f, %.3f, %.3f) t_entry=%.4f\n",
		block.GridX, block.GridZ, picked,
		transform.Translation.X(), transform.Translation.Y(), transform.Translation.Z(),
		mark.Distance)
}
