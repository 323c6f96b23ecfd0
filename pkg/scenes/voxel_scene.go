package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/decker502/voxelgrid/pkg/entities"
	"github.com/decker502/voxelgrid/pkg/game"
	"github.com/decker502/voxelgrid/pkg/systems"
	"github.com/decker502/voxelgrid/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 准星参数
const (
	crosshairSize      = 8
	crosshairThickness = 2
)

var crosshairColor = color.RGBA{R: 255, G: 255, B: 255, A: 220}

// frameInput 一帧采集到的输入
// 与 Ebitengine 的输入 API 解耦，便于测试直接驱动场景
type frameInput struct {
	camera         systems.CameraInput
	cursorX        float64
	cursorY        float64
	toggleCapture  bool
	reloadRequired bool
}

// VoxelScene 方块网格场景
//
// 启动时创建材质、摄像机、窗口实体和一整块方块网格；
// 每帧依次执行：输入采集 → 窗口状态 → 摄像机 → 准星高亮。
//
// 操作：
//   - WASD 移动，Space/Shift 升降，鼠标转动视角
//   - Esc 释放/重新捕获鼠标（释放后以光标位置拾取）
//   - F5 按当前设置重建场景
type VoxelScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settings        *game.GameSettings

	cameraSystem    *systems.CameraSystem
	highlightSystem *systems.BlockHighlightSystem
	renderSystem    *systems.RenderSystem

	cameraEntity ecs.EntityID
	windowEntity ecs.EntityID
	blockIDs     []ecs.EntityID

	width  int
	height int

	cursorCaptured  bool
	cursorModeDirty bool
	hasLastCursor   bool
	lastCursorX     float64
	lastCursorY     float64
}

// NewVoxelScene 按给定设置创建场景
// sceneManager 可为 nil（无法响应 F5 重建）
func NewVoxelScene(sceneManager *game.SceneManager, settings *game.GameSettings) *VoxelScene {
	em := ecs.NewEntityManager()
	rm := game.NewResourceManager()

	s := &VoxelScene{
		entityManager:   em,
		resourceManager: rm,
		sceneManager:    sceneManager,
		settings:        settings,
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
		cursorCaptured:  utils.DefaultCursorCaptured(),
		cursorModeDirty: true,
	}

	materials := systems.SetupBlockMaterials(em, rm.Materials())

	position, yaw, pitch := entities.DefaultCameraPose(settings.World)
	s.cameraEntity = entities.NewCameraEntity(em, components.Camera3DComponent{
		FovY: settings.Camera.FovY,
		Near: settings.Camera.Near,
		Far:  settings.Camera.Far,
	}, position, yaw, pitch)
	s.windowEntity = entities.NewWindowEntity(em, s.width, s.height)
	s.blockIDs = entities.GenerateChunk(em, rm.Meshes(), materials, settings.World)

	s.cameraSystem = systems.NewCameraSystem(em, settings.Camera.MoveSpeed, settings.Camera.MouseSensitivity)
	s.highlightSystem = systems.NewBlockHighlightSystem(em)
	s.highlightSystem.PickOrigin = systems.CursorPosition
	s.renderSystem = systems.NewRenderSystem(em, rm, settings.Render.Supersample)

	log.Printf("[VoxelScene] 场景已创建: %d 个方块, 摄像机位于 (%.2f, %.2f, %.2f)",
		len(s.blockIDs), position.X(), position.Y(), position.Z())
	return s
}

// Update 更新一帧
func (s *VoxelScene) Update(deltaTime float64) {
	s.step(deltaTime, s.readInput())
}

// readInput 从 Ebitengine 读取本帧输入
func (s *VoxelScene) readInput() frameInput {
	cx, cy := utils.PointerPosition()
	input := frameInput{
		cursorX:        float64(cx),
		cursorY:        float64(cy),
		toggleCapture:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		reloadRequired: inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}

	input.camera.Forward = axis(ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyS))
	input.camera.Right = axis(ebiten.IsKeyPressed(ebiten.KeyD), ebiten.IsKeyPressed(ebiten.KeyA))
	input.camera.Up = axis(ebiten.IsKeyPressed(ebiten.KeySpace), ebiten.IsKeyPressed(ebiten.KeyShift))

	if s.cursorModeDirty {
		if s.cursorCaptured {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
		s.cursorModeDirty = false
	}
	return input
}

// step 执行一帧的场景逻辑
func (s *VoxelScene) step(deltaTime float64, input frameInput) {
	if input.reloadRequired && s.sceneManager != nil {
		log.Printf("[VoxelScene] 重建场景")
		s.sceneManager.Reload()
		return
	}

	if input.toggleCapture {
		s.cursorCaptured = !s.cursorCaptured
		s.cursorModeDirty = true
		s.hasLastCursor = false
		log.Printf("[VoxelScene] 鼠标捕获: %v", s.cursorCaptured)
	}

	// 只在捕获模式下用光标位移转动视角
	if s.cursorCaptured && s.hasLastCursor {
		input.camera.LookDX = input.cursorX - s.lastCursorX
		input.camera.LookDY = input.cursorY - s.lastCursorY
	}
	s.lastCursorX, s.lastCursorY = input.cursorX, input.cursorY
	s.hasLastCursor = true

	if window, ok := ecs.GetComponent[*components.WindowComponent](s.entityManager, s.windowEntity); ok {
		window.Width = s.width
		window.Height = s.height
		window.CursorX = input.cursorX
		window.CursorY = input.cursorY
		window.CursorLocked = s.cursorCaptured
	}

	s.cameraSystem.SetInput(input.camera)
	s.cameraSystem.Update(deltaTime)
	s.highlightSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制三维场景、准星和调试信息
func (s *VoxelScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.cursorCaptured {
		cx := float32(s.width) / 2
		cy := float32(s.height) / 2
		vector.DrawFilledRect(screen, cx-crosshairSize, cy-crosshairThickness/2, crosshairSize*2, crosshairThickness, crosshairColor, false)
		vector.DrawFilledRect(screen, cx-crosshairThickness/2, cy-crosshairSize, crosshairThickness, crosshairSize*2, crosshairColor, false)
	}

	ebitenutil.DebugPrintAt(screen, s.statusText(), 8, 8)
}

// statusText 返回调试信息文本
func (s *VoxelScene) statusText() string {
	target := "none"
	if id := s.highlightSystem.Highlighted(); id != 0 {
		block, _ := ecs.GetComponent[*components.BlockComponent](s.entityManager, id)
		mark, _ := ecs.GetComponent[*components.BlockHighlightComponent](s.entityManager, id)
		if block != nil && mark != nil {
			target = fmt.Sprintf("(%d, %d) at %.2f", block.GridX, block.GridZ, mark.Distance)
		}
	}

	mode := "Esc: release cursor"
	if !s.cursorCaptured {
		mode = "Esc: capture cursor"
	}

	return fmt.Sprintf("blocks: %d  target: %s\n%s  F5: rebuild  F11: fullscreen",
		len(s.blockIDs), target, mode)
}

// Resize 记录新的逻辑屏幕尺寸，下一帧写入窗口实体
func (s *VoxelScene) Resize(width, height int) {
	s.width, s.height = width, height
}

// SaveOnExit 场景本身没有需要持久化的状态
func (s *VoxelScene) SaveOnExit() bool {
	return false
}

// axis 将一对相反方向的按键转换为 [-1, 1] 的轴值
func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
