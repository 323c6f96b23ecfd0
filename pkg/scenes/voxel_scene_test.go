package scenes

import (
	"testing"

	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/decker502/voxelgrid/pkg/game"
)

func newTestSettings(chunkSize int) *game.GameSettings {
	settings := game.DefaultSettings()
	settings.World = config.WorldConfig{BlockSize: 1.0, ChunkSize: chunkSize}
	settings.Render.Supersample = 1
	return settings
}

// centerInput 光标停在屏幕中心、没有其他操作的输入
func centerInput() frameInput {
	return frameInput{
		cursorX: float64(config.GameWindowWidth) / 2,
		cursorY: float64(config.GameWindowHeight) / 2,
	}
}

// TestNewVoxelScene verifies that the scene spawns the grid, one camera and one window.
func TestNewVoxelScene(t *testing.T) {
	scene := NewVoxelScene(game.NewSceneManager(), newTestSettings(4))

	if len(scene.blockIDs) != 16 {
		t.Errorf("expected 16 blocks, got %d", len(scene.blockIDs))
	}
	if n := len(ecs.GetEntitiesWith1[*components.Camera3DComponent](scene.entityManager)); n != 1 {
		t.Errorf("expected exactly one camera, got %d", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.WindowComponent](scene.entityManager)); n != 1 {
		t.Errorf("expected exactly one window, got %d", n)
	}
	if _, ok := ecs.GetResource[*components.BlockMaterials](scene.entityManager); !ok {
		t.Error("block materials resource should be inserted at startup")
	}
	if scene.SaveOnExit() {
		t.Error("voxel scene has nothing to save")
	}
}

// TestVoxelSceneHighlightsBlockUnderCrosshair places the camera above a block and checks the pick.
func TestVoxelSceneHighlightsBlockUnderCrosshair(t *testing.T) {
	scene := NewVoxelScene(nil, newTestSettings(3))

	transform, _ := ecs.GetComponent[*components.TransformComponent](scene.entityManager, scene.cameraEntity)
	transform.Translation[0], transform.Translation[1], transform.Translation[2] = 2, 3, 1
	transform.Yaw = 0
	transform.Pitch = -1.5

	scene.step(1.0/60.0, centerInput())

	picked := scene.highlightSystem.Highlighted()
	if picked == 0 {
		t.Fatal("a block should be highlighted under the crosshair")
	}
	block, _ := ecs.GetComponent[*components.BlockComponent](scene.entityManager, picked)
	if block.GridX != 2 || block.GridZ != 1 {
		t.Errorf("picked block (%d, %d), want (2, 1)", block.GridX, block.GridZ)
	}

	marked := ecs.GetEntitiesWith1[*components.BlockHighlightComponent](scene.entityManager)
	if len(marked) != 1 {
		t.Errorf("expected exactly one mark, got %d", len(marked))
	}
}

// TestVoxelSceneWindowState verifies that the window entity follows resize and cursor input.
func TestVoxelSceneWindowState(t *testing.T) {
	scene := NewVoxelScene(nil, newTestSettings(1))
	scene.Resize(640, 360)

	input := frameInput{cursorX: 10, cursorY: 20, toggleCapture: true}
	scene.step(1.0/60.0, input)

	window, _ := ecs.GetComponent[*components.WindowComponent](scene.entityManager, scene.windowEntity)
	if window.Width != 640 || window.Height != 360 {
		t.Errorf("window size = %dx%d, want 640x360", window.Width, window.Height)
	}
	if window.CursorLocked {
		t.Error("toggling capture should unlock the cursor")
	}
	if window.CursorX != 10 || window.CursorY != 20 {
		t.Errorf("cursor = (%v, %v), want (10, 20)", window.CursorX, window.CursorY)
	}
}

// TestVoxelSceneMouseLook verifies that cursor movement turns the camera only while captured.
func TestVoxelSceneMouseLook(t *testing.T) {
	scene := NewVoxelScene(nil, newTestSettings(1))
	transform, _ := ecs.GetComponent[*components.TransformComponent](scene.entityManager, scene.cameraEntity)

	input := centerInput()
	scene.step(1.0/60.0, input)
	startYaw := transform.Yaw

	input.cursorX += 50
	scene.step(1.0/60.0, input)
	if transform.Yaw >= startYaw {
		t.Errorf("moving the cursor right should turn right, yaw %v -> %v", startYaw, transform.Yaw)
	}

	// 释放鼠标后光标移动不再转动视角
	input.toggleCapture = true
	scene.step(1.0/60.0, input)
	input.toggleCapture = false
	releasedYaw := transform.Yaw

	input.cursorX += 100
	scene.step(1.0/60.0, input)
	if transform.Yaw != releasedYaw {
		t.Errorf("free cursor should not turn the camera, yaw %v -> %v", releasedYaw, transform.Yaw)
	}
}

// TestVoxelSceneReload verifies that F5 rebuilds the scene through the scene manager.
func TestVoxelSceneReload(t *testing.T) {
	sm := game.NewSceneManager()
	settings := newTestSettings(2)

	sm.SetSceneFactory(func() game.Scene {
		return NewVoxelScene(sm, settings)
	})
	first := NewVoxelScene(sm, settings)
	sm.SwitchTo(first)

	input := centerInput()
	input.reloadRequired = true
	first.step(1.0/60.0, input)

	if sm.GetCurrentScene() == first {
		t.Error("reload should replace the current scene")
	}
	if _, ok := sm.GetCurrentScene().(*VoxelScene); !ok {
		t.Error("reloaded scene should be a VoxelScene")
	}
}

func TestVoxelSceneStatusText(t *testing.T) {
	scene := NewVoxelScene(nil, newTestSettings(2))
	if got := scene.statusText(); got == "" {
		t.Error("status text should not be empty")
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		positive, negative bool
		want               float64
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, -1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := axis(tt.positive, tt.negative); got != tt.want {
			t.Errorf("axis(%v, %v) = %v, want %v", tt.positive, tt.negative, got, tt.want)
		}
	}
}

var (
	_ game.Resizable = (*VoxelScene)(nil)
	_ game.Saveable  = (*VoxelScene)(nil)
)

// TestVoxelSceneDefaultPoseTargetsBlock verifies that the crosshair starts on a block within pick range.
func TestVoxelSceneDefaultPoseTargetsBlock(t *testing.T) {
	scene := NewVoxelScene(nil, newTestSettings(16))
	scene.step(1.0/60.0, centerInput())

	picked := scene.highlightSystem.Highlighted()
	if picked == 0 {
		t.Fatal("default camera pose should target a block")
	}
	block, _ := ecs.GetComponent[*components.BlockComponent](scene.entityManager, picked)
	if block.GridX != 8 || block.GridZ != 14 {
		t.Errorf("default target = (%d, %d), want (8, 14)", block.GridX, block.GridZ)
	}
}
