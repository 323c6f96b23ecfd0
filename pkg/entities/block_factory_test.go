package entities

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/voxelgrid/pkg/assets"
	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestBlockMaterials() (*assets.Store[assets.Material], *components.BlockMaterials) {
	store := assets.NewStore[assets.Material]()
	return store, &components.BlockMaterials{
		Normal:      store.Add(assets.NewColorMaterial(color.RGBA{R: 124, G: 144, B: 255, A: 255})),
		Highlighted: store.Add(assets.NewColorMaterial(color.White)),
	}
}

func TestGenerateChunk(t *testing.T) {
	tests := []struct {
		name      string
		blockSize float64
		chunkSize int
	}{
		{"default grid", 1.0, 16},
		{"single block", 1.0, 1},
		{"small blocks", 0.5, 4},
		{"large blocks", 2.5, 3},
		{"empty chunk", 1.0, 0},
		{"negative chunk", 1.0, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			meshes := assets.NewStore[*fauxgl.Mesh]()
			_, materials := newTestBlockMaterials()

			world := config.WorldConfig{BlockSize: tt.blockSize, ChunkSize: tt.chunkSize}
			ids := GenerateChunk(em, meshes, materials, world)

			wantCount := 0
			if tt.chunkSize > 0 {
				wantCount = tt.chunkSize * tt.chunkSize
			}
			if len(ids) != wantCount {
				t.Fatalf("GenerateChunk() created %d blocks, want %d", len(ids), wantCount)
			}
			if got := len(ecs.GetEntitiesWith1[*components.BlockComponent](em)); got != wantCount {
				t.Errorf("entities with BlockComponent = %d, want %d", got, wantCount)
			}

			for i, id := range ids {
				// z 外层、x 内层
				x, z := i%max(tt.chunkSize, 1), i/max(tt.chunkSize, 1)

				block, ok := ecs.GetComponent[*components.BlockComponent](em, id)
				if !ok {
					t.Fatalf("block %d missing BlockComponent", i)
				}
				if block.GridX != x || block.GridZ != z {
					t.Errorf("block %d grid = (%d, %d), want (%d, %d)", i, block.GridX, block.GridZ, x, z)
				}

				transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
				if !ok {
					t.Fatalf("block %d missing TransformComponent", i)
				}
				want := mgl64.Vec3{float64(x) * tt.blockSize, 0, float64(z) * tt.blockSize}
				if !transform.Translation.ApproxEqual(want) {
					t.Errorf("block %d position = %v, want %v", i, transform.Translation, want)
				}

				material, ok := ecs.GetComponent[*components.MaterialComponent](em, id)
				if !ok || material.Material != materials.Normal {
					t.Errorf("block %d should start with the normal material", i)
				}

				visibility, ok := ecs.GetComponent[*components.VisibilityComponent](em, id)
				if !ok || !visibility.Visible {
					t.Errorf("block %d should be visible", i)
				}
			}
		})
	}
}

func TestGenerateChunkMeshSize(t *testing.T) {
	em := ecs.NewEntityManager()
	meshes := assets.NewStore[*fauxgl.Mesh]()
	_, materials := newTestBlockMaterials()

	ids := GenerateChunk(em, meshes, materials, config.WorldConfig{BlockSize: 2.0, ChunkSize: 2})

	if meshes.Len() != len(ids) {
		t.Errorf("each block should register its own mesh: %d meshes for %d blocks", meshes.Len(), len(ids))
	}

	meshComp, _ := ecs.GetComponent[*components.MeshComponent](em, ids[0])
	mesh, ok := meshes.Get(meshComp.Mesh)
	if !ok {
		t.Fatal("block mesh handle should resolve")
	}

	size := mesh.BoundingBox().Size()
	wantEdge := 2.0 - config.BlockGridGap
	for axis, got := range []float64{size.X, size.Y, size.Z} {
		if math.Abs(got-wantEdge) > 1e-9 {
			t.Errorf("mesh edge on axis %d = %v, want %v", axis, got, wantEdge)
		}
	}
}

func TestNewCameraEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	params := components.Camera3DComponent{FovY: 70, Near: 0.1, Far: 100}

	id := NewCameraEntity(em, params, mgl64.Vec3{1, 2, 3}, 0.5, -0.25)

	cam, ok := ecs.GetComponent[*components.Camera3DComponent](em, id)
	if !ok || *cam != params {
		t.Errorf("camera component = %+v, want %+v", cam, params)
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatal("camera should have a TransformComponent")
	}
	if transform.Translation != (mgl64.Vec3{1, 2, 3}) || transform.Yaw != 0.5 || transform.Pitch != -0.25 {
		t.Errorf("camera transform = %+v", transform)
	}
}

func TestDefaultCameraPose(t *testing.T) {
	world := config.WorldConfig{BlockSize: 1.0, ChunkSize: 16}
	position, yaw, pitch := DefaultCameraPose(world)

	if position.X() != 8 {
		t.Errorf("camera should be centered on the grid, x = %v", position.X())
	}
	if position.Z() <= world.Extent() {
		t.Errorf("camera should start behind the last row, z = %v", position.Z())
	}
	if yaw != 0 || pitch >= 0 {
		t.Errorf("camera should look down the -Z axis, yaw=%v pitch=%v", yaw, pitch)
	}
}

func TestNewWindowEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewWindowEntity(em, 960, 540)

	window, ok := ecs.GetComponent[*components.WindowComponent](em, id)
	if !ok {
		t.Fatal("window entity should have a WindowComponent")
	}
	if window.Width != 960 || window.Height != 540 {
		t.Errorf("window size = %dx%d, want 960x540", window.Width, window.Height)
	}
	if !window.CursorLocked || window.CursorX != 480 || window.CursorY != 270 {
		t.Errorf("window should start with a locked, centered cursor: %+v", window)
	}
}
