package assets

import (
	"image/color"
	"math"
	"testing"
)

func TestStoreAddAndGet(t *testing.T) {
	store := NewStore[Material]()

	var zero Handle[Material]
	if zero.IsValid() {
		t.Error("zero handle should be invalid")
	}
	if _, ok := store.Get(zero); ok {
		t.Error("Get(zero handle) should fail")
	}

	normal := store.Add(NewColorMaterial(color.RGBA{R: 124, G: 144, B: 255, A: 255}))
	white := store.Add(NewColorMaterial(color.White))

	if !normal.IsValid() || !white.IsValid() {
		t.Fatal("handles returned by Add should be valid")
	}
	if normal == white {
		t.Fatal("distinct assets should get distinct handles")
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}

	got, ok := store.Get(white)
	if !ok {
		t.Fatal("Get(white) should succeed")
	}
	if got.BaseColor.R != 1 || got.BaseColor.G != 1 || got.BaseColor.B != 1 {
		t.Errorf("white material color = %+v", got.BaseColor)
	}
}

func TestStoreGetOutOfRange(t *testing.T) {
	store := NewStore[int]()
	store.Add(1)

	other := NewStore[int]()
	other.Add(1)
	h := other.Add(2)

	// 来自另一个存储的句柄越界时不应该 panic
	if _, ok := store.Get(h); ok {
		t.Error("out of range handle should not resolve")
	}
}

func TestNewCuboidMesh(t *testing.T) {
	tests := []struct {
		name string
		size float64
	}{
		{name: "unit cube", size: 1.0},
		{name: "grid cube with gap", size: 0.98},
		{name: "large cube", size: 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := NewCuboidMesh(tt.size)
			if len(mesh.Triangles) != 12 {
				t.Fatalf("cube should have 12 triangles, got %d", len(mesh.Triangles))
			}
			box := mesh.BoundingBox()
			half := tt.size / 2
			const eps = 1e-9
			if math.Abs(box.Min.X+half) > eps || math.Abs(box.Max.X-half) > eps ||
				math.Abs(box.Min.Y+half) > eps || math.Abs(box.Max.Y-half) > eps ||
				math.Abs(box.Min.Z+half) > eps || math.Abs(box.Max.Z-half) > eps {
				t.Errorf("bounding box = %+v, want ±%v on every axis", box, half)
			}
		})
	}
}

func TestNewCuboidMeshNonPositive(t *testing.T) {
	if mesh := NewCuboidMesh(0); len(mesh.Triangles) != 0 {
		t.Errorf("zero-size cuboid should be empty, got %d triangles", len(mesh.Triangles))
	}
}

// TestNewHexMaterial verifies that hex and color.Color inputs describe the same material.
func TestNewHexMaterial(t *testing.T) {
	fromHex := NewHexMaterial("7C90FF")
	fromColor := NewColorMaterial(color.RGBA{R: 124, G: 144, B: 255, A: 255})

	const eps = 1e-9
	if math.Abs(fromHex.BaseColor.R-fromColor.BaseColor.R) > eps ||
		math.Abs(fromHex.BaseColor.G-fromColor.BaseColor.G) > eps ||
		math.Abs(fromHex.BaseColor.B-fromColor.BaseColor.B) > eps {
		t.Errorf("NewHexMaterial = %+v, want %+v", fromHex.BaseColor, fromColor.BaseColor)
	}
	if fromHex.SpecularPower != defaultSpecularPower {
		t.Errorf("SpecularPower = %v, want %v", fromHex.SpecularPower, defaultSpecularPower)
	}
}
