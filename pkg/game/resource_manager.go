package game

import (
	"github.com/decker502/voxelgrid/pkg/assets"
	"github.com/fogleman/fauxgl"
)

// ResourceManager is responsible for centralized management of shared render assets.
// It owns the mesh store and the material store; entities only keep handles into them.
//
// Assets are append-only: once registered they are never mutated or removed,
// so a handle stays valid for the lifetime of the ResourceManager.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the current single-threaded game loop,
// no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	mesh := rm.Meshes().Add(assets.NewCuboidMesh(0.98))
//	mat := rm.Materials().Add(assets.NewColorMaterial(color.White))
type ResourceManager struct {
	meshes    *assets.Store[*fauxgl.Mesh]
	materials *assets.Store[assets.Material]
}

// NewResourceManager creates a ResourceManager with empty stores.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		meshes:    assets.NewStore[*fauxgl.Mesh](),
		materials: assets.NewStore[assets.Material](),
	}
}

// Meshes returns the mesh asset store.
func (rm *ResourceManager) Meshes() *assets.Store[*fauxgl.Mesh] {
	return rm.meshes
}

// Materials returns the material asset store.
func (rm *ResourceManager) Materials() *assets.Store[assets.Material] {
	return rm.materials
}

// GetMesh resolves a mesh handle. Returns nil if the handle is unknown.
func (rm *ResourceManager) GetMesh(h assets.Handle[*fauxgl.Mesh]) *fauxgl.Mesh {
	mesh, ok := rm.meshes.Get(h)
	if !ok {
		return nil
	}
	return mesh
}

// GetMaterial resolves a material handle.
func (rm *ResourceManager) GetMaterial(h assets.Handle[assets.Material]) (assets.Material, bool) {
	return rm.materials.Get(h)
}
