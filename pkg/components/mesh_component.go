package components

import (
	"github.com/decker502/voxelgrid/pkg/assets"
	"github.com/fogleman/fauxgl"
)

// MeshComponent 引用一个已注册的网格资产
type MeshComponent struct {
	Mesh assets.Handle[*fauxgl.Mesh]
}
