package assets

import "github.com/fogleman/fauxgl"

// NewCuboidMesh 创建以原点为中心、边长为 size 的立方体网格
// size <= 0 时返回空网格
func NewCuboidMesh(size float64) *fauxgl.Mesh {
	if size <= 0 {
		return fauxgl.NewEmptyMesh()
	}
	half := size / 2
	return fauxgl.NewCubeForBox(fauxgl.Box{
		Min: fauxgl.V(-half, -half, -half),
		Max: fauxgl.V(half, half, half),
	})
}
