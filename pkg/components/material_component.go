package components

import "github.com/decker502/voxelgrid/pkg/assets"

// MaterialComponent 引用实体当前使用的材质
// 高亮系统通过替换该句柄在普通/高亮材质之间切换
type MaterialComponent struct {
	Material assets.Handle[assets.Material]
}
