package components

import "github.com/decker502/voxelgrid/pkg/assets"

// BlockMaterials 方块材质集合（全局单例资源）
// 启动时创建一次，之后只读；由生成器和高亮系统共享
//
// 通过 ecs.InsertResource / ecs.GetResource[*components.BlockMaterials] 存取
type BlockMaterials struct {
	Normal      assets.Handle[assets.Material] // 普通材质
	Highlighted assets.Handle[assets.Material] // 高亮材质
}
