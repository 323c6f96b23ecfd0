package systems

import (
	"log"

	"github.com/decker502/voxelgrid/pkg/assets"
	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
)

// SetupBlockMaterials 注册方块的普通/高亮材质，并作为全局资源插入 EntityManager
//
// 启动时调用一次；之后生成器和高亮系统都通过 ecs.GetResource 读取同一份句柄。
func SetupBlockMaterials(em *ecs.EntityManager, materials *assets.Store[assets.Material]) *components.BlockMaterials {
	blockMaterials := &components.BlockMaterials{
		Normal:      materials.Add(assets.NewHexMaterial(config.BlockNormalColor)),
		Highlighted: materials.Add(assets.NewHexMaterial(config.BlockHighlightedColor)),
	}
	ecs.InsertResource(em, blockMaterials)

	log.Printf("[BlockMaterials] 材质已注册: normal=%v highlighted=%v",
		blockMaterials.Normal, blockMaterials.Highlighted)
	return blockMaterials
}

