package entities

import (
	"log"

	"github.com/decker502/voxelgrid/pkg/assets"
	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"
)

// GenerateChunk 生成 chunk_size × chunk_size 的平面方块网格
//
// 参数:
//   - em: 实体管理器
//   - meshes: 网格资产存储，每个方块注册一个独立的立方体网格
//   - materials: 方块材质集合，新方块使用普通材质
//   - world: 网格配置（方块边长、每边方块数）
//
// 返回:
//   - []ecs.EntityID: 按创建顺序（z 外层、x 内层）排列的方块实体ID
//
// 方块 (x, z) 的中心位于 (x·block_size, 0, z·block_size)，
// 渲染边长为 block_size - BlockGridGap，相邻方块之间留出细缝。
// chunk_size <= 0 时不创建任何实体。
func GenerateChunk(
	em *ecs.EntityManager,
	meshes *assets.Store[*fauxgl.Mesh],
	materials *components.BlockMaterials,
	world config.WorldConfig,
) []ecs.EntityID {
	if world.ChunkSize <= 0 {
		return nil
	}

	blockIDs := make([]ecs.EntityID, 0, world.ChunkSize*world.ChunkSize)
	edge := world.BlockSize - config.BlockGridGap

	for z := 0; z < world.ChunkSize; z++ {
		for x := 0; x < world.ChunkSize; x++ {
			blockIDs = append(blockIDs, NewBlockEntity(em, meshes, materials, x, z, world.BlockSize, edge))
		}
	}

	log.Printf("[GenerateChunk] 生成 %d 个方块 (chunk_size=%d, block_size=%.2f)",
		len(blockIDs), world.ChunkSize, world.BlockSize)
	return blockIDs
}

// NewBlockEntity 在网格坐标 (gridX, gridZ) 创建一个可见的方块实体
func NewBlockEntity(
	em *ecs.EntityManager,
	meshes *assets.Store[*fauxgl.Mesh],
	materials *components.BlockMaterials,
	gridX, gridZ int,
	blockSize, edge float64,
) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.BlockComponent{
		GridX: gridX,
		GridZ: gridZ,
	})
	ecs.AddComponent(em, entityID, &components.MeshComponent{
		Mesh: meshes.Add(assets.NewCuboidMesh(edge)),
	})
	ecs.AddComponent(em, entityID, &components.MaterialComponent{
		Material: materials.Normal,
	})
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Translation: mgl64.Vec3{float64(gridX) * blockSize, 0, float64(gridZ) * blockSize},
	})
	ecs.AddComponent(em, entityID, &components.VisibilityComponent{
		Visible: true,
	})

	return entityID
}
