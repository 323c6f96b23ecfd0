package systems

import (
	"math"

	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
)

// BlockHighlightSystem 准星悬停高亮系统
//
// 每帧执行：
//  1. 清除上一帧的高亮标记，并把对应方块的材质恢复为普通材质
//  2. 解析唯一的摄像机和唯一的窗口，任一不唯一则本帧结束
//  3. 从拾取点（默认屏幕中心）反投影出世界射线
//  4. 线性扫描所有方块，slab 测试求最近的命中方块
//  5. 为命中方块换上高亮材质并添加 BlockHighlightComponent
//
// 任一步骤失败都静默结束本帧：不 panic、不返回错误、不打日志。
// 方块按实体 ID 升序扫描，距离相同时保留先生成的方块。
type BlockHighlightSystem struct {
	entityManager *ecs.EntityManager

	// PickOrigin 决定射线穿过的屏幕点，默认 ScreenCenter
	PickOrigin PickOriginFunc

	// PickBlockSize 拾取时使用的方块包围盒边长
	// 默认 1.0，与实际渲染尺寸 block_size - 0.02 无关
	PickBlockSize float64

	// MaxDistance 拾取距离上限（不含），超过此距离的方块不会被选中
	MaxDistance float64

	highlighted ecs.EntityID // 最近一次运行选中的方块，0 表示没有
}

// NewBlockHighlightSystem 创建高亮系统，使用默认拾取点、拾取尺寸和距离上限
func NewBlockHighlightSystem(em *ecs.EntityManager) *BlockHighlightSystem {
	return &BlockHighlightSystem{
		entityManager: em,
		PickOrigin:    ScreenCenter,
		PickBlockSize: config.PickBlockSize,
		MaxDistance:   config.PickMaxDistance,
	}
}

// Highlighted 返回最近一次 Update 选中的方块实体，没有时返回 0
func (s *BlockHighlightSystem) Highlighted() ecs.EntityID {
	return s.highlighted
}

// Update 执行一帧高亮计算
func (s *BlockHighlightSystem) Update(deltaTime float64) {
	s.highlighted = 0

	materials, hasMaterials := ecs.GetResource[*components.BlockMaterials](s.entityManager)
	s.clearHighlights(materials, hasMaterials)
	if !hasMaterials {
		return
	}

	ray, ok := s.pickRay()
	if !ok {
		return
	}

	target, distance, found := s.nearestBlock(ray)
	if !found {
		return
	}

	if material, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, target); ok {
		material.Material = materials.Highlighted
	}
	ecs.AddComponent(s.entityManager, target, &components.BlockHighlightComponent{Distance: distance})
	s.highlighted = target
}

// clearHighlights 移除所有高亮标记
// 仍是方块且有材质的实体恢复为普通材质；材质资源缺失时只移除标记
func (s *BlockHighlightSystem) clearHighlights(materials *components.BlockMaterials, hasMaterials bool) {
	marked := ecs.GetEntitiesWith1[*components.BlockHighlightComponent](s.entityManager)
	for _, id := range marked {
		if hasMaterials && ecs.HasComponent[*components.BlockComponent](s.entityManager, id) {
			if material, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id); ok {
				material.Material = materials.Normal
			}
		}
		ecs.RemoveComponent[*components.BlockHighlightComponent](s.entityManager, id)
	}
}

// pickRay 解析唯一的摄像机和窗口，并计算拾取射线
func (s *BlockHighlightSystem) pickRay() (Ray, bool) {
	cameras := ecs.GetEntitiesWith2[
		*components.Camera3DComponent,
		*components.TransformComponent,
	](s.entityManager)
	if len(cameras) != 1 {
		return Ray{}, false
	}
	cam, _ := ecs.GetComponent[*components.Camera3DComponent](s.entityManager, cameras[0])
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, cameras[0])

	_, window, ok := ecs.GetSingle[*components.WindowComponent](s.entityManager)
	if !ok {
		return Ray{}, false
	}

	pickOrigin := s.PickOrigin
	if pickOrigin == nil {
		pickOrigin = ScreenCenter
	}
	x, y := pickOrigin(window)

	ray, err := ViewportToWorld(cam, transform, window.Width, window.Height, x, y)
	if err != nil {
		return Ray{}, false
	}
	ray.Direction = ray.Direction.Normalize()
	return ray, true
}

// nearestBlock 线性扫描所有方块，返回 tEntry 最小的命中方块
// 只接受 0 < tEntry < MaxDistance 的命中；起点位于方块内部（tEntry <= 0）时不选中
func (s *BlockHighlightSystem) nearestBlock(ray Ray) (ecs.EntityID, float64, bool) {
	blocks := ecs.GetEntitiesWith2[
		*components.BlockComponent,
		*components.TransformComponent,
	](s.entityManager)

	var target ecs.EntityID
	best := math.Inf(1)
	found := false

	for _, id := range blocks {
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}

		box := NewBlockAABB(transform.Translation, s.PickBlockSize)
		tEntry, _, hit := IntersectRayAABB(ray, box)
		if !hit {
			continue
		}

		if tEntry > 0 && tEntry < s.MaxDistance && tEntry < best {
			best = tEntry
			target = id
			found = true
		}
	}

	return target, best, found
}
