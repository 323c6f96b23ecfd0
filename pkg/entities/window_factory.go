package entities

import (
	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/ecs"
)

// NewWindowEntity 创建窗口状态实体
// 初始时光标锁定在窗口中心
func NewWindowEntity(em *ecs.EntityManager, width, height int) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.WindowComponent{
		Width:        width,
		Height:       height,
		CursorX:      float64(width) / 2,
		CursorY:      float64(height) / 2,
		CursorLocked: true,
	})
	return entityID
}
