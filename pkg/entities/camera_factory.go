package entities

import (
	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewCameraEntity 创建透视摄像机实体
//
// 参数:
//   - em: 实体管理器
//   - camera: 透视参数（视野角、裁剪面）
//   - position: 摄像机位置
//   - yaw, pitch: 初始朝向（弧度）
func NewCameraEntity(em *ecs.EntityManager, camera components.Camera3DComponent, position mgl64.Vec3, yaw, pitch float64) ecs.EntityID {
	entityID := em.CreateEntity()

	cam := camera
	ecs.AddComponent(em, entityID, &cam)
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Translation: position,
		Yaw:         yaw,
		Pitch:       pitch,
	})

	return entityID
}

// DefaultCameraPose 返回俯瞰整个网格的初始摄像机位姿
// 摄像机对准中间一列方块、位于最后一行方块之后，朝 -Z 俯视
func DefaultCameraPose(world config.WorldConfig) (position mgl64.Vec3, yaw, pitch float64) {
	extent := world.Extent()
	position = mgl64.Vec3{
		float64(world.ChunkSize/2) * world.BlockSize,
		config.CameraStartHeight,
		extent + world.BlockSize/2 + config.CameraStartBackOffset,
	}
	return position, 0, mgl64.DegToRad(config.CameraStartPitchDegrees)
}
