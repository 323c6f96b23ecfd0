package systems

import (
	"math"

	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraInput 一帧的摄像机控制输入
// 由场景从键盘/鼠标状态采集，CameraSystem 消费后清零视角增量
type CameraInput struct {
	// Forward, Right, Up 移动轴，取值 [-1, 1]
	// Forward/Right 在水平面内移动（不受俯仰角影响），Up 沿世界 +Y 移动
	Forward float64
	Right   float64
	Up      float64

	// LookDX, LookDY 本帧鼠标位移（像素），向右/向下为正
	LookDX float64
	LookDY float64
}

// CameraSystem 第一人称自由视角摄像机控制
// 驱动唯一的 Camera3DComponent + TransformComponent 实体
type CameraSystem struct {
	entityManager    *ecs.EntityManager
	moveSpeed        float64 // 世界单位/秒
	mouseSensitivity float64 // 弧度/像素
	maxPitch         float64 // 俯仰角上限（弧度）
	input            CameraInput
}

// NewCameraSystem 创建摄像机控制系统
func NewCameraSystem(em *ecs.EntityManager, moveSpeed, mouseSensitivity float64) *CameraSystem {
	return &CameraSystem{
		entityManager:    em,
		moveSpeed:        moveSpeed,
		mouseSensitivity: mouseSensitivity,
		maxPitch:         mgl64.DegToRad(config.CameraMaxPitchDegrees),
	}
}

// SetInput 设置下一次 Update 使用的输入
func (s *CameraSystem) SetInput(input CameraInput) {
	s.input = input
}

// Update 根据输入更新摄像机朝向和位置
// 场景中没有或有多个摄像机时不做任何事
func (s *CameraSystem) Update(deltaTime float64) {
	input := s.input
	s.input.LookDX, s.input.LookDY = 0, 0

	cameras := ecs.GetEntitiesWith2[
		*components.Camera3DComponent,
		*components.TransformComponent,
	](s.entityManager)
	if len(cameras) != 1 {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, cameras[0])
	if !ok {
		return
	}

	// 鼠标向右 → 向右转（偏航角减小）；鼠标向下 → 低头
	transform.Yaw = math.Mod(transform.Yaw-input.LookDX*s.mouseSensitivity, 2*math.Pi)
	transform.Pitch = mgl64.Clamp(transform.Pitch-input.LookDY*s.mouseSensitivity, -s.maxPitch, s.maxPitch)

	move := mgl64.Vec3{input.Right, input.Up, input.Forward}
	if move.Len() == 0 {
		return
	}
	if move.Len() > 1 {
		move = move.Normalize()
	}

	sinYaw, cosYaw := math.Sincos(transform.Yaw)
	forward := mgl64.Vec3{-sinYaw, 0, -cosYaw}
	right := mgl64.Vec3{cosYaw, 0, -sinYaw}
	up := mgl64.Vec3{0, 1, 0}

	velocity := forward.Mul(move.Z()).Add(right.Mul(move.X())).Add(up.Mul(move.Y()))
	transform.Translation = transform.Translation.Add(velocity.Mul(s.moveSpeed * deltaTime))
}
