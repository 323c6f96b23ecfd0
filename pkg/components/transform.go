package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 三维空间变换
//
// 方块只使用 Translation；摄像机额外使用 Yaw/Pitch 表示朝向。
// 约定：Yaw = 0 且 Pitch = 0 时朝向 -Z，Yaw 绕 +Y 轴逆时针为正，Pitch 向上为正。
type TransformComponent struct {
	Translation mgl64.Vec3 // 世界坐标位置
	Yaw         float64    // 偏航角（弧度）
	Pitch       float64    // 俯仰角（弧度）
}
