package components

// Camera3DComponent 透视摄像机参数
// 位置和朝向由同一实体上的 TransformComponent 提供
//
// 场景中应当恰好存在一个摄像机；为 0 个或多个时，拾取和渲染都会跳过本帧
type Camera3DComponent struct {
	// FovY 垂直视野角（角度制）
	FovY float64

	// Near 近裁剪面距离
	Near float64

	// Far 远裁剪面距离
	Far float64
}
