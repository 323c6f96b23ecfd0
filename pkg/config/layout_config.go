package config

// 布局与拾取配置常量
// 本文件定义了窗口尺寸、方块网格外观以及准星拾取的固定参数

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 是游戏的逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 是游戏的逻辑屏幕高度（像素）
	GameWindowHeight = 540

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Voxel Grid"

	// AppName gdata 存储使用的应用名（决定设置文件所在目录）
	AppName = "voxelgrid"
)

// Block Grid Configuration (方块网格配置)
const (
	// BlockGridGap 是相邻方块之间的可见缝隙（世界单位）
	// 方块渲染边长 = block_size - BlockGridGap，仅影响外观，不影响拾取
	BlockGridGap = 0.02

	// BlockNormalColor 普通方块颜色 sRGB(124, 144, 255)
	BlockNormalColor = "7C90FF"

	// BlockHighlightedColor 高亮方块颜色（白色）
	BlockHighlightedColor = "FFFFFF"

	// SkyColor 背景清屏颜色
	SkyColor = "87CEEB"
)

// Picking Configuration (准星拾取配置)
const (
	// PickMaxDistance 是射线拾取的最大距离（世界单位）
	// 沿射线的进入距离 t_entry 必须小于该值才会被选中
	PickMaxDistance = 5.0

	// PickBlockSize 是拾取测试使用的方块边长
	//
	// 注意：拾取始终按单位方块计算包围盒，与 world.block_size 无关。
	// 当 block_size != 1.0 时，可见方块与可拾取范围不一致。
	// 如需对齐，可将 BlockHighlightSystem.PickBlockSize 设为 world.block_size。
	PickBlockSize = 1.0
)

// Camera Configuration (摄像机配置)
const (
	// CameraMaxPitchDegrees 俯仰角上下限，避免视线与世界上方向平行
	CameraMaxPitchDegrees = 89.0

	// CameraStartHeight 摄像机初始高度（世界单位）
	CameraStartHeight = 2.5

	// CameraStartBackOffset 摄像机初始位置相对最后一行方块边缘向 +Z 的偏移
	// 与初始高度、俯仰角配合，使准星初始落在拾取距离之内的方块上
	CameraStartBackOffset = 2.0

	// CameraStartPitchDegrees 摄像机初始俯仰角（负值为向下看）
	CameraStartPitchDegrees = -30.0
)
