package components

// WindowComponent 应用窗口状态
// 由场景在每帧开始时根据 Ebitengine 的布局尺寸和光标状态更新
type WindowComponent struct {
	Width  int // 逻辑宽度（像素）
	Height int // 逻辑高度（像素）

	// CursorX, CursorY 光标位置（逻辑像素，左上角为原点）
	CursorX float64
	CursorY float64

	// CursorLocked 光标是否被锁定在窗口中心（第一人称模式）
	CursorLocked bool
}
