package components

// BlockHighlightComponent 方块高亮标记
// 表示该方块当前显示高亮材质
//
// 不变量：每次 BlockHighlightSystem 运行结束后，至多一个实体带有此组件。
// 标记在同一帧内被清除和重新添加，不会跨帧累积。
type BlockHighlightComponent struct {
	// Distance 射线进入方块包围盒时的距离 t_entry（世界单位）
	Distance float64
}
