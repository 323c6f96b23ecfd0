package components

// BlockComponent 标识一个可被准星选中的网格方块
// 纯标签组件：位置来自 TransformComponent，材质来自 MaterialComponent
type BlockComponent struct {
	// GridX, GridZ 方块在网格中的列/行索引（生成时写入，仅用于调试输出）
	GridX int
	GridZ int
}
