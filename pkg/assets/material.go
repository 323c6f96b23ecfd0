package assets

import (
	"image/color"

	"github.com/fogleman/fauxgl"
)

// defaultSpecularPower 方块表面的默认高光指数
const defaultSpecularPower = 32

// Material 描述方块表面的着色参数
// 由渲染系统转换为 fauxgl Phong 着色器的输入
type Material struct {
	BaseColor     fauxgl.Color // 物体固有色
	SpecularPower float64      // 高光指数，越大高光越集中
}

// NewColorMaterial 从 sRGB 颜色创建材质
func NewColorMaterial(c color.Color) Material {
	return Material{
		BaseColor:     fauxgl.MakeColor(c),
		SpecularPower: defaultSpecularPower,
	}
}

// NewHexMaterial 从十六进制颜色字符串（如 "7C90FF"）创建材质
func NewHexMaterial(hex string) Material {
	return Material{
		BaseColor:     fauxgl.HexColor(hex),
		SpecularPower: defaultSpecularPower,
	}
}
