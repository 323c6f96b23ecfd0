package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig 世界网格配置
// 对应设置文件中的 world 段：
//
//	world:
//	  block_size: 1.0
//	  chunk_size: 16
//
// 生成器只读取该配置，不会修改它
type WorldConfig struct {
	BlockSize float64 `yaml:"block_size"` // 每个方块的边长（世界单位）
	ChunkSize int     `yaml:"chunk_size"` // 网格每边的方块数量
}

// 默认世界配置
const (
	DefaultBlockSize = 1.0
	DefaultChunkSize = 16
)

// DefaultWorldConfig 返回默认世界配置
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		BlockSize: DefaultBlockSize,
		ChunkSize: DefaultChunkSize,
	}
}

// worldConfigFile 世界配置文件的顶层结构
type worldConfigFile struct {
	World WorldConfig `yaml:"world"`
}

// LoadWorldConfig 从 YAML 文件加载世界配置
//
// 参数：
//   - filepath: 配置文件路径
//
// 返回：
//   - *WorldConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadWorldConfig(filepath string) (*WorldConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config file %s: %w", filepath, err)
	}
	return ParseWorldConfig(data)
}

// ParseWorldConfig 从 YAML 数据解析世界配置
// 未出现的字段使用默认值
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	file := worldConfigFile{World: DefaultWorldConfig()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse world config: %w", err)
	}

	cfg := file.World
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults 为未配置的字段填充默认值
// block_size 为 0 视为未配置；chunk_size 为 0 是合法的空网格，保持不变
func (c *WorldConfig) ApplyDefaults() {
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
}

// Validate 验证世界配置的合法性
func (c WorldConfig) Validate() error {
	if math.IsNaN(c.BlockSize) || math.IsInf(c.BlockSize, 0) || c.BlockSize <= 0 {
		return fmt.Errorf("block_size must be a positive finite number, got %v", c.BlockSize)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk_size cannot be negative, got %d", c.ChunkSize)
	}
	return nil
}

// Extent 返回网格在 X/Z 方向上的总跨度（首尾方块中心之间的距离）
func (c WorldConfig) Extent() float64 {
	if c.ChunkSize <= 1 {
		return 0
	}
	return float64(c.ChunkSize-1) * c.BlockSize
}
