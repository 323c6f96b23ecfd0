package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// CameraSettings 摄像机与视角控制设置
type CameraSettings struct {
	FovY             float64 `yaml:"fov_y"`             // 垂直视野角（角度制）
	Near             float64 `yaml:"near"`              // 近裁剪面
	Far              float64 `yaml:"far"`               // 远裁剪面
	MoveSpeed        float64 `yaml:"move_speed"`        // 移动速度（世界单位/秒）
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // 鼠标灵敏度（弧度/像素）
}

// RenderSettings 渲染设置
type RenderSettings struct {
	// Supersample 超采样倍数（1 = 关闭）
	// 以 N 倍分辨率光栅化后缩放回逻辑尺寸，用于抗锯齿
	Supersample int `yaml:"supersample"`
}

// GameSettings 全局游戏设置
type GameSettings struct {
	World      config.WorldConfig `yaml:"world"`
	Camera     CameraSettings     `yaml:"camera"`
	Render     RenderSettings     `yaml:"render"`
	Fullscreen bool               `yaml:"fullscreen"` // 启动时是否全屏
}

// 设置取值范围
const (
	minFovY        = 30.0
	maxFovY        = 120.0
	minSensitivity = 0.0005
	maxSensitivity = 0.02
	minSupersample = 1
	maxSupersample = 4
)

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		World: config.DefaultWorldConfig(),
		Camera: CameraSettings{
			FovY:             70,
			Near:             0.1,
			Far:              100,
			MoveSpeed:        4.0,
			MouseSensitivity: 0.003,
		},
		Render: RenderSettings{
			Supersample: 2,
		},
		Fullscreen: false,
	}
}

// Validate 校验设置的合法性
func (s *GameSettings) Validate() error {
	if err := s.World.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if s.Camera.FovY < minFovY || s.Camera.FovY > maxFovY {
		return fmt.Errorf("camera.fov_y must be between %v and %v, got %v", minFovY, maxFovY, s.Camera.FovY)
	}
	if !(s.Camera.Near > 0) || !(s.Camera.Far > s.Camera.Near) {
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got near=%v far=%v", s.Camera.Near, s.Camera.Far)
	}
	if s.Camera.MoveSpeed < 0 || math.IsNaN(s.Camera.MoveSpeed) {
		return fmt.Errorf("camera.move_speed cannot be negative, got %v", s.Camera.MoveSpeed)
	}
	if s.Render.Supersample < minSupersample || s.Render.Supersample > maxSupersample {
		return fmt.Errorf("render.supersample must be between %d and %d, got %d", minSupersample, maxSupersample, s.Render.Supersample)
	}
	return nil
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 目前总是 nil，加载失败只记录警告并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 已保存的设置缺少的字段使用默认值填充；校验失败时整体回退到默认设置。
//
// 返回：
//   - error: 如果读取、反序列化或校验失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值之上反序列化，旧版本存档缺少的字段保持默认
	loadedSettings := DefaultSettings()
	if err := yaml.Unmarshal(data, loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loadedSettings.World.ApplyDefaults()

	if err := loadedSettings.Validate(); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("invalid saved settings: %w", err)
	}

	sm.settings = loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully (chunk_size=%d, block_size=%.2f)",
		sm.settings.World.ChunkSize, sm.settings.World.BlockSize)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetWorld 替换世界网格配置
// 配置不合法时保持原值并返回错误
// 注意：仅修改内存中的设置，已生成的网格不会改变
func (sm *SettingsManager) SetWorld(world config.WorldConfig) error {
	world.ApplyDefaults()
	if err := world.Validate(); err != nil {
		return err
	}
	sm.settings.World = world
	return nil
}

// SetFovY 设置垂直视野角，限制在 [30, 120] 度
func (sm *SettingsManager) SetFovY(fovY float64) {
	sm.settings.Camera.FovY = clamp(fovY, minFovY, maxFovY)
}

// SetMouseSensitivity 设置鼠标灵敏度，限制在合理范围内
func (sm *SettingsManager) SetMouseSensitivity(sensitivity float64) {
	sm.settings.Camera.MouseSensitivity = clamp(sensitivity, minSensitivity, maxSensitivity)
}

// SetSupersample 设置超采样倍数，限制在 [1, 4]
func (sm *SettingsManager) SetSupersample(factor int) {
	if factor < minSupersample {
		factor = minSupersample
	}
	if factor > maxSupersample {
		factor = maxSupersample
	}
	sm.settings.Render.Supersample = factor
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clamp 将值限制在 [lo, hi] 范围内
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
