// Package config 加载放大镜的启动配置
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvLogRules 日志分类规则环境变量，优先于配置文件
const EnvLogRules = "ZOEYMAG_LOG_RULES"

// Config 放大镜配置
type Config struct {
	WindowWidth      int    `json:"window_width"`
	WindowHeight     int    `json:"window_height"`
	DefaultZoom      int    `json:"default_zoom"`
	FixedZoom        bool   `json:"fixed_zoom"`
	ActiveIntervalMs int    `json:"active_interval_ms"`
	IdleIntervalMs   int    `json:"idle_interval_ms"`
	LogLevel         string `json:"log_level"`
	LogFile          string `json:"log_file"`
	LogRules         string `json:"log_rules"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:      500,
		WindowHeight:     500,
		DefaultZoom:      2,
		FixedZoom:        false,
		ActiveIntervalMs: 32,
		IdleIntervalMs:   1000,
		LogLevel:         "INFO",
	}
}

// ActiveInterval 活动轮询间隔
func (c *Config) ActiveInterval() time.Duration {
	return time.Duration(c.ActiveIntervalMs) * time.Millisecond
}

// IdleInterval 空闲轮询间隔
func (c *Config) IdleInterval() time.Duration {
	return time.Duration(c.IdleIntervalMs) * time.Millisecond
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("窗口尺寸必须为正数: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.DefaultZoom < 1 || c.DefaultZoom > 20 {
		return fmt.Errorf("默认倍率必须在 1-20 之间: %d", c.DefaultZoom)
	}
	if c.ActiveIntervalMs <= 0 || c.IdleIntervalMs <= 0 {
		return fmt.Errorf("轮询间隔必须为正数: active=%d idle=%d", c.ActiveIntervalMs, c.IdleIntervalMs)
	}
	if c.IdleIntervalMs < c.ActiveIntervalMs {
		return fmt.Errorf("空闲间隔不能小于活动间隔: active=%d idle=%d", c.ActiveIntervalMs, c.IdleIntervalMs)
	}
	return nil
}

// Manager 配置管理器，只读取配置不写回
type Manager struct {
	configFile string
	mu         sync.RWMutex
}

// NewManager 使用 ~/.zoey-magnifier/config.json
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return NewManagerWithDir(filepath.Join(homeDir, ".zoey-magnifier"))
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return NewManagerWithFile(filepath.Join(configDir, "config.json"))
}

// NewManagerWithFile 使用指定文件创建配置管理器
func NewManagerWithFile(path string) *Manager {
	return &Manager{configFile: path}
}

// Load 加载配置，文件不存在时返回默认配置。
// 文件中缺省的字段保留默认值。
func (m *Manager) Load() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("配置无效: %w", err)
	}
	return cfg, nil
}

// GetConfigFile 获取配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Exists 检查配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}
