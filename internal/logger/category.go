package logger

import (
	"fmt"
	"strings"
	"sync"
)

// 分类名称
const (
	CategoryMagnifier = "magnifier"
	CategoryTimer     = "magnifier.timer"
	CategoryWheel     = "magnifier.wheel"
)

// Rule 单条分类过滤规则，例如 "magnifier.timer.debug=true"
type Rule struct {
	Pattern string
	Enabled bool
}

// matches 判断规则是否作用于指定分类，Pattern 以 * 结尾时按前缀匹配
func (r Rule) matches(name string) bool {
	if prefix, ok := strings.CutSuffix(r.Pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return r.Pattern == name
}

// ParseRules 解析过滤规则，规则之间用 ; 或换行分隔
func ParseRules(s string) ([]Rule, error) {
	var rules []Rule
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("无效的日志规则: %q", field)
		}
		key = strings.TrimSpace(key)

		pattern, ok := strings.CutSuffix(key, ".debug")
		if !ok || pattern == "" {
			return nil, fmt.Errorf("日志规则必须以 .debug 结尾: %q", field)
		}

		var enabled bool
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "on":
			enabled = true
		case "false", "0", "off":
			enabled = false
		default:
			return nil, fmt.Errorf("无效的日志规则值: %q", field)
		}

		rules = append(rules, Rule{Pattern: pattern, Enabled: enabled})
	}
	return rules, nil
}

// Registry 管理命名分类及其调试开关
type Registry struct {
	mu         sync.RWMutex
	logger     *Logger
	rules      []Rule
	categories map[string]*Category
}

// NewRegistry 创建分类注册表，所有分类默认关闭调试输出
func NewRegistry(l *Logger) *Registry {
	return &Registry{
		logger:     l,
		categories: make(map[string]*Category),
	}
}

// SetRules 替换过滤规则，后出现的规则优先
func (r *Registry) SetRules(rules []Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append([]Rule(nil), rules...)
	for _, c := range r.categories {
		c.setDebug(r.resolve(c.name))
	}
}

// AddRules 在现有规则之后追加规则
func (r *Registry) AddRules(rules []Rule) {
	r.mu.RLock()
	merged := append(append([]Rule(nil), r.rules...), rules...)
	r.mu.RUnlock()
	r.SetRules(merged)
}

func (r *Registry) resolve(name string) bool {
	enabled := false
	for _, rule := range r.rules {
		if rule.matches(name) {
			enabled = rule.Enabled
		}
	}
	return enabled
}

// Category 获取（或创建）指定名称的分类
func (r *Registry) Category(name string) *Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.categories[name]; ok {
		return c
	}
	c := &Category{name: name, logger: r.logger}
	c.setDebug(r.resolve(name))
	r.categories[name] = c
	return c
}

// Category 命名日志分类
type Category struct {
	mu     sync.RWMutex
	name   string
	debug  bool
	logger *Logger
}

func (c *Category) setDebug(enabled bool) {
	c.mu.Lock()
	c.debug = enabled
	c.mu.Unlock()
}

// IsDebugEnabled 分类是否启用调试输出
func (c *Category) IsDebugEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debug
}

// Debug 分类启用时输出调试日志
func (c *Category) Debug(format string, args ...interface{}) {
	if !c.IsDebugEnabled() {
		return
	}
	c.logger.write(DEBUG, true, "[%s] %s", c.name, fmt.Sprintf(format, args...))
}
