// Package magnifier 实现放大镜窗口：按定时器采样鼠标位置，截取光标周围区域并放大显示。
//
// 窗口本身不依赖具体的 GUI 框架，屏幕、定时器、显示面和日志分类都通过接口注入，
// 事件处理器注册到宿主提供的事件循环上。
package magnifier

import (
	"image"
	"strconv"
	"time"

	"github.com/zoeyai/zoeymag/pkg/auto"
	"github.com/zoeyai/zoeymag/pkg/loop"
)

const (
	MinZoom     = 1
	MaxZoom     = 20
	DefaultZoom = 2
	// FixedZoom 固定倍率模式下的放大倍数
	FixedZoom = 3

	DefaultActiveInterval = 32 * time.Millisecond
	DefaultIdleInterval   = 1000 * time.Millisecond
)

// Host 屏幕能力
type Host interface {
	CursorPosition() auto.Point
	ScreenAt(p auto.Point) (auto.Display, bool)
	CaptureRegion(d auto.Display, r auto.RectF) (image.Image, error)
	ScaleImage(img image.Image, width, height int) image.Image
	DevicePixelRatio(d auto.Display) float64
}

// Surface 显示截图和倍率文字的显示面
type Surface interface {
	// Size 逻辑像素尺寸
	Size() (width, height int)
	SetImage(img image.Image)
	SetLabel(text string)
}

// Timer 重复定时器
type Timer interface {
	StartTimer(interval time.Duration)
	Interval() time.Duration
	SetInterval(d time.Duration)
}

// EventLoop 宿主事件循环
type EventLoop interface {
	Handle(kind loop.Kind, h loop.Handler)
}

// Channel 日志分类
type Channel interface {
	IsDebugEnabled() bool
	Debug(format string, args ...interface{})
}

// Channels 窗口使用的日志分类，nil 分类不输出
type Channels struct {
	General Channel
	Timer   Channel
	Wheel   Channel
}

type nopChannel struct{}

func (nopChannel) IsDebugEnabled() bool                     { return false }
func (nopChannel) Debug(format string, args ...interface{}) {}

func (c Channels) withDefaults() Channels {
	if c.General == nil {
		c.General = nopChannel{}
	}
	if c.Timer == nil {
		c.Timer = nopChannel{}
	}
	if c.Wheel == nil {
		c.Wheel = nopChannel{}
	}
	return c
}

// Options 窗口配置
type Options struct {
	Zoom           int
	WheelEnabled   bool
	ActiveInterval time.Duration
	IdleInterval   time.Duration
}

// Option 配置选项函数类型
type Option func(*Options)

// DefaultOptions 默认配置
func DefaultOptions() *Options {
	return &Options{
		Zoom:           DefaultZoom,
		WheelEnabled:   true,
		ActiveInterval: DefaultActiveInterval,
		IdleInterval:   DefaultIdleInterval,
	}
}

// WithZoom 设置初始倍率，超出范围时按环形回绕
func WithZoom(zoom int) Option {
	return func(o *Options) {
		o.Zoom = Wrap(zoom)
	}
}

// WithFixedZoom 固定倍率 3，忽略滚轮
func WithFixedZoom() Option {
	return func(o *Options) {
		o.Zoom = FixedZoom
		o.WheelEnabled = false
	}
}

// WithIntervals 设置活动/空闲轮询间隔
func WithIntervals(active, idle time.Duration) Option {
	return func(o *Options) {
		if active > 0 {
			o.ActiveInterval = active
		}
		if idle > 0 {
			o.IdleInterval = idle
		}
	}
}

// State 定时器状态
type State int

const (
	Active State = iota
	Idle
)

func (s State) String() string {
	if s == Idle {
		return "Idle"
	}
	return "Active"
}

// Window 放大镜窗口
type Window struct {
	host    Host
	surface Surface
	timer   Timer
	log     Channels
	opts    Options

	zoom        int
	noMoveCount int
	lastPos     auto.Point
	hasLastPos  bool
}

// New 创建放大镜窗口并以活动间隔启动定时器
func New(host Host, surface Surface, timer Timer, channels Channels, opts ...Option) *Window {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	w := &Window{
		host:    host,
		surface: surface,
		timer:   timer,
		log:     channels.withDefaults(),
		opts:    *o,
		zoom:    o.Zoom,
	}

	w.surface.SetLabel(strconv.Itoa(w.zoom))
	w.timer.StartTimer(w.opts.ActiveInterval)
	return w
}

// Register 将事件处理器注册到事件循环
func (w *Window) Register(l EventLoop) {
	l.Handle(loop.Tick, func(loop.Event) { w.Tick() })
	l.Handle(loop.WheelScroll, func(ev loop.Event) { w.Wheel(ev.AngleDelta) })
	l.Handle(loop.PointerEnter, func(loop.Event) { w.PointerEnter() })
	l.Handle(loop.PointerLeave, func(loop.Event) { w.PointerLeave() })
	l.Handle(loop.Repaint, func(ev loop.Event) { w.Repaint(ev.Painter) })
}

// Zoom 当前倍率
func (w *Window) Zoom() int {
	return w.zoom
}

// State 由定时器当前间隔决定
func (w *Window) State() State {
	if w.timer.Interval() == w.opts.IdleInterval {
		return Idle
	}
	return Active
}

// PointerEnter 鼠标进入窗口，目前无功能
func (w *Window) PointerEnter() {
	w.log.General.Debug("enterEvent")
}

// PointerLeave 鼠标离开窗口，目前无功能
func (w *Window) PointerLeave() {
	w.log.General.Debug("leaveEvent")
}

// Repaint 调试模式下在窗口内侧绘制 1 像素边框
func (w *Window) Repaint(p loop.Painter) {
	if p == nil || !w.log.General.IsDebugEnabled() {
		return
	}
	const pen = 1.0
	width, height := p.Size()
	p.StrokeRect(0, 0, width-pen, height-pen, pen)
}
