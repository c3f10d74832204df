// Package loop 提供单线程事件循环：处理器注册、可变间隔定时器和按序分发。
// 所有处理器都在调用 Step/Dispatch 的 goroutine 上执行，不会重入。
package loop

import (
	"errors"
	"sync/atomic"
	"time"
)

// ErrInterrupted 收到中断信号后 Step 返回的错误
var ErrInterrupted = errors.New("收到中断信号")

// Kind 事件类型
type Kind int

const (
	Tick Kind = iota
	WheelScroll
	PointerEnter
	PointerLeave
	Repaint
)

func (k Kind) String() string {
	switch k {
	case Tick:
		return "Tick"
	case WheelScroll:
		return "WheelScroll"
	case PointerEnter:
		return "PointerEnter"
	case PointerLeave:
		return "PointerLeave"
	case Repaint:
		return "Repaint"
	default:
		return "Unknown"
	}
}

// Painter 重绘时提供的绘图面
type Painter interface {
	Size() (width, height float64)
	StrokeRect(x, y, width, height, penWidth float64)
}

// Event 事件
type Event struct {
	Kind Kind
	// AngleDelta 垂直滚动量，单位 1/8 度（一格滚轮 = 120）
	AngleDelta int
	// Painter 仅 Repaint 事件有效
	Painter Painter
}

// Handler 事件处理函数
type Handler func(Event)

// Loop 事件循环
type Loop struct {
	handlers    map[Kind][]Handler
	queue       []Event
	dispatching bool
	interrupted atomic.Bool

	running  bool
	interval time.Duration
	elapsed  time.Duration
}

// New 创建事件循环
func New() *Loop {
	return &Loop{handlers: make(map[Kind][]Handler)}
}

// Handle 注册事件处理器，同类处理器按注册顺序执行
func (l *Loop) Handle(kind Kind, h Handler) {
	l.handlers[kind] = append(l.handlers[kind], h)
}

// Post 将事件加入队列，在下一次 Step 时分发
func (l *Loop) Post(ev Event) {
	l.queue = append(l.queue, ev)
}

// Dispatch 立即分发事件；若正在分发其他事件则排队，保证不重入
func (l *Loop) Dispatch(ev Event) {
	if l.dispatching {
		l.Post(ev)
		return
	}

	l.dispatching = true
	defer func() { l.dispatching = false }()
	for _, h := range l.handlers[ev.Kind] {
		h(ev)
	}
}

// StartTimer 以指定间隔启动重复定时器
func (l *Loop) StartTimer(interval time.Duration) {
	l.running = true
	l.interval = interval
	l.elapsed = 0
}

// Interval 当前定时器间隔
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// SetInterval 修改定时器间隔并重新计时
func (l *Loop) SetInterval(d time.Duration) {
	l.interval = d
	l.elapsed = 0
}

// Interrupt 请求退出，可在任意 goroutine 调用
func (l *Loop) Interrupt() {
	l.interrupted.Store(true)
}

// Step 推进循环：先分发排队事件，再推进定时器。
// 每次 Step 最多触发一次 Tick，滞后的定时器不会补发。
func (l *Loop) Step(dt time.Duration) error {
	if l.interrupted.Load() {
		return ErrInterrupted
	}

	for len(l.queue) > 0 {
		ev := l.queue[0]
		l.queue = l.queue[1:]
		l.Dispatch(ev)
	}

	if !l.running || l.interval <= 0 {
		return nil
	}

	l.elapsed += dt
	if l.elapsed < l.interval {
		return nil
	}
	l.elapsed -= l.interval
	if l.elapsed >= l.interval {
		l.elapsed = 0
	}
	l.Dispatch(Event{Kind: Tick})
	return nil
}
