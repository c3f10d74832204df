package main

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/zoeyai/zoeymag/pkg/loop"
)

const (
	labelSize    = 14
	labelPadding = 6
	// 一格滚轮对应的角度增量（1/8 度）
	angleUnitsPerLine = 120
)

var labelBackground = color.RGBA{A: 160}

// game ebiten 宿主：驱动事件循环，同时作为放大镜的显示面
type game struct {
	loop          *loop.Loop
	width, height int

	frame *ebiten.Image
	label string

	font      *truetype.Font
	face      text.Face
	faceScale float64

	scale    float64
	inside   bool
	lastStep time.Time
}

func newGame(l *loop.Loop, width, height int) (*game, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &game{
		loop:   l,
		width:  width,
		height: height,
		font:   f,
		scale:  1,
	}, nil
}

// Size 显示面逻辑尺寸
func (g *game) Size() (int, int) {
	return g.width, g.height
}

// SetImage 替换显示的放大图像
func (g *game) SetImage(img image.Image) {
	rgba := toRGBA(img)
	if rgba == nil {
		return
	}

	size := rgba.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Size() != size {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(size.X, size.Y)
	}
	g.frame.WritePixels(rgba.Pix)
}

// SetLabel 更新倍率文字
func (g *game) SetLabel(s string) {
	g.label = s
}

func (g *game) Update() error {
	now := time.Now()
	var dt time.Duration
	if !g.lastStep.IsZero() {
		dt = now.Sub(g.lastStep)
	}
	g.lastStep = now

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.loop.Post(loop.Event{Kind: loop.WheelScroll, AngleDelta: angleDelta(dy)})
	}

	x, y := ebiten.CursorPosition()
	inside := insideLayout(x, y, g.layoutSize())
	if kind, changed := hoverEvent(g.inside, inside); changed {
		g.loop.Post(loop.Event{Kind: kind})
	}
	g.inside = inside

	return g.loop.Step(dt)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
	g.drawLabel(screen)
	g.loop.Dispatch(loop.Event{Kind: loop.Repaint, Painter: &painter{dst: screen, scale: g.scale}})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	size := g.layoutSize()
	return size.X, size.Y
}

func (g *game) layoutSize() image.Point {
	return image.Pt(
		int(math.Round(float64(g.width)*g.scale)),
		int(math.Round(float64(g.height)*g.scale)),
	)
}

func (g *game) drawLabel(screen *ebiten.Image) {
	if g.label == "" {
		return
	}
	if g.face == nil || g.faceScale != g.scale {
		g.face = text.NewGoXFace(truetype.NewFace(g.font, &truetype.Options{
			Size:    labelSize,
			DPI:     72 * g.scale,
			Hinting: font.HintingFull,
		}))
		g.faceScale = g.scale
	}

	w, h := text.Measure(g.label, g.face, 0)
	pad := labelPadding * g.scale
	vector.DrawFilledRect(screen, float32(pad), float32(pad),
		float32(w+2*pad), float32(h+2*pad), labelBackground, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(2*pad, 2*pad)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, g.label, g.face, op)
}

// painter 以逻辑坐标绘图，按设备像素比换算
type painter struct {
	dst   *ebiten.Image
	scale float64
}

func (p *painter) Size() (float64, float64) {
	b := p.dst.Bounds()
	return float64(b.Dx()) / p.scale, float64(b.Dy()) / p.scale
}

func (p *painter) StrokeRect(x, y, width, height, penWidth float64) {
	s := p.scale
	vector.StrokeRect(p.dst, float32(x*s), float32(y*s), float32(width*s), float32(height*s),
		float32(penWidth*s), color.White, false)
}

// angleDelta 将 ebiten 的滚动行数换算为角度增量
func angleDelta(dy float64) int {
	return int(math.Round(dy * angleUnitsPerLine))
}

func insideLayout(x, y int, size image.Point) bool {
	return x >= 0 && y >= 0 && x < size.X && y < size.Y
}

// hoverEvent 根据前后两次的悬停状态给出进入/离开事件
func hoverEvent(wasInside, inside bool) (loop.Kind, bool) {
	switch {
	case !wasInside && inside:
		return loop.PointerEnter, true
	case wasInside && !inside:
		return loop.PointerLeave, true
	default:
		return 0, false
	}
}

// toRGBA 转换为原点对齐、紧凑排列的 RGBA 图像
func toRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) &&
		rgba.Stride == 4*b.Dx() && len(rgba.Pix) == 4*b.Dx()*b.Dy() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
