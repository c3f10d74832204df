package screen

import (
	"image"
	"image/color"
	"testing"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

func TestFindDisplay(t *testing.T) {
	displays := []auto.Display{
		{Index: 0, Bounds: auto.Region{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Index: 1, Bounds: auto.Region{X: 1920, Y: 0, Width: 1280, Height: 1024}},
	}

	tests := []struct {
		name      string
		p         auto.Point
		wantIndex int
		wantOK    bool
	}{
		{"primary", auto.Point{X: 100, Y: 100}, 0, true},
		{"secondary origin", auto.Point{X: 1920, Y: 0}, 1, true},
		{"below secondary", auto.Point{X: 2000, Y: 1050}, 0, false},
		{"negative", auto.Point{X: -5, Y: 10}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := findDisplay(displays, tt.p)
			if ok != tt.wantOK {
				t.Fatalf("findDisplay(%+v) ok = %v, want %v", tt.p, ok, tt.wantOK)
			}
			if ok && d.Index != tt.wantIndex {
				t.Errorf("findDisplay(%+v) = %d, want %d", tt.p, d.Index, tt.wantIndex)
			}
		})
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	dst := Scale(src, 500, 250)
	if dst == nil {
		t.Fatal("Scale() 返回 nil")
	}
	if got := dst.Bounds().Size(); got != image.Pt(500, 250) {
		t.Errorf("缩放尺寸 = %v, want 500x250", got)
	}

	r, _, _, a := dst.At(250, 125).RGBA()
	if r>>8 < 198 || r>>8 > 202 || a>>8 < 254 {
		t.Errorf("缩放后颜色不匹配: r=%d a=%d", r>>8, a>>8)
	}
}

func TestScaleInvalid(t *testing.T) {
	if Scale(nil, 10, 10) != nil {
		t.Error("nil 图像应返回 nil")
	}
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if Scale(src, 0, 10) != nil {
		t.Error("非正尺寸应返回 nil")
	}

	empty := Scale(image.NewRGBA(image.Rectangle{}), 8, 8)
	if empty == nil || empty.Bounds().Dx() != 8 {
		t.Error("空图像应返回目标尺寸的空白图像")
	}
}

func TestHostDevicePixelRatio(t *testing.T) {
	d := auto.Display{Index: 1, Bounds: auto.Region{X: 1920, Width: 2560, Height: 1440}}
	noSystem := func(auto.Display) (float64, bool) { return 0, false }

	tests := []struct {
		name   string
		system func(auto.Display) (float64, bool)
		ratio  func(auto.Display) float64
		want   float64
	}{
		{"default", noSystem, nil, 1.0},
		{"fallback ratio", noSystem, func(auto.Display) float64 { return 2 }, 2},
		{"invalid fallback", noSystem, func(auto.Display) float64 { return 0 }, 1.0},
		{
			name:   "system scale wins",
			system: func(auto.Display) (float64, bool) { return 1.5, true },
			ratio:  func(auto.Display) float64 { return 2 },
			want:   1.5,
		},
		{
			name: "per display",
			system: func(got auto.Display) (float64, bool) {
				if got.Index == 1 {
					return 1.25, true
				}
				return 1, true
			},
			want: 1.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHost(tt.ratio)
			h.systemScale = tt.system
			if got := h.DevicePixelRatio(d); got != tt.want {
				t.Errorf("DevicePixelRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCaptureScreen 测试截屏功能
func TestCaptureScreen(t *testing.T) {
	if testing.Short() {
		t.Skip("跳过需要图形环境的测试")
	}
	displays := Displays()
	if len(displays) < 1 {
		t.Skip("没有可用的显示器")
	}

	d := displays[0]
	img, err := CaptureRegion(d, auto.RectF{X: 0, Y: 0, Width: 100.4, Height: 50})
	if err != nil {
		// macOS 需要屏幕录制权限
		t.Skipf("截屏失败 (可能需要屏幕录制权限): %v", err)
	}

	bounds := img.Bounds()
	t.Logf("截屏成功: %dx%d", bounds.Dx(), bounds.Dy())
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		t.Error("截屏尺寸为 0")
	}
}
