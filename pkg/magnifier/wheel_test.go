package magnifier

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zoeyai/zoeymag/pkg/auto"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		angle int
		want  int
	}{
		{120, 1},
		{-120, -1},
		{360, 3},
		{-360, -3},
		{60, 0},
		{-119, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Steps(tt.angle), "angle %d", tt.angle)
	}
}

func TestWrapRing(t *testing.T) {
	for m := MinZoom; m <= MaxZoom; m++ {
		for s := -50; s <= 50; s++ {
			got := Wrap(m + s)
			assert.GreaterOrEqual(t, got, MinZoom)
			assert.LessOrEqual(t, got, MaxZoom)

			want := ((m+s-1)%20+20)%20 + 1
			assert.Equal(t, want, got, "m=%d s=%d", m, s)
		}
	}

	assert.Equal(t, 1, Wrap(21))
	assert.Equal(t, 20, Wrap(0))
	assert.Equal(t, 19, Wrap(-1))
	assert.Equal(t, 2, Wrap(22))
}

func TestWheel(t *testing.T) {
	tests := []struct {
		name  string
		start int
		angle int
		want  int
	}{
		{"up one", 2, 120, 3},
		{"down wraps", 2, -360, 19},
		{"up wraps", 19, 360, 2},
		{"max to min", 20, 120, 1},
		{"min to max", 1, -120, 20},
		{"partial detent ignored", 5, 100, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(WithZoom(tt.start))
			f.wheel.enabled = true

			f.win.Wheel(tt.angle)

			assert.Equal(t, tt.want, f.win.Zoom())
			assert.Equal(t, strconv.Itoa(tt.want), f.surface.label)
			if tt.want == tt.start {
				assert.Empty(t, f.wheel.lines)
			} else {
				assert.Len(t, f.wheel.lines, 1)
			}
		})
	}
}

func TestWheelChangesNextCapture(t *testing.T) {
	f := newFixture()
	f.win.Wheel(120)
	f.host.cursor = auto.Point{X: 300, Y: 300}

	f.win.Tick()

	assert.InDelta(t, 500.0/3, f.host.captures[0].Width, 1e-9)
}

func TestFixedZoomIgnoresWheel(t *testing.T) {
	f := newFixture(WithFixedZoom())
	assert.Equal(t, FixedZoom, f.win.Zoom())
	assert.Equal(t, "3", f.surface.label)

	f.win.Wheel(240)
	assert.Equal(t, FixedZoom, f.win.Zoom())
}
