package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/zoeyai/zoeymag/pkg/loop"
)

func TestAngleDelta(t *testing.T) {
	tests := []struct {
		dy   float64
		want int
	}{
		{1, 120},
		{-1, -120},
		{3, 360},
		{0.5, 60},
		{-0.25, -30},
	}

	for _, tt := range tests {
		if got := angleDelta(tt.dy); got != tt.want {
			t.Errorf("angleDelta(%v) = %d, want %d", tt.dy, got, tt.want)
		}
	}
}

func TestHoverEvent(t *testing.T) {
	tests := []struct {
		name        string
		was, now    bool
		wantKind    loop.Kind
		wantChanged bool
	}{
		{"enter", false, true, loop.PointerEnter, true},
		{"leave", true, false, loop.PointerLeave, true},
		{"stay inside", true, true, 0, false},
		{"stay outside", false, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, changed := hoverEvent(tt.was, tt.now)
			if changed != tt.wantChanged || (changed && kind != tt.wantKind) {
				t.Errorf("hoverEvent(%v, %v) = %v, %v", tt.was, tt.now, kind, changed)
			}
		})
	}
}

func TestInsideLayout(t *testing.T) {
	size := image.Pt(500, 500)
	if !insideLayout(0, 0, size) || !insideLayout(499, 499, size) {
		t.Error("边界内的点应在窗口内")
	}
	if insideLayout(500, 10, size) || insideLayout(-1, 10, size) {
		t.Error("边界外的点不应在窗口内")
	}
}

func TestToRGBA(t *testing.T) {
	if toRGBA(nil) != nil {
		t.Error("nil 图像应返回 nil")
	}

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if toRGBA(src) != src {
		t.Error("紧凑的 RGBA 图像应直接返回")
	}

	sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	got := toRGBA(sub)
	if got == sub || got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("子图应复制为原点对齐的图像: %v", got.Bounds())
	}

	// 原点对齐、行宽一致但行数更少的子图需要复制，否则 Pix 长度与尺寸不符
	top := src.SubImage(image.Rect(0, 0, 4, 2)).(*image.RGBA)
	gotTop := toRGBA(top)
	if gotTop == top {
		t.Error("行数较少的子图不应直接返回")
	}
	if len(gotTop.Pix) != 4*4*2 {
		t.Errorf("Pix 长度 = %d, want %d", len(gotTop.Pix), 4*4*2)
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	conv := toRGBA(gray)
	r, _, _, _ := conv.At(1, 1).RGBA()
	if r>>8 != 200 {
		t.Errorf("灰度转换不匹配: %d", r>>8)
	}
}
