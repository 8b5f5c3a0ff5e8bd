package ggcanvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/swdee/go-annotate/canvas"
)

func TestFillRectangle(t *testing.T) {

	s := New(40, 40)
	defer s.Close()

	ctx := canvas.ContextOf(s)

	ctx.SetFillColor(color.NRGBA{R: 255, A: 255})
	ctx.BeginPath()
	ctx.MoveTo(10, 10)
	ctx.LineTo(30, 10)
	ctx.LineTo(30, 30)
	ctx.LineTo(10, 30)
	ctx.ClosePath()
	ctx.Fill()

	r, _, _, a := s.Image().At(20, 20).RGBA()

	if a == 0 || r>>8 < 200 {
		t.Errorf("expected red inside rectangle, got r=%d a=%d", r>>8, a>>8)
	}

	if _, _, _, a := s.Image().At(2, 2).RGBA(); a != 0 {
		t.Errorf("expected transparent outside rectangle")
	}
}

func TestTransparentStrokeIsSkipped(t *testing.T) {

	s := New(20, 20)
	defer s.Close()

	ctx := s.Context2D()

	ctx.SetStrokeColor(color.Transparent)
	ctx.SetLineWidth(4)
	ctx.BeginPath()
	ctx.MoveTo(0, 10)
	ctx.LineTo(20, 10)
	ctx.Stroke()

	if _, _, _, a := s.Image().At(10, 10).RGBA(); a != 0 {
		t.Errorf("transparent stroke must not paint")
	}
}

func TestCopyFromImage(t *testing.T) {

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	for i := range src.Pix {
		src.Pix[i] = 255
	}

	dst := New(8, 8)
	defer dst.Close()

	canvas.Copy(dst, FromImage(src))

	if _, _, _, a := dst.Image().At(1, 1).RGBA(); a == 0 {
		t.Errorf("expected copied pixels")
	}
}

func TestUnusableSurfaceHasNoContext(t *testing.T) {

	var typedNil *Surface

	if canvas.ContextOf(typedNil) != nil {
		t.Error("nil surface must not yield a context")
	}

	if canvas.ContextOf(&Surface{}) != nil {
		t.Error("zero value surface must not yield a context")
	}
}
