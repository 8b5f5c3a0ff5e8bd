package record

import (
	"image/color"
	"testing"

	"github.com/swdee/go-annotate/canvas"
)

func TestRecorderCapturesCalls(t *testing.T) {

	s := NewSurface()
	ctx := canvas.ContextOf(s)

	if ctx == nil {
		t.Fatalf("recording surface must yield a context")
	}

	ctx.SetStrokeColor(color.RGBA{R: 255, A: 255})
	ctx.BeginPath()
	ctx.MoveTo(1, 2)
	ctx.LineTo(3, 4)
	ctx.Stroke()
	ctx.FillText("hello", 5, 6, 0)

	if s.Len() != 6 {
		t.Fatalf("expected 6 calls, got %d: %v", s.Len(), s.Calls)
	}

	if s.Calls[0].Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("unexpected stroke color %v", s.Calls[0].Color)
	}

	if s.Count(OpStroke) != 1 || s.Count(OpFill) != 0 {
		t.Errorf("unexpected op counts")
	}

	if texts := s.Texts(); len(texts) != 1 || texts[0] != "hello" {
		t.Errorf("unexpected texts %q", texts)
	}

	if got := s.Calls[5].String(); got != `fillText "hello" [5 6 0]` {
		t.Errorf("unexpected call string %s", got)
	}

	s.Reset()

	if s.Len() != 0 {
		t.Errorf("expected no calls after reset")
	}

	if canvas.ContextOf(Detached{}) != nil {
		t.Errorf("detached surface must not yield a context")
	}
}

func TestNilSurfaceHasNoContext(t *testing.T) {

	var typedNil *Surface

	if canvas.ContextOf(typedNil) != nil {
		t.Error("nil surface must not yield a context")
	}
}
