package render

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/canvas/record"
	"github.com/swdee/go-annotate/result"
)

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestFaceConfidenceScenario(t *testing.T) {

	s := record.NewSurface()

	faces := []result.Face{{Box: result.NewBox(10, 10, 100, 100), Confidence: 0.87}}
	Face(s, faces, DefaultStyle())

	if n := s.Count(record.OpStroke); n != 1 {
		t.Errorf("expected a single stroked box, got %d strokes", n)
	}

	moves := s.Ops(record.OpMoveTo)

	if len(moves) != 1 || !reflect.DeepEqual(moves[0].Args, []float64{38, 10}) {
		t.Errorf("expected rounded box to start at (38,10), got %v", moves)
	}

	if n := s.Count(record.OpQuadTo); n != 4 {
		t.Errorf("expected 4 rounded corners, got %d", n)
	}

	texts := s.Texts()
	expected := []string{"face confidence: 87%", "face confidence: 87%"}

	if !reflect.DeepEqual(texts, expected) {
		t.Fatalf("expected shadow and label %q, got %q", expected, texts)
	}

	calls := s.Ops(record.OpFillText)

	if !reflect.DeepEqual(calls[0].Args, []float64{15, 26, 0}) {
		t.Errorf("unexpected shadow position %v", calls[0].Args)
	}

	if !reflect.DeepEqual(calls[1].Args, []float64{14, 25, 0}) {
		t.Errorf("unexpected label position %v", calls[1].Args)
	}
}

func TestFaceLabels(t *testing.T) {

	f := &result.Face{
		Confidence:       0.999,
		Gender:           "male",
		GenderConfidence: floatPtr(0.456),
		Age:              floatPtr(23.5),
		Iris:             floatPtr(1.25),
		Emotion: []result.Emotion{
			{Score: 0.61, Emotion: "happy"},
			{Score: 0.2, Emotion: "neutral"},
		},
		Rotation: &result.Rotation{Angle: result.Angle{Roll: 0.12345, Yaw: -0.5, Pitch: 1.999}},
	}

	expected := []string{
		"face confidence: 99%",
		"male 45% confident",
		"age: 23.5",
		"iris distance: 1.25",
		"61% happy 20% neutral",
		"roll: 0.12 yaw:-0.5 pitch:1.99",
	}

	if got := FaceLabels(f); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %q, got %q", expected, got)
	}

	if got := FaceLabels(&result.Face{}); !reflect.DeepEqual(got, []string{"face"}) {
		t.Errorf("expected fallback label, got %q", got)
	}

	// rotation is skipped without a roll angle
	noRoll := &result.Face{Rotation: &result.Rotation{Angle: result.Angle{Yaw: 1}}}

	if got := FaceLabels(noRoll); !reflect.DeepEqual(got, []string{"face"}) {
		t.Errorf("expected rotation to be skipped, got %q", got)
	}

	// disabling labels removes every face label but keeps the box
	style := DefaultStyle()
	style.DrawLabels = false

	s := record.NewSurface()
	Face(s, []result.Face{*f}, style)

	if n := s.Count(record.OpFillText); n != 0 {
		t.Errorf("expected no face labels with DrawLabels off, got %q", s.Texts())
	}

	if s.Count(record.OpStroke) == 0 {
		t.Error("expected the face box to be stroked with DrawLabels off")
	}
}

func TestFaceLabelsStackedBottomFirst(t *testing.T) {

	s := record.NewSurface()
	style := DefaultStyle()
	style.ShadowColor = color.NRGBA{}

	faces := []result.Face{{
		Box:        result.NewBox(-5, 40, 50, 50),
		Confidence: 0.5,
		Age:        floatPtr(30),
	}}

	Face(s, faces, style)

	calls := s.Ops(record.OpFillText)

	if len(calls) != 2 {
		t.Fatalf("expected 2 label lines without shadow, got %v", calls)
	}

	if calls[0].Text != "age: 30" || !reflect.DeepEqual(calls[0].Args, []float64{4, 79, 0}) {
		t.Errorf("expected age line first at (4,79), got %v", calls[0])
	}

	if calls[1].Text != "face confidence: 50%" || !reflect.DeepEqual(calls[1].Args, []float64{4, 55, 0}) {
		t.Errorf("expected confidence line last at (4,55), got %v", calls[1])
	}
}

func TestFaceMeshAndIris(t *testing.T) {

	mesh := []result.Point{result.Pt3(0, 0, 1), result.Pt(10, 0), result.Pt(0, 10), result.Pt(10, 10)}
	iris := []result.Point{result.Pt(5, 5), result.Pt(3, 5), result.Pt(5, 2), result.Pt(9, 5), result.Pt(5, 10)}

	style := DefaultStyle()
	style.DrawBoxes = false
	style.DrawLabels = false
	style.DrawPoints = true
	style.FillPolygons = true
	// second triangle references a missing point and is skipped
	style.Triangulation = []int{0, 1, 2, 1, 2, 9}

	s := record.NewSurface()
	Face(s, []result.Face{{
		Mesh:        mesh,
		Annotations: map[string][]result.Point{"leftEyeIris": iris, "rightEyeIris": iris[:3]},
	}}, style)

	ellipses := s.Ops(record.OpEllipse)

	// four mesh points plus one iris, the short right iris ring is ignored
	if len(ellipses) != 5 {
		t.Fatalf("expected 5 ellipses, got %d", len(ellipses))
	}

	if !reflect.DeepEqual(ellipses[4].Args, []float64{5, 5, 3, 4}) {
		t.Errorf("unexpected iris ellipse %v", ellipses[4].Args)
	}

	// first mesh point has depth so it is tinted
	fills := s.Ops(record.OpFillColor)

	if fills[1].Color != DepthColor(1, pointAlpha) {
		t.Errorf("expected depth tinted point, got %v", fills[1].Color)
	}

	strokes := s.Ops(record.OpStrokeColor)

	if last := strokes[len(strokes)-1]; last.Color != irisStroke {
		t.Errorf("expected iris stroke color, got %v", last.Color)
	}

	// one triangle and one iris, each stroked and filled
	if s.Count(record.OpStroke) != 2 || s.Count(record.OpFill) != 4+2 {
		t.Errorf("unexpected stroke/fill counts %d/%d", s.Count(record.OpStroke), s.Count(record.OpFill))
	}
}

func TestFaceWithoutTriangulationDrawsIrisOnly(t *testing.T) {

	style := DefaultStyle()

	if len(style.Triangulation) != 0 {
		t.Fatalf("default style should carry no triangulation, got %d indices", len(style.Triangulation))
	}

	style.DrawBoxes = false
	style.DrawLabels = false

	iris := []result.Point{result.Pt(5, 5), result.Pt(3, 5), result.Pt(5, 2), result.Pt(9, 5), result.Pt(5, 10)}

	s := record.NewSurface()
	Face(s, []result.Face{{
		Mesh:        []result.Point{result.Pt(0, 0)},
		Annotations: map[string][]result.Point{"rightEyeIris": iris},
	}}, style)

	if s.Count(record.OpLineTo) != 0 || s.Count(record.OpEllipse) != 1 {
		t.Errorf("expected only the iris ellipse, got %v", s.Calls)
	}
}

func body(parts ...string) result.Body {

	b := result.Body{Score: 0.756, Box: result.NewBox(0, 0, 100, 200)}

	for i, p := range parts {
		b.Keypoints = append(b.Keypoints, result.Keypoint{
			Part:     p,
			Position: result.Position{X: float64(10 * i), Y: float64(20 * i)},
			Score:    0.9,
		})
	}

	return b
}

func TestTorsoNeedsAllCorners(t *testing.T) {

	style := DefaultStyle()
	style.DrawBoxes = false
	style.DrawLabels = false

	partial := record.NewSurface()
	Body(partial, []result.Body{body("leftShoulder", "rightShoulder", "leftHip")}, style)

	full := record.NewSurface()
	Body(full, []result.Body{body("leftShoulder", "rightShoulder", "leftHip", "rightHip")}, style)

	// shoulder line, left leg and both arms
	if n := partial.Count(record.OpStroke); n != 4 {
		t.Errorf("expected 4 strokes without torso, got %d", n)
	}

	// torso plus both legs now that rightHip is known
	if n := full.Count(record.OpStroke); n != 6 {
		t.Errorf("expected 6 strokes with torso, got %d", n)
	}
}

func TestBodyLabels(t *testing.T) {

	style := DefaultStyle()
	style.DrawPolygons = false
	style.ShadowColor = color.NRGBA{}

	b := body("nose")
	b.Keypoints[0].Position.Z = -3

	s := record.NewSurface()
	Body(s, []result.Body{b}, style)

	expected := []string{"body 75%", "nose 90%"}

	if got := s.Texts(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}

	calls := s.Ops(record.OpFillText)

	if !reflect.DeepEqual(calls[0].Args, []float64{2, 24, 100}) {
		t.Errorf("unexpected body label position %v", calls[0].Args)
	}

	fills := s.Ops(record.OpFillColor)

	if last := fills[len(fills)-1]; last.Color != DepthColor(-3, labelAlpha) {
		t.Errorf("expected depth tinted keypoint label, got %v", last.Color)
	}

	if s.Calls[0].Op != record.OpLineJoin || s.Calls[0].Args[0] != float64(canvas.JoinRound) {
		t.Errorf("expected round line join first, got %v", s.Calls[0])
	}
}

func TestHand(t *testing.T) {

	style := DefaultStyle()
	style.ShadowColor = color.NRGBA{}

	h := result.Hand{
		Box: result.NewBox(0, 0, 50, 50),
		Annotations: map[string][]result.Point{
			result.Thumb:       {result.Pt3(1, 1, 0), result.Pt3(2, 2, 4), result.Pt3(3, 3, 0)},
			result.IndexFinger: {result.Pt3(5, 5, 0), result.Pt3(6, 6, 0)},
			result.PalmBase:    {result.Pt3(9, 9, 0)},
		},
	}

	s := record.NewSurface()
	Hand(s, []result.Hand{h}, style)

	expected := []string{"hand", "index", "thumb", "palm"}

	if got := s.Texts(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}

	// box stroked twice, then 2 index segments and 3 thumb segments
	if n := s.Count(record.OpStroke); n != 2+2+3 {
		t.Errorf("unexpected stroke count %d", n)
	}

	// first segment of a finger is degenerate
	moves := s.Ops(record.OpMoveTo)
	lines := s.Ops(record.OpLineTo)

	first := len(moves) - 5

	if !reflect.DeepEqual(moves[first].Args, []float64{5, 5}) ||
		!reflect.DeepEqual(lines[len(lines)-5].Args, []float64{5, 5}) {
		t.Errorf("expected degenerate first segment at (5,5)")
	}

	// segment color follows the destination point depth
	strokes := s.Ops(record.OpStrokeColor)

	if strokes[len(strokes)-2].Color != DepthColor(4, labelAlpha) {
		t.Errorf("expected tinted thumb segment, got %v", strokes[len(strokes)-2].Color)
	}
}

func TestObjectLabel(t *testing.T) {

	style := DefaultStyle()
	style.ShadowColor = color.NRGBA{}

	s := record.NewSurface()
	Object(s, []result.Item{{Score: 0.5, Label: "cat", Box: result.NewBox(0, 0, 5, 5)}}, style)

	if got := s.Texts(); !reflect.DeepEqual(got, []string{"50% cat"}) {
		t.Errorf("expected label \"50%% cat\", got %q", got)
	}

	if s.Count(record.OpStroke) != 2 {
		t.Errorf("expected box stroked before and after the label")
	}

	s.Reset()
	Object(s, []result.Item{{Score: 0.996, Label: "dog"}}, style)

	if got := s.Texts(); !reflect.DeepEqual(got, []string{"100% dog"}) {
		t.Errorf("object scores must be rounded, got %q", got)
	}
}

func TestPersonLabels(t *testing.T) {

	style := DefaultStyle()
	style.ShadowColor = color.NRGBA{}

	s := record.NewSurface()
	Person(s, []result.Person{{ID: 7}, {ID: 3}}, style)

	if got := s.Texts(); !reflect.DeepEqual(got, []string{"person #0", "person #1"}) {
		t.Errorf("person labels must use the slice position, got %q", got)
	}
}

func TestGesture(t *testing.T) {

	gestures := []result.Gesture{
		{Part: result.GestureFace, Index: 0, Gesture: "facing camera"},
		{Part: result.GestureHand, Index: 2},
		{Part: result.GestureHand, Index: 3, Gesture: "thumb up"},
	}

	s := record.NewSurface()
	Gesture(s, gestures, DefaultStyle())

	calls := s.Ops(record.OpFillText)

	if len(calls) != 4 {
		t.Fatalf("expected 2 lines with shadows, got %v", calls)
	}

	if calls[1].Text != "face : facing camera" || !reflect.DeepEqual(calls[1].Args, []float64{6, 24, 0}) {
		t.Errorf("unexpected first line %v", calls[1])
	}

	if calls[2].Text != "hand #3: thumb up" || !reflect.DeepEqual(calls[2].Args, []float64{8, 50, 0}) {
		t.Errorf("unexpected second shadow %v", calls[2])
	}
}

func TestEmptyInputsDrawNothing(t *testing.T) {

	s := record.NewSurface()
	style := DefaultStyle()

	Face(s, nil, style)
	Body(s, []result.Body{}, style)
	Hand(s, nil, style)
	Object(s, nil, style)
	Person(s, nil, style)
	Gesture(s, nil, style)

	DrawLines(s.Context2D(), nil, style)
	DrawCurves(s.Context2D(), []result.Point{}, style)
	DrawPoint(nil, 1, 1, 0, style)
	DrawBox(nil, 0, 0, 1, 1, style)

	if s.Len() != 0 {
		t.Errorf("expected no drawing calls, got %v", s.Calls)
	}

	faces := []result.Face{{Confidence: 1}}

	// invalid targets are ignored
	Face(nil, faces, style)
	Face(record.Detached{}, faces, style)
}

func TestRenderingIsPure(t *testing.T) {

	style := DefaultStyle()
	style.DrawPoints = true

	faces := []result.Face{{Box: result.NewBox(1, 2, 3, 4), Confidence: 0.3,
		Mesh: []result.Point{result.Pt3(1, 1, 2)}}}
	bodies := []result.Body{body("leftShoulder", "rightShoulder", "leftHip", "rightHip", "leftKnee")}

	a, b := record.NewSurface(), record.NewSurface()

	for _, s := range []*record.Surface{a, b} {
		Face(s, faces, style)
		Body(s, bodies, style)
	}

	if !reflect.DeepEqual(a.Calls, b.Calls) {
		t.Errorf("rendering the same input twice must give identical calls")
	}
}

func TestDrawCurves(t *testing.T) {

	style := DefaultStyle()
	style.UseCurves = true

	s := record.NewSurface()
	pts := []result.Point{result.Pt(0, 0), result.Pt(10, 0), result.Pt(20, 10), result.Pt(30, 10)}

	DrawCurves(s.Context2D(), pts, style)

	quads := s.Ops(record.OpQuadTo)

	if len(quads) != 3 {
		t.Fatalf("expected 3 quadratic segments, got %d", len(quads))
	}

	if !reflect.DeepEqual(quads[0].Args, []float64{0, 0, 5, 0}) {
		t.Errorf("expected first segment to end at the midpoint, got %v", quads[0].Args)
	}

	if !reflect.DeepEqual(quads[2].Args, []float64{20, 10, 30, 10}) {
		t.Errorf("expected last segment to end on the last point, got %v", quads[2].Args)
	}

	// curved boxes are ellipses
	s.Reset()
	DrawBox(s.Context2D(), 0, 0, 10, 20, style)

	if e := s.Ops(record.OpEllipse); len(e) != 1 || !reflect.DeepEqual(e[0].Args, []float64{5, 10, 5, 10}) {
		t.Errorf("unexpected curved box %v", s.Calls)
	}

	// two points fall back to straight lines
	s.Reset()
	DrawCurves(s.Context2D(), pts[:2], style)

	if s.Count(record.OpQuadTo) != 0 || s.Count(record.OpLineTo) != 2 {
		t.Errorf("expected straight lines for two points, got %v", s.Calls)
	}
}

type panicContext struct {
	record.Recorder
}

func (panicContext) Stroke() { panic("broken backend") }

type panicSurface struct{}

func (panicSurface) Context2D() canvas.Context { return &panicContext{} }

func TestAnnotatorRecoversFromPanic(t *testing.T) {
	// must not panic
	Object(panicSurface{}, []result.Item{{Score: 1}}, DefaultStyle())
}

func TestStyleWith(t *testing.T) {

	base := DefaultStyle()
	red := color.NRGBA{R: 255, A: 255}

	o := &Override{Color: &red, LineWidth: floatPtr(2), DrawPoints: boolPtr(true)}
	got := base.With(o)

	if got.Color != red || got.LineWidth != 2 || !got.DrawPoints {
		t.Errorf("override not applied: %+v", got)
	}

	if got.LabelColor != base.LabelColor || got.RoundRect != 28 || !got.DrawBoxes {
		t.Errorf("unset fields must keep base values: %+v", got)
	}

	if base.Color == red || base.DrawPoints {
		t.Errorf("base style was modified")
	}

	if !reflect.DeepEqual(base.With(nil), base) {
		t.Errorf("nil override must return the base style")
	}
}

func TestOverrideJSON(t *testing.T) {

	var o Override

	data := `{"color": "red", "shadowColor": "", "font": "bold 20px Arial",
		"bufferedOutput": true, "bufferedFactor": 4, "unknown": 1}`

	if err := json.Unmarshal([]byte(data), &o); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	style := Resolve(&o)

	if style.Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("unexpected color %v", style.Color)
	}

	if style.HasShadow() {
		t.Errorf("empty shadow color must disable the shadow")
	}

	if style.Font.Family != "Arial" || style.Font.Size != 20 || !style.Font.Bold {
		t.Errorf("unexpected font %+v", style.Font)
	}

	if !style.BufferedOutput || style.BufferedFactor != 4 || style.LineHeight != 24 {
		t.Errorf("unexpected style %+v", style)
	}

	out, err := json.Marshal(o)

	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var back Override

	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("decode of encoded override failed: %v", err)
	}

	if !reflect.DeepEqual(Resolve(&back), style) {
		t.Errorf("override changed after encoding: %s", out)
	}

	if err := json.Unmarshal([]byte(`{"labelColor": "nope"}`), &o); err == nil {
		t.Errorf("expected error for invalid color")
	}
}

func TestLoadTriangulation(t *testing.T) {

	dir := t.TempDir()

	valid := filepath.Join(dir, "tri.json")
	os.WriteFile(valid, []byte("[0, 1, 2, 2, 1, 3]"), 0644)

	tri, err := LoadTriangulation(valid)

	if err != nil || len(tri) != 6 {
		t.Fatalf("unexpected triangulation %v %v", tri, err)
	}

	short := filepath.Join(dir, "short.json")
	os.WriteFile(short, []byte("[0, 1]"), 0644)

	if _, err := LoadTriangulation(short); err == nil {
		t.Errorf("expected error for partial triangle")
	}

	if _, err := LoadTriangulation(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}

	style := filepath.Join(dir, "style.json")
	os.WriteFile(style, []byte(`{"lineWidth": 3}`), 0644)

	o, err := LoadOverride(style)

	if err != nil || o.LineWidth == nil || *o.LineWidth != 3 {
		t.Errorf("unexpected override %+v %v", o, err)
	}
}
