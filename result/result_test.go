package result

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
  "face": [{
    "id": 0, "confidence": 0.87,
    "box": [10, 10, 100, 100], "boxRaw": [0.1, 0.1, 0.2, 0.2],
    "mesh": [[1, 2, 3], [4, 5]],
    "annotations": {"leftEyeIris": [[20, 20, 0], [18, 20], [20, 18], [22, 20], [20, 22]]},
    "age": 31.5, "gender": "female", "genderConfidence": 0.9,
    "emotion": [{"score": 0.7, "emotion": "happy"}]
  }],
  "body": [{
    "id": 0, "score": 0.8, "box": [0, 0, 200, 400], "boxRaw": [0, 0, 0.5, 1],
    "keypoints": [{"part": "nose", "position": {"x": 50, "y": 40, "z": -2}, "score": 0.95}]
  }],
  "hand": [{
    "id": 3, "confidence": 0.7, "box": [150, 100, 40, 40], "boxRaw": [0, 0, 0, 0],
    "landmarks": [[150, 100, 1]],
    "annotations": {"thumb": [[150, 100, 1], [155, 105, 2]]}
  }],
  "gesture": [{"face": 0, "gesture": "facing camera"}, {"hand": 3, "gesture": "thumb up"}],
  "object": [{"id": 1, "score": 0.5, "class": 15, "label": "cat", "box": [0, 0, 5, 5], "boxRaw": [0, 0, 0, 0]}],
  "performance": {"total": 12.5},
  "timestamp": 1700000000000,
  "unknown": true
}`

func TestDecodeResult(t *testing.T) {

	res, err := Decode(strings.NewReader(sampleJSON))

	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(res.Face) != 1 || res.Face[0].Confidence != 0.87 {
		t.Fatalf("unexpected faces %+v", res.Face)
	}

	face := res.Face[0]

	if face.Mesh[0] != Pt3(1, 2, 3) || face.Mesh[1] != Pt(4, 5) {
		t.Errorf("unexpected mesh points %+v", face.Mesh)
	}

	if face.Age == nil || *face.Age != 31.5 {
		t.Errorf("expected age 31.5, got %v", face.Age)
	}

	if face.Iris != nil || face.Rotation != nil {
		t.Errorf("absent optional fields must be nil")
	}

	if len(face.Annotations["leftEyeIris"]) != 5 {
		t.Errorf("expected 5 iris points, got %d", len(face.Annotations["leftEyeIris"]))
	}

	if kp := res.Body[0].Keypoints[0]; kp.Position.Point() != Pt3(50, 40, -2) {
		t.Errorf("unexpected keypoint position %+v", kp.Position)
	}

	expectedGestures := []Gesture{
		{Part: GestureFace, Index: 0, Gesture: "facing camera"},
		{Part: GestureHand, Index: 3, Gesture: "thumb up"},
	}

	for i, g := range expectedGestures {
		if res.Gesture[i] != g {
			t.Errorf("gesture %d: expected %+v, got %+v", i, g, res.Gesture[i])
		}
	}

	if res.Performance["total"] != 12.5 || res.Timestamp != 1700000000000 {
		t.Errorf("unexpected performance/timestamp %v %d", res.Performance, res.Timestamp)
	}
}

func TestPointUnmarshalErrors(t *testing.T) {

	var p Point

	if err := json.Unmarshal([]byte(`[1]`), &p); err == nil {
		t.Errorf("expected error for single coordinate")
	}

	if err := json.Unmarshal([]byte(`{"x":1}`), &p); err == nil {
		t.Errorf("expected error for object point")
	}
}

func TestGestureRoundTrip(t *testing.T) {

	g := Gesture{Part: GestureIris, Index: 2, Gesture: "looking left"}

	data, err := json.Marshal(g)

	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Gesture

	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if back != g {
		t.Errorf("expected %+v, got %+v", g, back)
	}
}

func TestCloneIsDeep(t *testing.T) {

	res, err := Decode(strings.NewReader(sampleJSON))

	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	c := res.Clone()

	c.Face[0].Mesh[0].X = 999
	c.Face[0].Annotations["leftEyeIris"][0].X = 999
	*c.Face[0].Age = 99
	c.Body[0].Keypoints[0].Position.X = 999
	c.Hand[0].Landmarks[0].X = 999
	c.Hand[0].Annotations["thumb"][1].Y = 999
	c.Object[0].Box[0] = 999
	c.Performance["total"] = 0

	if res.Face[0].Mesh[0].X != 1 || res.Face[0].Annotations["leftEyeIris"][0].X != 20 ||
		*res.Face[0].Age != 31.5 {
		t.Errorf("face was not deep copied")
	}

	if res.Body[0].Keypoints[0].Position.X != 50 {
		t.Errorf("body was not deep copied")
	}

	if res.Hand[0].Landmarks[0].X != 150 || res.Hand[0].Annotations["thumb"][1].Y != 105 {
		t.Errorf("hand was not deep copied")
	}

	if res.Object[0].Box[0] != 0 || res.Performance["total"] != 12.5 {
		t.Errorf("object/performance was not deep copied")
	}
}

func TestJoinPersons(t *testing.T) {

	faces := []Face{{ID: 0, Box: NewBox(40, 10, 20, 20)}}
	bodies := []Body{{ID: 5, Box: NewBox(20, 0, 100, 200)}}
	hands := []Hand{
		{ID: 1, Box: NewBox(-10, 100, 40, 40)}, // ends inside body: left
		{ID: 2, Box: NewBox(100, 100, 40, 40)}, // starts inside body: right
		{ID: 3, Box: NewBox(500, 500, 10, 10)}, // unrelated
	}
	gestures := []Gesture{
		{Part: GestureFace, Index: 0, Gesture: "facing camera"},
		{Part: GestureBody, Index: 5, Gesture: "raise hand"},
		{Part: GestureHand, Index: 3, Gesture: "thumb up"},
	}

	persons := JoinPersons(faces, bodies, hands, gestures, []int{1, 200, 400, 3})

	if len(persons) != 1 {
		t.Fatalf("expected 1 person, got %d", len(persons))
	}

	p := persons[0]

	if p.Face != &faces[0] || p.Body != &bodies[0] {
		t.Errorf("person must reference the joined face and body")
	}

	if p.Hands.Left == nil || p.Hands.Left.ID != 1 {
		t.Errorf("expected left hand id 1, got %+v", p.Hands.Left)
	}

	if p.Hands.Right == nil || p.Hands.Right.ID != 2 {
		t.Errorf("expected right hand id 2, got %+v", p.Hands.Right)
	}

	if len(p.Gestures) != 2 {
		t.Errorf("expected 2 gestures, got %+v", p.Gestures)
	}

	expectedBox := NewBox(-10, 0, 150, 200)

	if p.Box != expectedBox {
		t.Errorf("expected box %v, got %v", expectedBox, p.Box)
	}

	if p.BoxRaw == nil || *p.BoxRaw != expectedBox.Scale(400, 200) {
		t.Errorf("unexpected raw box %v", p.BoxRaw)
	}
}

func TestPeoplePrefersSuppliedPersons(t *testing.T) {

	res := &Result{
		Face:    []Face{{Box: NewBox(0, 0, 10, 10)}},
		Persons: []Person{},
	}

	if n := len(res.People()); n != 0 {
		t.Errorf("expected supplied empty persons, got %d", n)
	}

	res.Persons = nil

	if n := res.Len(KindPerson); n != 1 {
		t.Errorf("expected 1 joined person, got %d", n)
	}
}

func TestLoadAndApplyLabels(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")

	if err := os.WriteFile(file, []byte("person\n bicycle \ncar\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	labels, err := LoadLabels(file)

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(labels) != 3 || labels[1] != "bicycle" {
		t.Fatalf("unexpected labels %q", labels)
	}

	res := &Result{Object: []Item{{Class: 2}, {Class: 1, Label: "bike"}, {Class: 7}}}
	res.ApplyLabels(labels)

	if res.Object[0].Label != "car" || res.Object[1].Label != "bike" || res.Object[2].Label != "" {
		t.Errorf("unexpected labels after apply %+v", res.Object)
	}

	if _, err := LoadLabels(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
