package result

// Face is the combined output of the face detector, mesh, iris, age, gender
// and emotion models for one face.  Optional model outputs are nil/empty when
// the model was not enabled.
type Face struct {
	ID             int     `json:"id"`
	Confidence     float64 `json:"confidence"`
	BoxConfidence  float64 `json:"boxConfidence,omitempty"`
	FaceConfidence float64 `json:"faceConfidence,omitempty"`
	// Box is normalized to image resolution
	Box Box `json:"box"`
	// BoxRaw is normalized to the 0..1 range
	BoxRaw Box `json:"boxRaw"`
	// Mesh points normalized to image resolution
	Mesh    []Point `json:"mesh,omitempty"`
	MeshRaw []Point `json:"meshRaw,omitempty"`
	// Annotations are named subsets of the mesh such as "leftEyeIris"
	Annotations      map[string][]Point `json:"annotations,omitempty"`
	Age              *float64           `json:"age,omitempty"`
	Gender           string             `json:"gender,omitempty"`
	GenderConfidence *float64           `json:"genderConfidence,omitempty"`
	Emotion          []Emotion          `json:"emotion,omitempty"`
	Embedding        []float64          `json:"embedding,omitempty"`
	// Iris is the estimated distance to the camera in centimeters
	Iris     *float64  `json:"iris,omitempty"`
	Rotation *Rotation `json:"rotation,omitempty"`
}

// Emotion is a single emotion classification with its score
type Emotion struct {
	Score   float64 `json:"score"`
	Emotion string  `json:"emotion"`
}

// Angle holds the face rotation angles in radians
type Angle struct {
	Roll  float64 `json:"roll"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// Gaze is the gaze direction as bearing in radians and relative strength
type Gaze struct {
	Bearing  float64 `json:"bearing"`
	Strength float64 `json:"strength"`
}

// Rotation describes face orientation
type Rotation struct {
	Angle  Angle      `json:"angle"`
	Matrix [9]float64 `json:"matrix"`
	Gaze   Gaze       `json:"gaze"`
}

// Keypoint is a named skeletal joint of a Body
type Keypoint struct {
	Part        string    `json:"part"`
	Position    Position  `json:"position"`
	PositionRaw *Position `json:"positionRaw,omitempty"`
	Score       float64   `json:"score"`
	Presence    *float64  `json:"presence,omitempty"`
}

// Body is a single detected body pose
type Body struct {
	ID        int        `json:"id"`
	Score     float64    `json:"score"`
	Box       Box        `json:"box"`
	BoxRaw    Box        `json:"boxRaw"`
	Keypoints []Keypoint `json:"keypoints"`
}

// Keypoint returns the first keypoint with the given part name
func (b *Body) Keypoint(part string) (Keypoint, bool) {
	for _, kp := range b.Keypoints {
		if kp.Part == part {
			return kp, true
		}
	}

	return Keypoint{}, false
}

// Hand annotation group names
const (
	Thumb        = "thumb"
	IndexFinger  = "indexFinger"
	MiddleFinger = "middleFinger"
	RingFinger   = "ringFinger"
	Pinky        = "pinky"
	PalmBase     = "palmBase"
)

// Hand is a single detected hand with its landmarks
type Hand struct {
	ID         int     `json:"id"`
	Confidence float64 `json:"confidence"`
	Box        Box     `json:"box"`
	BoxRaw     Box     `json:"boxRaw"`
	Landmarks  []Point `json:"landmarks"`
	// Annotations group landmarks per finger and the palm base
	Annotations map[string][]Point `json:"annotations"`
}

// Item is a single detected object
type Item struct {
	ID         int       `json:"id"`
	Score      float64   `json:"score"`
	StrideSize *int      `json:"strideSize,omitempty"`
	Class      int       `json:"class"`
	Label      string    `json:"label"`
	Center     []float64 `json:"center,omitempty"`
	CenterRaw  []float64 `json:"centerRaw,omitempty"`
	Box        Box       `json:"box"`
	BoxRaw     Box       `json:"boxRaw"`
}

// Hands holds the hands assigned to a Person
type Hands struct {
	Left  *Hand `json:"left"`
	Right *Hand `json:"right"`
}

// Person groups the face, body, hands and gestures that belong to one
// individual.  The nested entities are references into the Result they were
// joined from and are not owned by the Person.
type Person struct {
	ID       int       `json:"id"`
	Face     *Face     `json:"face"`
	Body     *Body     `json:"body"`
	Hands    Hands     `json:"hands"`
	Gestures []Gesture `json:"gestures"`
	Box      Box       `json:"box"`
	BoxRaw   *Box      `json:"boxRaw,omitempty"`
}

// Result is the complete output of the detection pipeline for one frame
type Result struct {
	Face    []Face    `json:"face"`
	Body    []Body    `json:"body"`
	Hand    []Hand    `json:"hand"`
	Gesture []Gesture `json:"gesture"`
	Object  []Item    `json:"object"`
	// Persons is optional; when nil People joins them from the other entities
	Persons []Person `json:"persons,omitempty"`
	// Performance holds timing values in milliseconds for each operation
	Performance map[string]float64 `json:"performance"`
	// Timestamp in milliseconds elapsed since the UNIX epoch
	Timestamp int64 `json:"timestamp"`
	// Shape is the optional [batch, height, width, channels] of the input
	// used to compute Person.BoxRaw
	Shape []int `json:"shape,omitempty"`
}

// People returns the persons of the result, joining them from the face,
// body, hand and gesture entities when Persons was not supplied
func (r *Result) People() []Person {
	if r == nil {
		return nil
	}

	if r.Persons != nil {
		return r.Persons
	}

	return JoinPersons(r.Face, r.Body, r.Hand, r.Gesture, r.Shape)
}
