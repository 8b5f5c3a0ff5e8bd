package render

import (
	"bytes"
	"os"
	"testing"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/canvas/raster"
	"github.com/swdee/go-annotate/canvas/record"
	"github.com/swdee/go-annotate/log"
	"github.com/swdee/go-annotate/result"
)

func TestAnnotatorsIgnoreUnusableSurfaces(t *testing.T) {

	var out bytes.Buffer
	log.SetSink(&out)

	defer log.SetSink(os.Stdout)

	var nilRaster *raster.Surface
	var nilRecord *record.Surface

	surfaces := map[string]canvas.Surface{
		"nil raster":  nilRaster,
		"zero raster": &raster.Surface{},
		"nil record":  nilRecord,
	}

	style := DefaultStyle()
	box := result.NewBox(1, 1, 10, 10)

	for name, s := range surfaces {
		Face(s, []result.Face{{Box: box, Confidence: 0.5}}, style)
		Body(s, []result.Body{{Box: box, Score: 0.5}}, style)
		Hand(s, []result.Hand{{Box: box}}, style)
		Object(s, []result.Item{{Box: box, Score: 0.5, Label: "cat"}}, style)
		Person(s, []result.Person{{Box: box}}, style)
		Gesture(s, []result.Gesture{{Part: result.GestureFace, Gesture: "blink"}}, style)

		if out.Len() != 0 {
			t.Errorf("%s: expected a silent no-op, got log output %q", name, out.String())
			out.Reset()
		}
	}
}
