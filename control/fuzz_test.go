package control_test

import (
	"testing"

	"github.com/spectrumkit/spectrum/control"
)

// FuzzTrack drives a three handle track with random interactions and checks
// that the handles stay ordered within the track, and that every change is
// preceded by input for the same handle.
func FuzzTrack(f *testing.F) {
	f.Add([]byte{0, 0, 1, 200, 2, 3, 1, 4, 5, 2})
	f.Add([]byte{5, 10, 1, 255, 6, 3, 2, 4, 7, 8, 9, 3})
	f.Add([]byte{3, 0, 4, 6, 4, 8, 7, 0, 100})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tr, rec := threeHandles(t)
		handles := tr.Handles()
		next := func() byte {
			if len(ops) == 0 {
				return 0
			}
			b := ops[0]
			ops = ops[1:]
			return b
		}
		for len(ops) > 0 {
			switch next() % 10 {
			case 0:
				tr.PointerDown(handles[int(next())%len(handles)])
			case 1:
				tr.PointerMove(float64(next())/200, next()%2 == 0)
			case 2:
				tr.PointerUp()
			case 3:
				tr.Focus(handles[int(next())%len(handles)])
			case 4:
				if h := tr.Focused(); h != nil {
					tr.KeyDown(h, control.Key(next()%9), true)
				}
			case 5:
				tr.TrackPointerDown(float64(next())/255, true)
			case 6:
				tr.PointerCancel()
			case 7:
				h := handles[int(next())%len(handles)]
				tr.ControllerInput(h, float64(next())*1.1-10)
			case 8:
				tr.Blur(tr.Focused())
			case 9:
				tr.SetDisabled(next()%4 == 0)
			}
			prev := 0.0
			for _, h := range handles {
				if h.Value() < prev || h.Value() > 255 {
					t.Fatalf("handle %s out of order: %v", h.Name, tr.Values())
				}
				prev = h.Value()
			}
		}
		pending := map[string]bool{}
		for _, e := range rec.events {
			switch e.Kind {
			case control.InputEvent:
				pending[e.Handle] = true
			case control.ChangeEvent:
				if !pending[e.Handle] {
					t.Fatalf("change of %s without input", e.Handle)
				}
				pending[e.Handle] = false
			}
		}
	})
}
