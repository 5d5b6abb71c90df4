package control

// Key is a navigation key, independent of the toolkit delivering it.
type Key int

const (
	KeyNone Key = iota
	ArrowLeft
	ArrowRight
	ArrowUp
	ArrowDown
	PageUp
	PageDown
	Home
	End
)

var keyNames = map[string]Key{
	"ArrowLeft":  ArrowLeft,
	"ArrowRight": ArrowRight,
	"ArrowUp":    ArrowUp,
	"ArrowDown":  ArrowDown,
	"PageUp":     PageUp,
	"PageDown":   PageDown,
	"Home":       Home,
	"End":        End,
}

// KeyByName returns the key with a DOM style key code, e.g. "ArrowUp".
func KeyByName(name string) Key {
	return keyNames[name]
}

// KeyDown applies a key press to the focused handle h. Right and up increase
// the value in left-to-right layouts; in right-to-left layouts left and right
// are swapped. Returns true if the value changed.
func (t *Track) KeyDown(h *Handle, k Key, leftToRight bool) bool {
	switch k {
	case ArrowRight, ArrowLeft:
		n := 1
		if (k == ArrowLeft) == leftToRight {
			n = -1
		}
		return t.StepBy(h, n)
	case ArrowUp:
		return t.StepBy(h, 1)
	case ArrowDown:
		return t.StepBy(h, -1)
	case PageUp:
		return t.StepBy(h, PageSteps)
	case PageDown:
		return t.StepBy(h, -PageSteps)
	case Home:
		return t.StepToBound(h, false)
	case End:
		return t.StepToBound(h, true)
	}
	return false
}
