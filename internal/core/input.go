package core

// Key is a recognized key press, abstracted from host key names.
// Hosts translate their own events (DOM key names, Bubble Tea key strings)
// into a Key before handing them to the game.
type Key int

const (
	KeyNone  Key = iota // Unrecognized key; games ignore it
	KeyUp               // Up arrow
	KeyDown             // Down arrow
	KeyLeft             // Left arrow
	KeyRight            // Right arrow
	KeyStart            // Space bar - start / play again
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// Recognized reports whether the key is one the game reacts to.
// Hosts suppress their default behavior (page scrolling) for these keys.
func (k Key) Recognized() bool {
	return k >= KeyUp && k <= KeyStart
}

// ParseDOMKey translates a browser KeyboardEvent.key value.
// Both the current and the legacy name for the space bar are accepted.
func ParseDOMKey(name string) Key {
	switch name {
	case "ArrowUp", "Up":
		return KeyUp
	case "ArrowDown", "Down":
		return KeyDown
	case "ArrowLeft", "Left":
		return KeyLeft
	case "ArrowRight", "Right":
		return KeyRight
	case " ", "Spacebar":
		return KeyStart
	default:
		return KeyNone
	}
}
