package common

// MouseButton identifies a pointer button. Values match the DOM MouseEvent.button
// numbering, which is also the order GLFW uses for its first three buttons.
type MouseButton int

const (
	MouseButtonPrimary   MouseButton = 0 // left button
	MouseButtonMiddle    MouseButton = 1 // wheel button
	MouseButtonSecondary MouseButton = 2 // right button
)

// String returns a short name for the button, used in log output.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Virtual key codes, matching GLFW key codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)
