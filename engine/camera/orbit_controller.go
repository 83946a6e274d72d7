package camera

import (
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the camera placement derived from the orbit state: where the camera sits
// and the point it looks at. It is recomputed from the orbit parameters after every
// change and is never stored independently of them.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// OrbitController defines the union interface for the mouse-driven orbit camera.
// It embeds pointerHandler, which mutates the orbit state from raw pointer events,
// and orbitState, which exposes that state read-only. Camera reads the pose from
// the controller each frame and computes view/projection matrices from it.
type OrbitController interface {
	pointerHandler
	orbitState

	// Pose returns the current camera position and look-at target.
	//
	// Returns:
	//   - Pose: the derived camera pose
	Pose() Pose

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point, which is always the orbit origin.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3
}

// pointerHandler defines the pointer event entry points. Button flags are independent:
// every held button applies its own update on each move, so rotate, pan and zoom can
// combine within a single event.
type pointerHandler interface {
	// PointerDown marks the button as held. Unrecognized buttons are ignored.
	//
	// Parameters:
	//   - button: the pressed button
	PointerDown(button common.MouseButton)

	// PointerUp clears the held flag for the button. Releasing a button that is not
	// held leaves the state unchanged. Unrecognized buttons are ignored.
	//
	// Parameters:
	//   - button: the released button
	PointerUp(button common.MouseButton)

	// PointerMove applies the drag delta since the previous move to every held button:
	// primary rotates, middle pans the origin, secondary zooms. The previous pointer
	// position is updated on every call regardless of button state.
	//
	// Parameters:
	//   - x, y: pointer position in screen coordinates
	PointerMove(x, y float32)

	// ButtonHeld reports whether the button is currently held.
	//
	// Parameters:
	//   - button: the button to query
	//
	// Returns:
	//   - bool: true if held, false if released or unrecognized
	ButtonHeld(button common.MouseButton) bool

	// LastPointer returns the pointer position recorded by the most recent PointerMove.
	//
	// Returns:
	//   - x, y: last observed screen coordinates
	LastPointer() (x, y float32)
}

// orbitState defines read access to the orbit parameters and tuning constants.
type orbitState interface {
	// Origin returns the pivot point the camera orbits and looks at.
	//
	// Returns:
	//   - mgl32.Vec3: world-space pivot
	Origin() mgl32.Vec3

	// Radius returns the current distance from the origin.
	//
	// Returns:
	//   - float32: orbit radius
	Radius() float32

	// Azimuth returns the horizontal orbit angle. It is unbounded.
	//
	// Returns:
	//   - float32: azimuth in degrees
	Azimuth() float32

	// Elevation returns the vertical orbit angle.
	//
	// Returns:
	//   - float32: elevation in degrees
	Elevation() float32

	// MinRadius returns the lower zoom bound.
	MinRadius() float32

	// MaxRadius returns the upper zoom bound.
	MaxRadius() float32

	// MinElevation returns the lower elevation bound in degrees.
	MinElevation() float32

	// MaxElevation returns the upper elevation bound in degrees.
	MaxElevation() float32

	// RotationSensitivity returns degrees of rotation per pixel of primary drag.
	RotationSensitivity() float32

	// PanSensitivity returns world units of origin travel per pixel of middle drag.
	// Negative values move the origin against the drag direction.
	PanSensitivity() float32

	// ZoomSensitivity returns world units of radius change per pixel of vertical secondary drag.
	ZoomSensitivity() float32
}
