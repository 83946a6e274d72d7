package camera

import (
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default orbit tuning.
const (
	DefaultRadius       = 4
	DefaultMinRadius    = 2
	DefaultMaxRadius    = 10
	DefaultMinElevation = 30
	DefaultMaxElevation = 180

	DefaultRotationSensitivity = 0.5
	DefaultZoomSensitivity     = 0.02
	DefaultPanSensitivity      = -0.01
)

// orbitControllerImpl is the single implementation of OrbitController.
// It is not safe for concurrent use; pointer events and frame reads are
// expected on the window thread.
type orbitControllerImpl struct {
	// Orbit parameters
	origin    mgl32.Vec3
	radius    float32
	azimuth   float32 // degrees around the Y axis
	elevation float32 // degrees

	// Derived pose
	position mgl32.Vec3

	// Bounds
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// Sensitivities
	rotationSensitivity float32
	panSensitivity      float32
	zoomSensitivity     float32

	// Pointer state
	primaryHeld   bool
	middleHeld    bool
	secondaryHeld bool
	lastX, lastY  float32
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller. Without options the camera sits
// at radius 4, azimuth 0 and elevation 0 around the world origin. The starting
// values are taken as given; the bounds apply from the first drag onwards.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		radius: DefaultRadius,

		minRadius:    DefaultMinRadius,
		maxRadius:    DefaultMaxRadius,
		minElevation: DefaultMinElevation,
		maxElevation: DefaultMaxElevation,

		rotationSensitivity: DefaultRotationSensitivity,
		panSensitivity:      DefaultPanSensitivity,
		zoomSensitivity:     DefaultZoomSensitivity,
	}

	for _, option := range options {
		option(oc)
	}

	oc.updatePose()
	return oc
}

// updatePose places the camera on the sphere around the origin. The vertical
// component deliberately uses sin(azimuth) alone; elevation only scales the
// horizontal projection.
func (oc *orbitControllerImpl) updatePose() {
	sinAzim, cosAzim := math32.Sincos(common.DegToRad(oc.azimuth))
	cosElev := math32.Cos(common.DegToRad(oc.elevation))

	offset := mgl32.Vec3{
		oc.radius * sinAzim * cosElev,
		oc.radius * sinAzim,
		oc.radius * cosAzim * cosElev,
	}
	oc.position = oc.origin.Add(offset)
}

// --- pointerHandler implementation ---

func (oc *orbitControllerImpl) PointerDown(button common.MouseButton) {
	common.Logger().Debug("pointer down", "button", button)
	oc.setHeld(button, true)
}

func (oc *orbitControllerImpl) PointerUp(button common.MouseButton) {
	common.Logger().Debug("pointer up", "button", button)
	oc.setHeld(button, false)
}

func (oc *orbitControllerImpl) setHeld(button common.MouseButton, held bool) {
	switch button {
	case common.MouseButtonPrimary:
		oc.primaryHeld = held
	case common.MouseButtonMiddle:
		oc.middleHeld = held
	case common.MouseButtonSecondary:
		oc.secondaryHeld = held
	}
}

func (oc *orbitControllerImpl) PointerMove(x, y float32) {
	deltaX := x - oc.lastX
	deltaY := y - oc.lastY
	oc.lastX, oc.lastY = x, y

	if oc.primaryHeld {
		oc.azimuth += -deltaX * oc.rotationSensitivity
		oc.elevation = common.Clamp(oc.elevation+deltaY*oc.rotationSensitivity, oc.minElevation, oc.maxElevation)
		oc.updatePose()
	}

	if oc.middleHeld {
		forward := common.RotateAboutY(mgl32.Vec3{0, 0, 1}, oc.azimuth)
		left := common.RotateAboutY(mgl32.Vec3{1, 0, 0}, oc.azimuth)
		oc.origin = oc.origin.
			Add(forward.Mul(oc.panSensitivity * deltaY)).
			Add(left.Mul(oc.panSensitivity * deltaX))
		oc.updatePose()
	}

	if oc.secondaryHeld {
		oc.radius = common.Clamp(oc.radius+deltaY*oc.zoomSensitivity, oc.minRadius, oc.maxRadius)
		oc.updatePose()
	}

	common.Logger().Debug("pointer move",
		"x", x, "y", y,
		"azimuth", oc.azimuth, "elevation", oc.elevation, "radius", oc.radius)
}

func (oc *orbitControllerImpl) ButtonHeld(button common.MouseButton) bool {
	switch button {
	case common.MouseButtonPrimary:
		return oc.primaryHeld
	case common.MouseButtonMiddle:
		return oc.middleHeld
	case common.MouseButtonSecondary:
		return oc.secondaryHeld
	default:
		return false
	}
}

func (oc *orbitControllerImpl) LastPointer() (x, y float32) {
	return oc.lastX, oc.lastY
}

// --- pose ---

func (oc *orbitControllerImpl) Pose() Pose {
	return Pose{Position: oc.position, Target: oc.origin}
}

func (oc *orbitControllerImpl) Position() mgl32.Vec3 {
	return oc.position
}

func (oc *orbitControllerImpl) Target() mgl32.Vec3 {
	return oc.origin
}

// --- orbitState implementation ---

func (oc *orbitControllerImpl) Origin() mgl32.Vec3 {
	return oc.origin
}

func (oc *orbitControllerImpl) Radius() float32 {
	return oc.radius
}

func (oc *orbitControllerImpl) Azimuth() float32 {
	return oc.azimuth
}

func (oc *orbitControllerImpl) Elevation() float32 {
	return oc.elevation
}

func (oc *orbitControllerImpl) MinRadius() float32 {
	return oc.minRadius
}

func (oc *orbitControllerImpl) MaxRadius() float32 {
	return oc.maxRadius
}

func (oc *orbitControllerImpl) MinElevation() float32 {
	return oc.minElevation
}

func (oc *orbitControllerImpl) MaxElevation() float32 {
	return oc.maxElevation
}

func (oc *orbitControllerImpl) RotationSensitivity() float32 {
	return oc.rotationSensitivity
}

func (oc *orbitControllerImpl) PanSensitivity() float32 {
	return oc.panSensitivity
}

func (oc *orbitControllerImpl) ZoomSensitivity() float32 {
	return oc.zoomSensitivity
}
