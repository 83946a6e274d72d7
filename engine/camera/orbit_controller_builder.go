package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithRadius sets the initial orbit radius (distance from the origin).
//
// Parameters:
//   - radius: distance from the orbit origin
//
// Returns:
//   - OrbitControllerOption: functional option to set the radius
func WithRadius(radius float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.radius = radius
	}
}

// WithAzimuth sets the initial horizontal angle around the Y axis.
//
// Parameters:
//   - azimuth: horizontal angle in degrees (0 = +Z axis)
//
// Returns:
//   - OrbitControllerOption: functional option to set the azimuth
func WithAzimuth(azimuth float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.azimuth = azimuth
	}
}

// WithElevation sets the initial vertical angle.
//
// Parameters:
//   - elevation: vertical angle in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set the elevation
func WithElevation(elevation float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.elevation = elevation
	}
}

// WithOrigin sets the pivot point the camera orbits and looks at.
//
// Parameters:
//   - x, y, z: world-space coordinates of the pivot
//
// Returns:
//   - OrbitControllerOption: functional option to set the origin
func WithOrigin(x, y, z float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.origin = mgl32.Vec3{x, y, z}
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minRadius = min
		oc.maxRadius = max
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in degrees
//   - max: maximum vertical angle in degrees
//
// Returns:
//   - OrbitControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minElevation = min
		oc.maxElevation = max
	}
}

// WithRotationSensitivity sets the degrees of rotation applied per pixel of primary drag.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - OrbitControllerOption: functional option to set rotation sensitivity
func WithRotationSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.rotationSensitivity = sensitivity
	}
}

// WithPanSensitivity sets the origin travel per pixel of middle drag.
// A negative value makes the scene follow the pointer.
//
// Parameters:
//   - sensitivity: world units per pixel
//
// Returns:
//   - OrbitControllerOption: functional option to set pan sensitivity
func WithPanSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.panSensitivity = sensitivity
	}
}

// WithZoomSensitivity sets the radius change per pixel of vertical secondary drag.
//
// Parameters:
//   - sensitivity: world units per pixel
//
// Returns:
//   - OrbitControllerOption: functional option to set zoom sensitivity
func WithZoomSensitivity(sensitivity float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomSensitivity = sensitivity
	}
}
