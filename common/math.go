package common

import (
	"cmp"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis used for orbiting and view matrices.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound (inclusive)
//   - hi: upper bound (inclusive)
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(hi, max(lo, v))
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// RotateAboutY rotates v about the world up axis by the given angle in degrees.
// Positive angles turn +Z towards +X.
//
// Parameters:
//   - v: the vector to rotate
//   - deg: rotation angle in degrees
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func RotateAboutY(v mgl32.Vec3, deg float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(DegToRad(deg)).Mul3x1(v)
}

// Perspective creates a perspective projection matrix for WebGPU clip space,
// where depth maps to [0, 1] rather than OpenGL's [-1, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / math32.Tan(fovY/2.0)

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// lookAtEpsilon is the length below which a view direction is treated as degenerate.
const lookAtEpsilon = 1e-6

// LookAt builds a right-handed view matrix looking from eye towards target.
// When eye and target coincide the camera looks down -Z. When the view direction is
// parallel to up it is nudged slightly so the basis stays well defined.
//
// Parameters:
//   - eye: camera position
//   - target: point to look at
//   - up: approximate up direction
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	back := eye.Sub(target)
	if back.Len() < lookAtEpsilon {
		back = mgl32.Vec3{0, 0, 1}
	}
	back = back.Normalize()

	if back.Cross(up).Len() < lookAtEpsilon {
		if math32.Abs(up.Z()) == 1 {
			back[0] += 0.0001
		} else {
			back[2] += 0.0001
		}
		back = back.Normalize()
	}
	return mgl32.LookAtV(eye, eye.Sub(back), up)
}
