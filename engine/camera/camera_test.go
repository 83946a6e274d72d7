package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/HUDEVBR/JOGO-DO-SIMCITY/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, float32(75), c.Fov())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(1000), c.Far())
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Nil(t, c.Controller())
	assert.Equal(t, mgl32.Ident4(), c.ViewProjectionMatrix())
	assert.NotNil(t, c.BindGroupProvider())
	assert.Contains(t, c.BindGroupProvider().Label(), "camera_")
}

func TestCameraUniqueProviderLabels(t *testing.T) {
	a := NewCamera()
	b := NewCamera()
	assert.NotEqual(t, a.BindGroupProvider().Label(), b.BindGroupProvider().Label())
}

func TestCameraWithBindGroupProvider(t *testing.T) {
	p := bind_group_provider.NewBindGroupProvider("custom")
	c := NewCamera(WithBindGroupProvider(p))
	assert.Same(t, p, c.BindGroupProvider())
}

func TestCameraProjectsTargetToCenter(t *testing.T) {
	oc := NewOrbitController(WithElevation(30))
	c := NewCamera(WithController(oc), WithAspect(16.0/9.0))

	clip := c.ViewProjectionMatrix().Mul4x1(oc.Target().Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())

	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
	assert.Greater(t, ndc.Z(), float32(0))
	assert.Less(t, ndc.Z(), float32(1))
}

func TestCameraUpdateFollowsController(t *testing.T) {
	oc := NewOrbitController()
	c := NewCamera(WithController(oc))
	before := c.ViewMatrix()

	oc.PointerDown(common.MouseButtonSecondary)
	oc.PointerMove(0, 100)
	assert.Equal(t, before, c.ViewMatrix(), "matrices only change on Update")

	c.Update()
	assert.NotEqual(t, before, c.ViewMatrix())

	// eye-space distance of the target equals the orbit radius
	eye := c.ViewMatrix().Mul4x1(oc.Target().Vec4(1))
	assert.InDelta(t, -oc.Radius(), eye.Z(), 1e-4)
}

func TestCameraDegeneratePoseStaysFinite(t *testing.T) {
	// azimuth 0 and elevation 90 put the camera on the origin
	oc := NewOrbitController(WithElevation(90))
	c := NewCamera(WithController(oc))

	for _, v := range c.ViewProjectionMatrix() {
		assert.False(t, math.IsNaN(float64(v)))
		assert.False(t, math.IsInf(float64(v), 0))
	}
}

func TestCameraSetAspect(t *testing.T) {
	c := NewCamera(WithController(NewOrbitController()))
	c.SetAspect(2)

	p := c.ProjectionMatrix()
	assert.InDelta(t, p.At(1, 1)/2, p.At(0, 0), 1e-6)
}

func TestCameraUniform(t *testing.T) {
	oc := NewOrbitController(WithElevation(30))
	c := NewCamera(WithController(oc))

	u := c.Uniform()
	assert.Equal(t, 80, u.Size())
	assert.Equal(t, [16]float32(c.ViewProjectionMatrix()), u.ViewProj)
	assert.Equal(t, [3]float32(oc.Position()), u.CameraPosition)

	buf := u.Marshal()
	assert.Len(t, buf, 80)
	assert.Equal(t, u.ViewProj[5], math.Float32frombits(binary.LittleEndian.Uint32(buf[20:])))
	assert.Equal(t, u.CameraPosition[2], math.Float32frombits(binary.LittleEndian.Uint32(buf[72:])))
	assert.Zero(t, binary.LittleEndian.Uint32(buf[76:]))
}

func TestUniformLayout(t *testing.T) {
	layout := UniformLayout()
	if assert.Len(t, layout.Entries, 1) {
		assert.Equal(t, uint64(80), layout.Entries[0].Buffer.MinBindingSize)
	}
}
