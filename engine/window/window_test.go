package window

import (
	"testing"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "orbitview", w.Title())
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 720, w.Height())

	w = newEngineWindow(WithTitle("cube"), WithWidth(800), WithHeight(600))
	assert.Equal(t, "cube", w.Title())
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
}

func TestMouseButtonMapping(t *testing.T) {
	assert.Equal(t, common.MouseButtonPrimary, mouseButton(glfw.MouseButtonLeft))
	assert.Equal(t, common.MouseButtonMiddle, mouseButton(glfw.MouseButtonMiddle))
	assert.Equal(t, common.MouseButtonSecondary, mouseButton(glfw.MouseButtonRight))
	assert.Equal(t, common.MouseButton(glfw.MouseButton4), mouseButton(glfw.MouseButton4))
}

func TestDispatchMouse(t *testing.T) {
	w := newEngineWindow()

	type event struct {
		kind   string
		button common.MouseButton
		x, y   float32
	}
	var events []event
	w.SetMouseDownCallback(func(b common.MouseButton, x, y float32) { events = append(events, event{"down", b, x, y}) })
	w.SetMouseUpCallback(func(b common.MouseButton, x, y float32) { events = append(events, event{"up", b, x, y}) })
	w.SetMouseMoveCallback(func(x, y float32) { events = append(events, event{"move", 0, x, y}) })

	w.dispatchMouseButton(common.MouseButtonSecondary, true, 1, 2)
	w.dispatchMouseMove(3, 4)
	w.dispatchMouseButton(common.MouseButtonSecondary, false, 3, 4)

	assert.Equal(t, []event{
		{"down", common.MouseButtonSecondary, 1, 2},
		{"move", 0, 3, 4},
		{"up", common.MouseButtonSecondary, 3, 4},
	}, events)
}

func TestDispatchWithoutCallbacks(t *testing.T) {
	w := newEngineWindow()
	assert.NotPanics(t, func() {
		w.dispatchMouseButton(common.MouseButtonPrimary, true, 0, 0)
		w.dispatchMouseButton(common.MouseButtonPrimary, false, 0, 0)
		w.dispatchMouseMove(0, 0)
		w.dispatchKeyDown(common.KeySpace)
	})
}

func TestDispatchKeyDown(t *testing.T) {
	w := newEngineWindow()
	var keys []uint32
	w.SetKeyDownCallback(func(k uint32) { keys = append(keys, k) })

	assert.True(t, w.dispatchKeyDown(common.KeySpace))
	assert.False(t, w.dispatchKeyDown(common.KeyEsc))
	assert.Equal(t, []uint32{common.KeySpace}, keys)
}

func TestHandleKeyIgnoresRepeats(t *testing.T) {
	w := newEngineWindow()
	var keys []uint32
	w.SetKeyDownCallback(func(k uint32) { keys = append(keys, k) })

	assert.False(t, w.handleKey(glfw.KeySpace, glfw.Press))
	for range 10 {
		assert.False(t, w.handleKey(glfw.KeySpace, glfw.Repeat))
	}
	assert.False(t, w.handleKey(glfw.KeySpace, glfw.Release))
	assert.Equal(t, []uint32{common.KeySpace}, keys)

	assert.True(t, w.handleKey(glfw.KeyEscape, glfw.Press))
	assert.False(t, w.handleKey(glfw.KeyEscape, glfw.Repeat))
	assert.Equal(t, []uint32{common.KeySpace}, keys)
}

func TestUninitializedWindow(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())

	called := false
	w.SetUpdateCallback(func() { called = true })
	w.ProcessMessages()
	assert.False(t, called)
}
