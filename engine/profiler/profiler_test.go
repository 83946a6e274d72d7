package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/HUDEVBR/JOGO-DO-SIMCITY/common"
	"github.com/stretchr/testify/assert"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestProfiler(interval time.Duration) (*Profiler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewProfiler(interval)
	p.now = clock.now
	p.Reset()
	return p, clock
}

func TestNewProfilerDefaultInterval(t *testing.T) {
	assert.Equal(t, time.Second, NewProfiler(0).Interval())
	assert.Equal(t, 250*time.Millisecond, NewProfiler(250*time.Millisecond).Interval())
}

func TestTickReportsOncePerInterval(t *testing.T) {
	p, clock := newTestProfiler(time.Second)

	for range 59 {
		clock.t = clock.t.Add(time.Second / 60)
		assert.False(t, p.Tick())
	}
	clock.t = clock.t.Add(time.Second / 60)
	assert.True(t, p.Tick())
	assert.InDelta(t, 60, p.Last().FPS, 0.5)

	clock.t = clock.t.Add(time.Millisecond)
	assert.False(t, p.Tick())
}

func TestTickLogsThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	common.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer common.SetLogger(nil)

	p, clock := newTestProfiler(time.Second)
	clock.t = clock.t.Add(2 * time.Second)
	assert.True(t, p.Tick())

	out := buf.String()
	assert.Contains(t, out, "msg=profiler")
	assert.Contains(t, out, "fps=0.5")
	assert.Contains(t, out, "heap_mb=")
}

func TestResetDiscardsWindow(t *testing.T) {
	p, clock := newTestProfiler(time.Second)
	for range 10 {
		p.Tick()
	}
	clock.t = clock.t.Add(500 * time.Millisecond)
	p.Reset()

	clock.t = clock.t.Add(time.Second)
	assert.True(t, p.Tick())
	assert.InDelta(t, 1, p.Last().FPS, 1e-9)
}
