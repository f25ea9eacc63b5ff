package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Config describes the host viewport.
type Config struct {
	Width  int
	Height int

	// LogOutput receives log lines. Defaults to os.Stdout.
	LogOutput io.Writer
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type hostHAL struct {
	logger  *hostLogger
	display *hostDisplay
	frames  *frameQueue
	width   int
	height  int
}

// New returns a host HAL implementation.
func New(cfg Config) Host {
	return newHost(cfg)
}

func newHost(cfg Config) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	w := cfg.LogOutput
	if w == nil {
		w = os.Stdout
	}
	return &hostHAL{
		logger:  &hostLogger{w: w},
		display: &hostDisplay{},
		frames:  newFrameQueue(),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) Viewport() (int, int)   { return h.width, h.height }
func (h *hostHAL) Display() Display       { return h.display }
func (h *hostHAL) Frames() FrameScheduler { return h.frames }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostDisplay struct {
	mu       sync.Mutex
	surfaces []Surface
}

func (d *hostDisplay) AppendSurface(s Surface) {
	if s == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.surfaces = append(d.surfaces, s)
}

func (d *hostDisplay) snapshot() []Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Surface, len(d.surfaces))
	copy(out, d.surfaces)
	return out
}
