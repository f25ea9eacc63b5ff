package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Surface is a drawable element a renderer hands to the host. The host reads
// the image when presenting and never writes to it.
type Surface interface {
	Image() *image.RGBA
}

// Display is the visible area that surfaces are attached to.
type Display interface {
	AppendSurface(s Surface)
}

// FrameID identifies a pending animation frame request.
type FrameID uint64

// FrameScheduler queues callbacks for the next display refresh.
//
// Callbacks run one at a time on the runner goroutine. A callback that
// requests another frame is queued for the following refresh, never the
// current one.
type FrameScheduler interface {
	RequestAnimationFrame(cb func()) FrameID
	CancelAnimationFrame(id FrameID)
}

// Host is the environment the demo runs in.
type Host interface {
	Logger() Logger
	// Viewport returns the size of the visible area in device pixels.
	Viewport() (w, h int)
	Display() Display
	Frames() FrameScheduler
}
