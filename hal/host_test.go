package hal

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type testSurface struct {
	img *image.RGBA
}

func (s *testSurface) Image() *image.RGBA { return s.img }

func TestNewDefaultsViewport(t *testing.T) {
	h := New(Config{LogOutput: &bytes.Buffer{}})
	w, hh := h.Viewport()
	if w != DefaultWidth || hh != DefaultHeight {
		t.Fatalf("Viewport() = %dx%d, want %dx%d", w, hh, DefaultWidth, DefaultHeight)
	}

	h = New(Config{Width: 1920, Height: 1080, LogOutput: &bytes.Buffer{}})
	if w, hh := h.Viewport(); w != 1920 || hh != 1080 {
		t.Fatalf("Viewport() = %dx%d, want 1920x1080", w, hh)
	}
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{LogOutput: &buf})
	h.Logger().WriteLineString("one")
	h.Logger().WriteLineBytes([]byte("two"))
	if got := buf.String(); got != "one\ntwo\n" {
		t.Fatalf("log output = %q", got)
	}
}

func TestDisplayAppendSurface(t *testing.T) {
	h := newHost(Config{LogOutput: &bytes.Buffer{}})
	s := &testSurface{img: image.NewRGBA(image.Rect(0, 0, 2, 2))}
	h.Display().AppendSurface(nil)
	h.Display().AppendSurface(s)
	got := h.display.snapshot()
	if len(got) != 1 || got[0] != s {
		t.Fatalf("surfaces = %v", got)
	}
}

func TestRunTicksStopsAfterLimit(t *testing.T) {
	h := newHost(Config{LogOutput: &bytes.Buffer{}})
	var calls int
	var loop func()
	loop = func() {
		calls++
		h.Frames().RequestAnimationFrame(loop)
	}
	h.Frames().RequestAnimationFrame(loop)

	ticks := make(chan time.Time, 10)
	for i := 0; i < 10; i++ {
		ticks <- time.Time{}
	}
	if err := runTicks(context.Background(), h, ticks, 4); err != nil {
		t.Fatalf("runTicks: %v", err)
	}
	if calls != 4 {
		t.Fatalf("calls = %d, want 4", calls)
	}
}

func TestRunTicksHonoursContext(t *testing.T) {
	h := newHost(Config{LogOutput: &bytes.Buffer{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runTicks(ctx, h, make(chan time.Time), 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runTicks err = %v, want context.Canceled", err)
	}
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	var logs bytes.Buffer
	cfg := HeadlessConfig{
		Config:   Config{Width: 8, Height: 4, LogOutput: &logs},
		Hz:       1000,
		Frames:   3,
		Snapshot: path,
	}
	var frames int
	err := RunHeadless(context.Background(), cfg, func(h Host) error {
		w, hh := h.Viewport()
		h.Display().AppendSurface(&testSurface{img: image.NewRGBA(image.Rect(0, 0, w, hh))})
		var loop func()
		loop = func() {
			frames++
			h.Frames().RequestAnimationFrame(loop)
		}
		loop()
		return nil
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	// The setup call counts as the first of the three frames.
	if frames != 3 {
		t.Fatalf("frames = %d, want 3", frames)
	}
	if !strings.Contains(logs.String(), "after 3 frames") {
		t.Fatalf("log = %q", logs.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("snapshot bounds = %v", b)
	}
}

func TestRunHeadlessPropagatesSetupError(t *testing.T) {
	want := errors.New("boom")
	err := RunHeadless(context.Background(), HeadlessConfig{Config: Config{LogOutput: &bytes.Buffer{}}}, func(Host) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestSnapshotWithoutSurface(t *testing.T) {
	if err := writeSnapshot(filepath.Join(t.TempDir(), "x.png"), nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunHeadlessFrameLimitIncludesSetupFrame(t *testing.T) {
	for _, limit := range []uint64{1, 2, 100} {
		var calls uint64
		cfg := HeadlessConfig{
			Config: Config{Width: 4, Height: 4, LogOutput: &bytes.Buffer{}},
			Hz:     1000,
			Frames: limit,
		}
		err := RunHeadless(context.Background(), cfg, func(h Host) error {
			var loop func()
			loop = func() {
				calls++
				h.Frames().RequestAnimationFrame(loop)
			}
			loop()
			return nil
		})
		if err != nil {
			t.Fatalf("Frames=%d: RunHeadless: %v", limit, err)
		}
		if calls != limit {
			t.Fatalf("Frames=%d: %d frame loop calls", limit, calls)
		}
	}
}
