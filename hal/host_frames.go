package hal

import "sync"

type frameRequest struct {
	id FrameID
	cb func()
}

// frameQueue is the host side of requestAnimationFrame.
type frameQueue struct {
	mu      sync.Mutex
	nextID  FrameID
	pending []frameRequest
	running []frameRequest
	frame   uint64

	// ids from the running batch cancelled before their turn
	cancelled map[FrameID]struct{}
	inFrame   bool
}

func newFrameQueue() *frameQueue {
	return &frameQueue{}
}

func (q *frameQueue) RequestAnimationFrame(cb func()) FrameID {
	if cb == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, cb: cb})
	return q.nextID
}

func (q *frameQueue) CancelAnimationFrame(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	if !q.inFrame {
		return
	}
	for _, r := range q.running {
		if r.id == id {
			if q.cancelled == nil {
				q.cancelled = make(map[FrameID]struct{})
			}
			q.cancelled[id] = struct{}{}
			return
		}
	}
}

// run executes the callbacks queued before this frame began and returns how
// many ran. Requests made while running land in the next frame; a callback
// cancelled by an earlier one in the same frame is skipped.
func (q *frameQueue) run() int {
	q.mu.Lock()
	q.running, q.pending = q.pending, q.running[:0]
	batch := q.running
	q.frame++
	q.inFrame = true
	q.mu.Unlock()

	ran := 0
	for _, r := range batch {
		q.mu.Lock()
		_, skip := q.cancelled[r.id]
		q.mu.Unlock()
		if skip {
			continue
		}
		r.cb()
		ran++
	}

	q.mu.Lock()
	for i := range q.running {
		q.running[i] = frameRequest{}
	}
	clear(q.cancelled)
	q.inFrame = false
	q.mu.Unlock()
	return ran
}

func (q *frameQueue) frames() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frame
}
