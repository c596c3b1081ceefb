package engine

import (
	"sync"
	"time"
)

// FrameTimingBuffer is a ring buffer of frame intervals.
type FrameTimingBuffer struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	capacity int
	count    int
}

// NewFrameTimingBuffer creates a buffer holding the last capacity samples.
func NewFrameTimingBuffer(capacity int) *FrameTimingBuffer {
	if capacity <= 0 {
		capacity = 60
	}
	return &FrameTimingBuffer{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Add records a frame interval, evicting the oldest sample when full.
func (b *FrameTimingBuffer) Add(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = d
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Samples returns a copy of the samples in chronological order.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return nil
	}
	out := make([]time.Duration, b.count)
	b.copyInto(out)
	return out
}

// SamplesInto copies up to len(dst) of the oldest samples into dst and
// returns the number copied.
func (b *FrameTimingBuffer) SamplesInto(dst []time.Duration) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.copyInto(dst)
}

func (b *FrameTimingBuffer) copyInto(dst []time.Duration) int {
	n := min(b.count, len(dst))
	if n == 0 {
		return 0
	}
	if b.count < b.capacity {
		copy(dst[:n], b.samples[:n])
		return n
	}
	// Full: the oldest sample sits at b.index.
	first := b.capacity - b.index
	if first >= n {
		copy(dst[:n], b.samples[b.index:b.index+n])
	} else {
		copy(dst[:first], b.samples[b.index:])
		copy(dst[first:n], b.samples[:n-first])
	}
	return n
}

// Count returns the number of samples held.
func (b *FrameTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Average returns the mean interval, or zero when empty.
func (b *FrameTimingBuffer) Average() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range b.samples[:b.count] {
		sum += d
	}
	return sum / time.Duration(b.count)
}

// Stats summarizes recent frame timing.
type Stats struct {
	Frames  uint64        `json:"frames"`
	FPS     float64       `json:"fps"`
	Average time.Duration `json:"averageNs"`
}

// Stats reports the frame count and the rate measured over recent frames.
func (e *Engine) Stats() Stats {
	avg := e.timing.Average()
	s := Stats{Frames: e.frameID, Average: avg}
	if avg > 0 {
		s.FPS = float64(time.Second) / float64(avg)
	}
	return s
}

// Timing returns the frame interval buffer.
func (e *Engine) Timing() *FrameTimingBuffer {
	return e.timing
}
