package life

import (
	"math/rand/v2"

	"conway/pkg/core"
)

// optionalIndex is a position in the history that may be absent.
type optionalIndex struct {
	idx int
	ok  bool
}

func some(idx int) optionalIndex { return optionalIndex{idx: idx, ok: true} }

var none = optionalIndex{}

// shift moves the index down by one after the oldest snapshot is dropped.
func (o optionalIndex) shift() optionalIndex {
	if !o.ok || o.idx == 0 {
		return none
	}
	return some(o.idx - 1)
}

// History is a bounded timeline of grid generations. Stepping forward past
// the newest snapshot computes a new generation; once the buffer is full the
// oldest snapshot is dropped.
//
// Snapshots live in a ring so eviction does not move the others. Indices are
// logical: 0 is always the oldest retained snapshot.
type History struct {
	capacity int
	gridSize int
	algo     Algorithm
	rng      *rand.Rand

	ring  []*Grid
	head  int
	count int

	current  int
	previous optionalIndex
	next     optionalIndex

	generation int
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithSeed makes every randomized generation reproducible.
func WithSeed(seed int64) HistoryOption {
	return func(h *History) {
		h.rng = core.NewRNG(seed).Source()
	}
}

// WithAlgorithm replaces the algorithm used for new generations.
func WithAlgorithm(a Algorithm) HistoryOption {
	return func(h *History) {
		if a != nil {
			h.algo = a
		}
	}
}

// NewHistory creates a history holding at most capacity snapshots, starting
// from a single randomized grid of side gridSize. Capacity below one is
// treated as one.
func NewHistory(capacity, gridSize int, opts ...HistoryOption) *History {
	if capacity < 1 {
		capacity = 1
	}
	h := &History{
		capacity: capacity,
		gridSize: gridSize,
		algo:     Frontier,
		ring:     make([]*Grid, capacity),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	h.init()
	return h
}

func (h *History) init() {
	g := NewGrid(h.gridSize)
	g.Randomize(h.rng)
	h.push(g)
	h.current = 0
	h.previous = none
	h.next = none
	h.generation = 0
}

// Reset drops every snapshot and starts again from a fresh randomized grid.
func (h *History) Reset() {
	clear(h.ring)
	h.head = 0
	h.count = 0
	h.init()
}

// Current returns the generation under the cursor. The grid is the retained
// snapshot itself, so writes to it are visible to later steps.
func (h *History) Current() *Grid { return h.at(h.current) }

// Previous returns the generation before the current one.
func (h *History) Previous() (*Grid, error) {
	if !h.previous.ok {
		return nil, ErrNoPrevious
	}
	return h.at(h.previous.idx), nil
}

// PeekNext returns the generation after the current one if it has already
// been computed.
func (h *History) PeekNext() (*Grid, bool) {
	if !h.next.ok {
		return nil, false
	}
	return h.at(h.next.idx), true
}

// StepForward moves the cursor one generation ahead, computing it when the
// cursor is on the newest snapshot.
func (h *History) StepForward() {
	if h.next.ok {
		h.current = h.next.idx
	} else {
		g := h.Current().Clone()
		h.algo.Next(g)
		if h.count == h.capacity {
			h.evictOldest()
		}
		h.push(g)
		h.current = h.count - 1
	}
	h.previous = h.before(h.current)
	h.next = h.after(h.current)
	h.generation++
}

// StepBackward moves the cursor one generation back. It does nothing on the
// oldest retained snapshot.
func (h *History) StepBackward() {
	if !h.previous.ok {
		return
	}
	h.next = some(h.current)
	h.current = h.previous.idx
	h.previous = h.before(h.current)
	h.generation--
}

// HasPrevious reports whether StepBackward would move.
func (h *History) HasPrevious() bool { return h.previous.ok }

// HasNext reports whether the next generation is already computed.
func (h *History) HasNext() bool { return h.next.ok }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return h.count }

// Cap returns the maximum number of retained snapshots.
func (h *History) Cap() int { return h.capacity }

// GridSize returns the side length of every snapshot.
func (h *History) GridSize() int { return h.gridSize }

// Generation returns how many generations the current snapshot is past the
// initial randomized grid.
func (h *History) Generation() int { return h.generation }

// Algorithm returns the algorithm used for new generations.
func (h *History) Algorithm() Algorithm { return h.algo }

func (h *History) at(idx int) *Grid {
	return h.ring[(h.head+idx)%h.capacity]
}

func (h *History) push(g *Grid) {
	h.ring[(h.head+h.count)%h.capacity] = g
	h.count++
}

func (h *History) evictOldest() {
	h.ring[h.head] = nil
	h.head = (h.head + 1) % h.capacity
	h.count--
	h.current--
	h.previous = h.previous.shift()
	h.next = h.next.shift()
}

func (h *History) before(idx int) optionalIndex {
	if idx <= 0 {
		return none
	}
	return some(idx - 1)
}

func (h *History) after(idx int) optionalIndex {
	if idx >= h.count-1 {
		return none
	}
	return some(idx + 1)
}
