package room

import (
	"sync"

	"go-canvas/domain/broadcast"
	"go-canvas/domain/canvas"
	"go-canvas/observability"
)

// ID is a room's position in the registry.
type ID int

// Info is the metadata QueryRooms reports for a room.
type Info struct {
	ID     ID
	Width  int32
	Height int32
}

// In-memory room model. The canvas is only touched under mu; every applied
// merge publishes a copy of the result to updates while still holding mu, so
// published states follow the merge order exactly.
type Room struct {
	id      ID
	width   int32
	height  int32
	metrics *observability.Metrics

	mu      sync.Mutex
	canvas  canvas.Canvas
	updates *broadcast.Value[canvas.Canvas]
}

func newRoom(id ID, c canvas.Canvas, metrics *observability.Metrics) *Room {
	return &Room{
		id:      id,
		width:   c.Width,
		height:  c.Height,
		metrics: metrics,
		canvas:  c,
		updates: broadcast.New(c.Clone()),
	}
}

func (r *Room) ID() ID { return r.id }

func (r *Room) Info() Info {
	return Info{ID: r.id, Width: r.width, Height: r.height}
}

// Merge overlays edit onto the room's canvas. A dimension mismatch leaves the
// canvas untouched and publishes nothing.
func (r *Room) Merge(edit canvas.Canvas) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := canvas.MergeInto(&r.canvas, edit)
	r.metrics.RecordMerge(err)
	if err != nil {
		return err
	}
	r.updates.Publish(r.canvas.Clone())
	return nil
}

// Snapshot returns a copy of the room's canvas.
func (r *Room) Snapshot() canvas.Canvas {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canvas.Clone()
}

// Watch returns the current canvas together with a subscriber that fires on
// every merge applied after it.
func (r *Room) Watch() (canvas.Canvas, *broadcast.Subscriber[canvas.Canvas]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canvas.Clone(), r.updates.Subscribe()
}
