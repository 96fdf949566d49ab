package room

import (
	"log/slog"
	"sync"

	"go-canvas/domain/canvas"
	"go-canvas/observability"
)

// Default room size when CreateRoom gets no canvas.
const (
	DefaultWidth  int32 = 50
	DefaultHeight int32 = 50
)

// Registry is the append-only set of rooms. A room's id is its index, so ids
// are dense from 0 and never reused. mu guards the slice only; each room
// guards its own canvas.
type Registry struct {
	width   int32
	height  int32
	logger  *slog.Logger
	metrics *observability.Metrics

	mu    sync.RWMutex
	rooms []*Room
}

type Option func(*Registry)

// WithDefaultSize sets the size of rooms created without a canvas.
func WithDefaultSize(width, height int32) Option {
	return func(g *Registry) {
		g.width, g.height = width, height
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Registry) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func WithMetrics(metrics *observability.Metrics) Option {
	return func(g *Registry) {
		g.metrics = metrics
	}
}

func NewRegistry(opts ...Option) *Registry {
	g := &Registry{
		width:  DefaultWidth,
		height: DefaultHeight,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("component", "rooms")
	return g
}

// CreateRoom adds a room seeded with initial, or a blank default-size room
// when initial is nil. An invalid initial canvas creates nothing.
func (g *Registry) CreateRoom(initial *canvas.Canvas) (ID, error) {
	c, err := g.seed(initial)
	if err != nil {
		return 0, err
	}

	g.mu.Lock()
	rm := g.appendLocked(c)
	g.mu.Unlock()

	g.logger.Info("room.created", "room_id", rm.ID(), "width", c.Width, "height", c.Height)
	return rm.ID(), nil
}

// seed builds a room's starting canvas outside the registry lock. A supplied
// canvas is overlaid onto a blank one, so erase pixels land as transparent.
func (g *Registry) seed(initial *canvas.Canvas) (canvas.Canvas, error) {
	if initial == nil {
		return canvas.Blank(g.width, g.height)
	}
	if err := canvas.Validate(*initial); err != nil {
		return canvas.Canvas{}, err
	}
	c, err := canvas.Blank(initial.Width, initial.Height)
	if err != nil {
		return canvas.Canvas{}, err
	}
	if err := canvas.MergeInto(&c, *initial); err != nil {
		return canvas.Canvas{}, err
	}
	return c, nil
}

func (g *Registry) appendLocked(c canvas.Canvas) *Room {
	rm := newRoom(ID(len(g.rooms)), c, g.metrics)
	g.rooms = append(g.rooms, rm)
	g.metrics.RoomCreated()
	return rm
}

// QueryRooms lists every room in id order.
func (g *Registry) QueryRooms() []Info {
	g.mu.RLock()
	defer g.mu.RUnlock()

	infos := make([]Info, 0, len(g.rooms))
	for _, rm := range g.rooms {
		infos = append(infos, rm.Info())
	}
	return infos
}

func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

func (g *Registry) Get(id ID) (*Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.rooms) {
		return nil, &NoSuchRoomError{ID: id}
	}
	return g.rooms[id], nil
}

// Open is Get, except that room 0 is created on an empty registry.
func (g *Registry) Open(id ID) (*Room, error) {
	if id == 0 {
		g.mu.Lock()
		if len(g.rooms) == 0 {
			c, err := canvas.Blank(g.width, g.height)
			if err != nil {
				g.mu.Unlock()
				return nil, err
			}
			rm := g.appendLocked(c)
			g.mu.Unlock()
			g.logger.Info("room.bootstrapped", "room_id", rm.ID(), "width", c.Width, "height", c.Height)
			return rm, nil
		}
		g.mu.Unlock()
	}
	return g.Get(id)
}

// UploadCanvas merges edit into room id.
func (g *Registry) UploadCanvas(id ID, edit canvas.Canvas) error {
	rm, err := g.Get(id)
	if err != nil {
		return err
	}
	return rm.Merge(edit)
}

// PullCanvas returns a copy of room id's canvas, bootstrapping room 0 on an
// empty registry.
func (g *Registry) PullCanvas(id ID) (canvas.Canvas, error) {
	rm, err := g.Open(id)
	if err != nil {
		return canvas.Canvas{}, err
	}
	return rm.Snapshot(), nil
}
