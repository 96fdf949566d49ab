package room

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"go-canvas/domain/broadcast"
	"go-canvas/domain/canvas"
	"go-canvas/observability"
)

// Inbound yields client edits. Receive returns an error wrapping io.EOF once
// the client has finished sending, and must unblock when the transport goes
// away.
type Inbound interface {
	Receive() (canvas.Canvas, error)
}

// Outbound delivers canvases to the client.
type Outbound interface {
	Send(canvas.Canvas) error
}

// Session is one streaming connection bound to a room.
type Session struct {
	ID      string
	room    *Room
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewSession(id string, rm *Room, logger *slog.Logger, metrics *observability.Metrics) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ID:      id,
		room:    rm,
		logger:  logger.With("session_id", id, "room_id", rm.ID()),
		metrics: metrics,
	}
}

// Run sends the room's current canvas, then merges inbound edits in arrival
// order while pushing the newest canvas whenever any merge lands in the room.
// It returns nil once the client stops sending, or the first error from
// either direction. Both loops are finished when Run returns.
//
// When the client stops sending, the read loop still delivers the newest
// canvas if it has not sent it yet.
func (s *Session) Run(ctx context.Context, in Inbound, out Outbound) error {
	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()
	s.logger.Debug("session.open")

	initial, sub := s.room.Watch()
	if err := out.Send(initial); err != nil {
		return fmt.Errorf("send initial canvas: %w", err)
	}
	s.metrics.RecordSnapshot(0)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.readLoop(ctx, sub, out)
	})
	g.Go(func() error {
		// the read loop only ends through ctx once edits stop
		defer cancel()
		return s.writeLoop(ctx, in)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Info("session.closed", "error", err)
	} else {
		s.logger.Debug("session.closed")
	}
	return err
}

func (s *Session) writeLoop(ctx context.Context, in Inbound) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		edit, err := in.Receive()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.room.Merge(edit); err != nil {
			s.logger.Warn("session.merge_failed", "error", err)
			return err
		}
	}
}

func (s *Session) readLoop(ctx context.Context, sub *broadcast.Subscriber[canvas.Canvas], out Outbound) error {
	for {
		latest, skipped, err := sub.Next(ctx)
		if err != nil {
			return nil
		}
		if err := out.Send(latest); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("send canvas: %w", err)
		}
		s.metrics.RecordSnapshot(skipped)
	}
}
