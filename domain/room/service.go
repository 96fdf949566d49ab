package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"go-canvas/api/drawingpb"
	"go-canvas/domain/canvas"
	"go-canvas/observability"
)

// IDHeader carries the decimal id of the room an OpenConnection stream
// targets. Missing means room 0.
const IDHeader = "Room-Id"

type Service interface {
	CreateRoom(ctx context.Context, req *connect.Request[drawingpb.CreateRoomRequest]) (*connect.Response[drawingpb.CreateRoomResponse], error)
	QueryRooms(ctx context.Context, req *connect.Request[drawingpb.QueryRoomsRequest]) (*connect.Response[drawingpb.QueryRoomsResponse], error)
	UploadCanvas(ctx context.Context, req *connect.Request[drawingpb.UploadCanvasRequest]) (*connect.Response[drawingpb.UploadCanvasResponse], error)
	PullCanvas(ctx context.Context, req *connect.Request[drawingpb.PullCanvasRequest]) (*connect.Response[drawingpb.PullCanvasResponse], error)
	OpenConnection(ctx context.Context, stream *connect.BidiStream[drawingpb.Canvas, drawingpb.Canvas]) error
	HealthCheck(ctx context.Context, req *connect.Request[drawingpb.HealthCheckRequest]) (*connect.Response[drawingpb.HealthCheckResponse], error)
}

type InMemoryService struct {
	rooms   *Registry
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewInMemoryService(rooms *Registry, logger *slog.Logger, metrics *observability.Metrics) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryService{
		rooms:   rooms,
		logger:  logger.With("component", "drawing"),
		metrics: metrics,
	}
}

func (s *InMemoryService) CreateRoom(ctx context.Context, req *connect.Request[drawingpb.CreateRoomRequest]) (*connect.Response[drawingpb.CreateRoomResponse], error) {
	var initial *canvas.Canvas
	if msg := req.Msg.GetInitial(); msg != nil {
		c := fromProto(msg)
		initial = &c
	}

	id, err := s.rooms.CreateRoom(initial)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&drawingpb.CreateRoomResponse{RoomId: uint32(id)}), nil
}

func (s *InMemoryService) QueryRooms(ctx context.Context, req *connect.Request[drawingpb.QueryRoomsRequest]) (*connect.Response[drawingpb.QueryRoomsResponse], error) {
	infos := s.rooms.QueryRooms()
	rooms := make([]*drawingpb.RoomInfo, 0, len(infos))
	for _, info := range infos {
		rooms = append(rooms, &drawingpb.RoomInfo{
			Id:     uint32(info.ID),
			Width:  info.Width,
			Height: info.Height,
		})
	}
	return connect.NewResponse(&drawingpb.QueryRoomsResponse{Rooms: rooms}), nil
}

func (s *InMemoryService) UploadCanvas(ctx context.Context, req *connect.Request[drawingpb.UploadCanvasRequest]) (*connect.Response[drawingpb.UploadCanvasResponse], error) {
	if err := s.rooms.UploadCanvas(ID(req.Msg.GetRoomId()), fromProto(req.Msg.GetCanvas())); err != nil {
		s.logger.Debug("upload rejected", "room_id", req.Msg.RoomId, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&drawingpb.UploadCanvasResponse{}), nil
}

func (s *InMemoryService) PullCanvas(ctx context.Context, req *connect.Request[drawingpb.PullCanvasRequest]) (*connect.Response[drawingpb.PullCanvasResponse], error) {
	c, err := s.rooms.PullCanvas(ID(req.Msg.GetRoomId()))
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&drawingpb.PullCanvasResponse{Canvas: toProto(c)}), nil
}

// Bidirectional canvas sync. The room comes from the Room-Id header and is
// resolved like PullCanvas, so the first stream on an empty server creates
// room 0.
func (s *InMemoryService) OpenConnection(ctx context.Context, stream *connect.BidiStream[drawingpb.Canvas, drawingpb.Canvas]) error {
	id, err := roomIDFromHeader(stream.RequestHeader().Get(IDHeader))
	if err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	rm, err := s.rooms.Open(id)
	if err != nil {
		return connectError(err)
	}

	session := NewSession(uuid.NewString(), rm, s.logger, s.metrics)
	if err := session.Run(ctx, bidiInbound{stream}, bidiOutbound{stream}); err != nil {
		return connectError(err)
	}
	return nil
}

func (s *InMemoryService) HealthCheck(ctx context.Context, req *connect.Request[drawingpb.HealthCheckRequest]) (*connect.Response[drawingpb.HealthCheckResponse], error) {
	return connect.NewResponse(&drawingpb.HealthCheckResponse{Status: "OK"}), nil
}

func roomIDFromHeader(v string) (ID, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid %s header %q", IDHeader, v)
	}
	return ID(id), nil
}

// connectError maps domain errors onto connect codes. Errors that already
// carry a code, such as stream receive failures, pass through.
func connectError(err error) error {
	var cerr *connect.Error
	switch {
	case errors.As(err, &cerr):
		return err
	case errors.Is(err, ErrNoSuchRoom):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, canvas.ErrInvalidCanvas), errors.Is(err, canvas.ErrDimensionMismatch):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func fromProto(msg *drawingpb.Canvas) canvas.Canvas {
	return canvas.Canvas{Width: msg.GetWidth(), Height: msg.GetHeight(), Contents: msg.GetContents()}
}

func toProto(c canvas.Canvas) *drawingpb.Canvas {
	return &drawingpb.Canvas{Width: c.Width, Height: c.Height, Contents: c.Contents}
}

type bidiInbound struct {
	stream *connect.BidiStream[drawingpb.Canvas, drawingpb.Canvas]
}

func (b bidiInbound) Receive() (canvas.Canvas, error) {
	msg, err := b.stream.Receive()
	if err != nil {
		return canvas.Canvas{}, err
	}
	return fromProto(msg), nil
}

type bidiOutbound struct {
	stream *connect.BidiStream[drawingpb.Canvas, drawingpb.Canvas]
}

func (b bidiOutbound) Send(c canvas.Canvas) error {
	return b.stream.Send(toProto(c))
}
