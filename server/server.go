package server

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"go-canvas/api/drawingpb"
	"go-canvas/domain/room"
	"go-canvas/observability"
)

type Server struct {
	RoomService room.Service
	logger      *slog.Logger
}

func New(rooms *room.Registry, logger *slog.Logger, metrics *observability.Metrics) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		RoomService: room.NewInMemoryService(rooms, logger, metrics),
		logger:      logger,
	}
}

func (s *Server) CreateRoom(ctx context.Context, req *connect.Request[drawingpb.CreateRoomRequest]) (*connect.Response[drawingpb.CreateRoomResponse], error) {
	return s.RoomService.CreateRoom(ctx, req)
}

func (s *Server) QueryRooms(ctx context.Context, req *connect.Request[drawingpb.QueryRoomsRequest]) (*connect.Response[drawingpb.QueryRoomsResponse], error) {
	return s.RoomService.QueryRooms(ctx, req)
}

func (s *Server) UploadCanvas(ctx context.Context, req *connect.Request[drawingpb.UploadCanvasRequest]) (*connect.Response[drawingpb.UploadCanvasResponse], error) {
	return s.RoomService.UploadCanvas(ctx, req)
}

func (s *Server) PullCanvas(ctx context.Context, req *connect.Request[drawingpb.PullCanvasRequest]) (*connect.Response[drawingpb.PullCanvasResponse], error) {
	return s.RoomService.PullCanvas(ctx, req)
}

func (s *Server) OpenConnection(ctx context.Context, stream *connect.BidiStream[drawingpb.Canvas, drawingpb.Canvas]) error {
	return s.RoomService.OpenConnection(ctx, stream)
}

func (s *Server) HealthCheck(ctx context.Context, req *connect.Request[drawingpb.HealthCheckRequest]) (*connect.Response[drawingpb.HealthCheckResponse], error) {
	return s.RoomService.HealthCheck(ctx, req)
}
