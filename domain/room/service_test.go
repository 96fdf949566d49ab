package room

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"

	"go-canvas/api/drawingpb"
)

func TestServiceCreateAndQuery(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(NewRegistry(), nil, nil)

	resp, err := svc.CreateRoom(ctx, connect.NewRequest(&drawingpb.CreateRoomRequest{}))
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if resp.Msg.RoomId != 0 {
		t.Fatalf("expected room 0, got %d", resp.Msg.RoomId)
	}
	resp, err = svc.CreateRoom(ctx, connect.NewRequest(&drawingpb.CreateRoomRequest{
		Initial: &drawingpb.Canvas{Width: 2, Height: 3, Contents: make([]int32, 6)},
	}))
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if resp.Msg.RoomId != 1 {
		t.Fatalf("expected room 1, got %d", resp.Msg.RoomId)
	}

	list, err := svc.QueryRooms(ctx, connect.NewRequest(&drawingpb.QueryRoomsRequest{}))
	if err != nil {
		t.Fatalf("QueryRooms: %v", err)
	}
	if len(list.Msg.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(list.Msg.Rooms))
	}
	if r := list.Msg.Rooms[1]; r.Id != 1 || r.Width != 2 || r.Height != 3 {
		t.Fatalf("unexpected room info %+v", r)
	}
}

func TestServiceErrorCodes(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(NewRegistry(WithDefaultSize(2, 2)), nil, nil)

	_, err := svc.CreateRoom(ctx, connect.NewRequest(&drawingpb.CreateRoomRequest{
		Initial: &drawingpb.Canvas{Width: -1, Height: 2},
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}

	_, err = svc.PullCanvas(ctx, connect.NewRequest(&drawingpb.PullCanvasRequest{RoomId: 3}))
	if connect.CodeOf(err) != connect.CodeNotFound || !errors.Is(err, ErrNoSuchRoom) {
		t.Fatalf("expected not_found, got %v", err)
	}

	if _, err := svc.PullCanvas(ctx, connect.NewRequest(&drawingpb.PullCanvasRequest{RoomId: 0})); err != nil {
		t.Fatalf("bootstrap pull: %v", err)
	}

	_, err = svc.UploadCanvas(ctx, connect.NewRequest(&drawingpb.UploadCanvasRequest{RoomId: 0}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected missing canvas to be rejected, got %v", err)
	}

	_, err = svc.UploadCanvas(ctx, connect.NewRequest(&drawingpb.UploadCanvasRequest{
		RoomId: 0,
		Canvas: &drawingpb.Canvas{Width: 3, Height: 2, Contents: make([]int32, 6)},
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected mismatch to be invalid_argument, got %v", err)
	}
}

func TestServiceUploadThenPull(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(NewRegistry(WithDefaultSize(2, 1)), nil, nil)
	if _, err := svc.CreateRoom(ctx, connect.NewRequest(&drawingpb.CreateRoomRequest{})); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	_, err := svc.UploadCanvas(ctx, connect.NewRequest(&drawingpb.UploadCanvasRequest{
		Canvas: &drawingpb.Canvas{Width: 2, Height: 1, Contents: []int32{0, 12}},
	}))
	if err != nil {
		t.Fatalf("UploadCanvas: %v", err)
	}

	pulled, err := svc.PullCanvas(ctx, connect.NewRequest(&drawingpb.PullCanvasRequest{}))
	if err != nil {
		t.Fatalf("PullCanvas: %v", err)
	}
	if got := pulled.Msg.GetCanvas().Contents; len(got) != 2 || got[1] != 12 {
		t.Fatalf("unexpected contents %v", got)
	}

	health, err := svc.HealthCheck(ctx, connect.NewRequest(&drawingpb.HealthCheckRequest{}))
	if err != nil || health.Msg.Status != "OK" {
		t.Fatalf("HealthCheck = %+v, %v", health, err)
	}
}

func TestRoomIDFromHeader(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"", 0, false},
		{"7", 7, false},
		{" 12 ", 12, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"99999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := roomIDFromHeader(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("roomIDFromHeader(%q) = %d, %v", tt.in, got, err)
		}
	}
}
