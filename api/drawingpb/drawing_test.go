package drawingpb

import (
	"strings"
	"testing"

	"buf.build/go/protovalidate"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func TestUploadRequestAcceptsBothJSONNames(t *testing.T) {
	for _, in := range []string{
		`{"room_id":3,"canvas":{"width":1,"height":1,"contents":[-1]}}`,
		`{"roomId":"3","canvas":{"width":1,"height":1,"contents":[-1]}}`,
	} {
		var req UploadCanvasRequest
		if err := protojson.Unmarshal([]byte(in), &req); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if req.GetRoomId() != 3 {
			t.Fatalf("Unmarshal(%s): room id %d, want 3", in, req.GetRoomId())
		}
		if got := req.GetCanvas().GetContents(); len(got) != 1 || got[0] != -1 {
			t.Fatalf("Unmarshal(%s): contents %v", in, got)
		}
	}
}

func TestJSONUsesLowerCamelNames(t *testing.T) {
	b, err := protojson.Marshal(&CreateRoomResponse{RoomId: 4})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"roomId"`) {
		t.Fatalf("expected roomId key, got %s", b)
	}
}

func TestCanvasNegativePixelsSurviveBinary(t *testing.T) {
	in := &Canvas{Width: 3, Height: 1, Contents: []int32{-1, 0, 7}}
	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Canvas
	if err := proto.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !proto.Equal(in, &out) {
		t.Fatalf("expected %v, got %v", in, &out)
	}
}

func TestDrawingServiceDescriptor(t *testing.T) {
	svc := File_drawing_v1_drawing_proto.Services().ByName("DrawingService")
	if svc == nil {
		t.Fatalf("DrawingService not registered")
	}
	open := svc.Methods().ByName("OpenConnection")
	if open == nil || !open.IsStreamingClient() || !open.IsStreamingServer() {
		t.Fatalf("OpenConnection should be a bidi stream")
	}
	if svc.Methods().Len() != 6 {
		t.Fatalf("expected 6 methods, got %d", svc.Methods().Len())
	}
}

func TestValidationRules(t *testing.T) {
	v, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New: %v", err)
	}

	tests := []struct {
		name string
		msg  proto.Message
		ok   bool
	}{
		{"upload", &UploadCanvasRequest{Canvas: &Canvas{Width: 1, Height: 1, Contents: []int32{0}}}, true},
		{"upload without canvas", &UploadCanvasRequest{RoomId: 1}, false},
		{"zero width", &UploadCanvasRequest{Canvas: &Canvas{Width: 0, Height: 1}}, false},
		{"negative height", &CreateRoomRequest{Initial: &Canvas{Width: 2, Height: -1}}, false},
		{"create without initial", &CreateRoomRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.msg)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}
