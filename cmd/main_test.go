package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"go-canvas/domain/canvas"
	"go-canvas/domain/room"
	"go-canvas/server"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := buildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func newBackend(t *testing.T) (*room.Registry, string) {
	t.Helper()
	rooms := room.NewRegistry(room.WithDefaultSize(3, 2))
	h, err := server.New(rooms, nil, nil).Handler(server.HandlerOptions{})
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return rooms, ts.URL
}

func TestRootCommands(t *testing.T) {
	root := buildRootCmd()
	want := map[string]bool{"serve": false, "rooms": false, "pull": false, "health": false, "version": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing %q command", name)
		}
	}
}

func TestRoomsCommands(t *testing.T) {
	rooms, url := newBackend(t)

	out, err := runCmd(t, "rooms", "create", "--server", url)
	if err != nil {
		t.Fatalf("rooms create: %v", err)
	}
	if !strings.Contains(out, "created room 0") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCmd(t, "rooms", "create", "--server", url, "--width", "4", "--height", "1")
	if err != nil {
		t.Fatalf("rooms create: %v", err)
	}
	if !strings.Contains(out, "created room 1") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := runCmd(t, "rooms", "create", "--server", url, "--width", "-2"); err == nil {
		t.Fatalf("expected invalid width to fail")
	}

	out, err = runCmd(t, "rooms", "list", "--server", url)
	if err != nil {
		t.Fatalf("rooms list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "1") || !strings.Contains(lines[2], "4") {
		t.Fatalf("unexpected listing %q", out)
	}
	if rooms.Len() != 2 {
		t.Fatalf("expected 2 rooms, got %d", rooms.Len())
	}
}

func TestPullAndHealthCommands(t *testing.T) {
	rooms, url := newBackend(t)
	if _, err := rooms.CreateRoom(nil); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if err := rooms.UploadCanvas(0, canvas.Canvas{Width: 3, Height: 2, Contents: []int32{1, 0, 0, 0, 0, 2}}); err != nil {
		t.Fatalf("UploadCanvas: %v", err)
	}

	out, err := runCmd(t, "pull", "0", "--server", url)
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if want := "3x2\n#..\n..#\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	if _, err := runCmd(t, "pull", "7", "--server", url); err == nil {
		t.Fatalf("expected unknown room to fail")
	}

	out, err = runCmd(t, "health", "--server", url)
	if err != nil || strings.TrimSpace(out) != "OK" {
		t.Fatalf("health = %q, %v", out, err)
	}
}

func TestRoomsCreateRejectsBadSize(t *testing.T) {
	rooms, url := newBackend(t)

	for _, args := range [][]string{
		{"--width", "0", "--height", "3"},
		{"--width", "65536", "--height", "65536"},
	} {
		_, err := runCmd(t, append([]string{"rooms", "create", "--server", url}, args...)...)
		if err == nil || !strings.Contains(err.Error(), "invalid room size") {
			t.Fatalf("%v: expected a size error, got %v", args, err)
		}
	}
	if rooms.Len() != 0 {
		t.Fatalf("expected no rooms, got %d", rooms.Len())
	}

	if testing.Short() {
		return
	}
	// just past 1<<24 pixels
	out, err := runCmd(t, "rooms", "create", "--server", url, "--width", "4097", "--height", "4096")
	if err != nil {
		t.Fatalf("rooms create: %v", err)
	}
	if !strings.Contains(out, "created room 0") {
		t.Fatalf("unexpected output %q", out)
	}
}
