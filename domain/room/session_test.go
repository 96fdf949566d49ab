package room

import (
	"context"
	"errors"
	"io"
	"reflect"
	"sync"
	"testing"
	"time"

	"go-canvas/domain/canvas"
)

type chanInbound struct {
	ctx   context.Context
	edits chan canvas.Canvas
}

func newChanInbound(ctx context.Context) *chanInbound {
	return &chanInbound{ctx: ctx, edits: make(chan canvas.Canvas)}
}

func (in *chanInbound) Receive() (canvas.Canvas, error) {
	select {
	case c, ok := <-in.edits:
		if !ok {
			return canvas.Canvas{}, io.EOF
		}
		return c, nil
	case <-in.ctx.Done():
		return canvas.Canvas{}, in.ctx.Err()
	}
}

type recordingOutbound struct {
	mu   sync.Mutex
	sent []canvas.Canvas
	fail error
	ch   chan canvas.Canvas
}

func newRecordingOutbound() *recordingOutbound {
	return &recordingOutbound{ch: make(chan canvas.Canvas, 64)}
}

func (out *recordingOutbound) Send(c canvas.Canvas) error {
	out.mu.Lock()
	defer out.mu.Unlock()
	if out.fail != nil {
		return out.fail
	}
	out.sent = append(out.sent, c)
	select {
	case out.ch <- c:
	default:
	}
	return nil
}

func (out *recordingOutbound) last() canvas.Canvas {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.sent[len(out.sent)-1]
}

func (out *recordingOutbound) waitFor(t *testing.T, want []int32) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case c := <-out.ch:
			if reflect.DeepEqual(c.Contents, want) {
				return
			}
		case <-deadline:
			t.Fatalf("expected canvas %v to be delivered", want)
		}
	}
}

func pixels(vs ...int32) canvas.Canvas {
	return canvas.Canvas{Width: int32(len(vs)), Height: 1, Contents: vs}
}

func startSession(t *testing.T, ctx context.Context, rm *Room) (*chanInbound, *recordingOutbound, chan error) {
	t.Helper()
	in := newChanInbound(ctx)
	out := newRecordingOutbound()
	done := make(chan error, 1)
	go func() {
		done <- NewSession("test", rm, nil, nil).Run(ctx, in, out)
	}()
	return in, out, done
}

func waitDone(t *testing.T, done chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(time.Second):
		t.Fatalf("session did not finish")
		return nil
	}
}

func TestSessionInitialFrameAndEcho(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(2, 1))
	rm, _ := reg.Open(0)
	if err := rm.Merge(pixels(5, 0)); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	in, out, done := startSession(t, context.Background(), rm)
	out.waitFor(t, []int32{5, 0})

	in.edits <- pixels(0, 6)
	out.waitFor(t, []int32{5, 6})

	close(in.edits)
	if err := waitDone(t, done); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestSessionSeesOtherSessionsEdits(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(2, 1))
	rm, _ := reg.Open(0)

	inA, outA, doneA := startSession(t, context.Background(), rm)
	inB, outB, doneB := startSession(t, context.Background(), rm)
	outA.waitFor(t, []int32{0, 0})
	outB.waitFor(t, []int32{0, 0})

	inA.edits <- pixels(3, 0)
	outB.waitFor(t, []int32{3, 0})

	if err := reg.UploadCanvas(0, pixels(0, 4)); err != nil {
		t.Fatalf("UploadCanvas: %v", err)
	}
	outA.waitFor(t, []int32{3, 4})
	outB.waitFor(t, []int32{3, 4})

	close(inA.edits)
	close(inB.edits)
	if err := waitDone(t, doneA); err != nil {
		t.Fatalf("session A: %v", err)
	}
	if err := waitDone(t, doneB); err != nil {
		t.Fatalf("session B: %v", err)
	}
}

func TestSessionFinalStateAfterBurst(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(1, 1))
	rm, _ := reg.Open(0)

	in, out, done := startSession(t, context.Background(), rm)
	out.waitFor(t, []int32{0})

	const n = 50
	for v := int32(1); v <= n; v++ {
		in.edits <- pixels(v)
	}
	close(in.edits)
	if err := waitDone(t, done); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out.mu.Lock()
	delivered := len(out.sent) - 1
	out.mu.Unlock()
	if delivered > n {
		t.Fatalf("expected at most %d deliveries, got %d", n, delivered)
	}
	if got := out.last(); got.Contents[0] != n {
		t.Fatalf("expected final delivered pixel %d, got %d", n, got.Contents[0])
	}
	if got := rm.Snapshot(); got.Contents[0] != n {
		t.Fatalf("expected canonical pixel %d, got %d", n, got.Contents[0])
	}
}

func TestSessionMergeErrorEndsSession(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(2, 1))
	rm, _ := reg.Open(0)

	in, out, done := startSession(t, context.Background(), rm)
	out.waitFor(t, []int32{0, 0})

	in.edits <- pixels(1, 2, 3)
	err := waitDone(t, done)
	if !errors.Is(err, canvas.ErrDimensionMismatch) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
	if got := rm.Snapshot(); !reflect.DeepEqual(got.Contents, []int32{0, 0}) {
		t.Fatalf("room mutated: %v", got.Contents)
	}
}

func TestSessionCancelled(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(1, 1))
	rm, _ := reg.Open(0)

	ctx, cancel := context.WithCancel(context.Background())
	_, out, done := startSession(t, ctx, rm)
	out.waitFor(t, []int32{0})

	cancel()
	if err := waitDone(t, done); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestSessionStartedCancelled(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(1, 1))
	rm, _ := reg.Open(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// the inbound side stays open, so only ctx can end the session
	in := newChanInbound(context.Background())
	out := newRecordingOutbound()
	done := make(chan error, 1)
	go func() {
		done <- NewSession("test", rm, nil, nil).Run(ctx, in, out)
	}()

	if err := waitDone(t, done); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestSessionSendFailure(t *testing.T) {
	reg := NewRegistry(WithDefaultSize(1, 1))
	rm, _ := reg.Open(0)

	out := newRecordingOutbound()
	out.fail = errors.New("client gone")
	in := newChanInbound(context.Background())
	err := NewSession("test", rm, nil, nil).Run(context.Background(), in, out)
	if err == nil || err.Error() != "send initial canvas: client gone" {
		t.Fatalf("unexpected error %v", err)
	}
}
