package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewLoggerProdIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "prod", "")
	logger.Debug("hidden")
	logger.Info("room.created", "room_id", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at INFO, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if entry["msg"] != "room.created" {
		t.Fatalf("unexpected msg %v", entry["msg"])
	}
}

func TestNewLoggerLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "dev", "warn")
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, ok := ParseLevel("ERROR"); !ok || lvl != slog.LevelError {
		t.Fatalf("ParseLevel(ERROR) = %v %v", lvl, ok)
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}

func TestMetricsRecordSnapshot(t *testing.T) {
	m := NewMetrics()
	sent := testutil.ToFloat64(m.SnapshotsSent)
	coalesced := testutil.ToFloat64(m.SnapshotsCoalesced)

	m.RecordSnapshot(0)
	m.RecordSnapshot(3)

	if got := testutil.ToFloat64(m.SnapshotsSent) - sent; got != 2 {
		t.Fatalf("expected 2 snapshots, got %v", got)
	}
	if got := testutil.ToFloat64(m.SnapshotsCoalesced) - coalesced; got != 3 {
		t.Fatalf("expected 3 coalesced, got %v", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.RoomCreated()
	m.RecordMerge(errors.New("x"))
	m.SessionOpened()
	m.SessionClosed()
	m.RecordSnapshot(1)
}

func TestSetupTracingDisabled(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), TraceConfig{})
	if err != nil {
		t.Fatalf("SetupTracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
