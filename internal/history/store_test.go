package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"mediaconv/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	return &cfg
}

func TestOpenDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.Enabled = false

	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if store != nil {
		t.Fatal("expected nil store when history is disabled")
	}

	// Nil store operations are no-ops.
	if err := store.Record(context.Background(), Entry{}); err != nil {
		t.Fatal(err)
	}
	if entries, err := store.Recent(context.Background(), 5); err != nil || entries != nil {
		t.Fatalf("Recent on nil store = %v, %v", entries, err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	batch := uuid.NewString()
	if err := store.Record(ctx, Entry{
		BatchID:      batch,
		SourcePath:   "a.mp4",
		OutputPath:   "a.mkv",
		InputFormat:  "mp4",
		OutputFormat: "mkv",
		Status:       StatusSuccess,
		Duration:     1500 * time.Millisecond,
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, Entry{
		BatchID:      batch,
		SourcePath:   "b.mp4",
		OutputPath:   "b.mkv",
		InputFormat:  "mp4",
		OutputFormat: "mkv",
		Status:       StatusFailed,
		ErrorText:    "codec not supported",
	}); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].SourcePath != "b.mp4" || entries[0].Status != StatusFailed {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].ErrorText != "codec not supported" {
		t.Fatalf("error text lost: %+v", entries[0])
	}
	if entries[1].Duration != 1500*time.Millisecond {
		t.Fatalf("duration lost: %+v", entries[1])
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
}

func TestOpenLocksDatabase(t *testing.T) {
	cfg := testConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := Open(cfg); err == nil {
		t.Fatal("expected second open to fail while lock is held")
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	cfg := testConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(context.Background(), Entry{BatchID: "b", SourcePath: "x.mp4", OutputPath: "x.mkv", InputFormat: "mp4", OutputFormat: "mkv", Status: StatusSuccess}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected persisted entry, got %d", len(entries))
	}
}
