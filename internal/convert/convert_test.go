package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediaconv/internal/config"
	"mediaconv/internal/history"
	"mediaconv/internal/testsupport"
)

func TestInvokerConvertSuccess(t *testing.T) {
	ffmpeg := testsupport.StubEngine(t, testsupport.EngineOK)
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp4")
	testsupport.WriteFile(t, input, 16)

	inv := NewInvoker(ffmpeg, nil)
	output := filepath.Join(dir, "out", "clip.mkv")
	if err := inv.Convert(input, output); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestInvokerConvertSurfacesEngineDiagnostics(t *testing.T) {
	ffmpeg := testsupport.StubEngine(t, testsupport.EngineFail("unsupported codec"))
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp4")
	testsupport.WriteFile(t, input, 16)

	inv := NewInvoker(ffmpeg, nil)
	err := inv.Convert(input, filepath.Join(dir, "clip.webm"))
	if err == nil {
		t.Fatal("expected engine failure")
	}
	if !strings.Contains(err.Error(), "unsupported codec") {
		t.Fatalf("engine stderr not surfaced: %v", err)
	}
}

func TestInvokerConvertOverwrites(t *testing.T) {
	ffmpeg := testsupport.StubEngine(t, testsupport.EngineOK)
	dir := t.TempDir()
	input := filepath.Join(dir, "clip.mp4")
	output := filepath.Join(dir, "clip.mkv")
	testsupport.WriteFile(t, input, 16)

	inv := NewInvoker(ffmpeg, nil)
	if err := inv.Convert(input, output); err != nil {
		t.Fatal(err)
	}
	if err := inv.Convert(input, output); err != nil {
		t.Fatalf("second conversion over existing output: %v", err)
	}
}

func batchFixture(t *testing.T, engine string) (*Batch, string, *bytes.Buffer) {
	t.Helper()
	ffmpeg := testsupport.StubEngine(t, engine)
	dir := t.TempDir()
	var out bytes.Buffer
	batch := &Batch{
		Invoker: NewInvoker(ffmpeg, nil),
		Out:     &out,
	}
	return batch, dir, &out
}

func TestBatchRunTally(t *testing.T) {
	batch, dir, out := batchFixture(t, testsupport.EngineOK)
	a := filepath.Join(dir, "a.mp4")
	b := filepath.Join(dir, "b.mp4")
	testsupport.WriteFile(t, a, 16)
	testsupport.WriteFile(t, b, 16)

	tally := batch.Run(context.Background(), []string{a, b}, "mp4", "mkv", dir)
	if tally.Succeeded != 2 || tally.Failed != 0 || tally.Cancelled {
		t.Fatalf("tally = %+v", tally)
	}
	for _, name := range []string{"a.mkv", "b.mkv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "[1/2] Converting: a.mp4") {
		t.Fatalf("missing progress line: %s", out.String())
	}
}

func TestBatchRunContinuesPastFailures(t *testing.T) {
	batch, dir, out := batchFixture(t, testsupport.EngineFail("corrupt input"))
	a := filepath.Join(dir, "a.mp4")
	b := filepath.Join(dir, "b.mp4")
	testsupport.WriteFile(t, a, 16)
	testsupport.WriteFile(t, b, 16)

	tally := batch.Run(context.Background(), []string{a, b}, "mp4", "mkv", dir)
	if tally.Succeeded != 0 || tally.Failed != 2 {
		t.Fatalf("tally = %+v", tally)
	}
	if !strings.Contains(out.String(), "corrupt input") {
		t.Fatalf("engine diagnostics not rendered: %s", out.String())
	}
}

func TestBatchRunObservesCancellation(t *testing.T) {
	batch, dir, _ := batchFixture(t, testsupport.EngineOK)
	a := filepath.Join(dir, "a.mp4")
	testsupport.WriteFile(t, a, 16)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tally := batch.Run(ctx, []string{a}, "mp4", "mkv", dir)
	if !tally.Cancelled || tally.Succeeded != 0 || tally.Failed != 0 {
		t.Fatalf("tally = %+v", tally)
	}
}

func TestBatchRunRecordsHistory(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	store, err := history.Open(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	batch, dir, _ := batchFixture(t, testsupport.EngineOK)
	batch.History = store
	a := filepath.Join(dir, "a.mp4")
	testsupport.WriteFile(t, a, 16)

	if tally := batch.Run(context.Background(), []string{a}, "mp4", "mkv", dir); tally.Succeeded != 1 {
		t.Fatalf("tally = %+v", tally)
	}

	entries, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Status != history.StatusSuccess || entries[0].BatchID == "" {
		t.Fatalf("unexpected history entries: %+v", entries)
	}
}
