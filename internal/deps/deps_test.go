package deps

import (
	"os"
	"path/filepath"
	"testing"

	"mediaconv/internal/config"
)

func stubBinary(t *testing.T, name string) {
	t.Helper()
	binDir := t.TempDir()
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestCheckBinaries(t *testing.T) {
	stubBinary(t, "fake-ffmpeg")

	statuses := CheckBinaries([]Requirement{
		{Name: "FFmpeg", Command: "fake-ffmpeg"},
		{Name: "FFprobe", Command: "definitely-not-on-path", Optional: true},
		{Name: "Empty", Command: "   "},
	})

	if !statuses[0].Available {
		t.Fatalf("expected stub to be found: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Fatalf("expected missing binary detail: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("expected unconfigured detail: %+v", statuses[2])
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []Status{
		{Name: "FFmpeg", Available: false},
		{Name: "FFprobe", Optional: true, Available: false},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "FFmpeg" {
		t.Fatalf("MissingRequired = %v", missing)
	}
}

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.FFmpegBinary = "/opt/ffmpeg"

	reqs := Requirements(&cfg)
	if reqs[0].Command != "/opt/ffmpeg" {
		t.Fatalf("ffmpeg command = %q", reqs[0].Command)
	}
	if reqs[1].Command != "ffprobe" || !reqs[1].Optional {
		t.Fatalf("unexpected ffprobe requirement: %+v", reqs[1])
	}
}
