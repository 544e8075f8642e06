package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// EngineOK is a stub engine script that creates its output file (the last
// argument) and exits cleanly, mimicking a successful ffmpeg run.
const EngineOK = `#!/bin/sh
for last; do :; done
touch "$last"
exit 0
`

// EngineFail returns a stub engine script that prints the given diagnostic
// to stderr and exits nonzero, mimicking an ffmpeg failure.
func EngineFail(diagnostic string) string {
	return fmt.Sprintf("#!/bin/sh\necho %q >&2\nexit 1\n", diagnostic)
}

// StubEngine writes the given script as an executable "ffmpeg" in a temp
// directory, prepends that directory to PATH, and returns the binary path.
func StubEngine(t testing.TB, script string) string {
	t.Helper()

	binDir := t.TempDir()
	target := filepath.Join(binDir, "ffmpeg")
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub engine: %v", err)
	}

	oldPath := os.Getenv("PATH")
	if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
		t.Fatalf("set PATH: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Setenv("PATH", oldPath)
	})
	return target
}
