// Package testutil provides a shared harness for exercising the full
// load-and-verify pipeline against in-memory HCL fixtures.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/rtappgo/internal/app"
	"github.com/vk/rtappgo/internal/hcl"
	"github.com/vk/rtappgo/internal/model"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Result holds the outcomes of one harness run.
type Result struct {
	Output string // progress markers and report
	Logs   string // slog output
	Err    error
	App    *model.App
}

// Verify writes the given HCL files into a temporary directory and runs the
// full load-and-verify pipeline over it. File names may contain
// subdirectories; they are created as needed.
func Verify(t *testing.T, files map[string]string) *Result {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		AppPath:   dir,
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	verifier := app.New(out, logs, cfg, hcl.NewLoader())
	verified, runErr := verifier.Run(context.Background())

	return &Result{
		Output: out.String(),
		Logs:   logs.String(),
		Err:    runErr,
		App:    verified,
	}
}
