package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// writeTool drops an executable shell script standing in for hwp5txt.
// The real tool is invoked as: hwp5txt --output <out> <in>.
func writeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-hwp5txt")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write tool script: %v", err)
	}
	return path
}

func assertNoArtifacts(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tempPrefix) {
			t.Fatalf("leftover temp artifact: %s", e.Name())
		}
	}
}

func TestHWPExtractSuccess(t *testing.T) {
	tool := writeTool(t, `printf '독촉장 본문' > "$2"`)
	dir := t.TempDir()
	e := NewHWPExtractor(tool, dir, time.Second, zap.NewNop())

	text, err := e.Extract(context.Background(), []byte("fake hwp bytes"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "독촉장 본문" {
		t.Fatalf("unexpected text %q", text)
	}
	assertNoArtifacts(t, dir)
}

func TestHWPExtractToolFailureIncludesStderr(t *testing.T) {
	tool := writeTool(t, `echo 'corrupt header' >&2; exit 1`)
	dir := t.TempDir()
	e := NewHWPExtractor(tool, dir, time.Second, zap.NewNop())

	_, err := e.Extract(context.Background(), []byte("broken"))
	if err == nil {
		t.Fatalf("expected tool failure")
	}
	if !strings.Contains(err.Error(), "corrupt header") {
		t.Fatalf("expected stderr diagnostic in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "HWP 텍스트 추출 실패") {
		t.Fatalf("expected extraction failure message, got %v", err)
	}
	assertNoArtifacts(t, dir)
}

func TestHWPExtractMissingOutput(t *testing.T) {
	tool := writeTool(t, `exit 0`)
	dir := t.TempDir()
	e := NewHWPExtractor(tool, dir, time.Second, zap.NewNop())

	_, err := e.Extract(context.Background(), []byte("ok exit, no file"))
	if !errors.Is(err, ErrMissingOutput) {
		t.Fatalf("expected missing output error, got %v", err)
	}
	assertNoArtifacts(t, dir)
}

func TestHWPExtractTimeout(t *testing.T) {
	tool := writeTool(t, `sleep 5; printf 'too late' > "$2"`)
	dir := t.TempDir()
	e := NewHWPExtractor(tool, dir, 100*time.Millisecond, zap.NewNop())

	start := time.Now()
	_, err := e.Extract(context.Background(), []byte("slow"))
	if err == nil {
		t.Fatalf("expected timeout failure")
	}
	if time.Since(start) > 3*time.Second {
		t.Fatalf("extract did not respect timeout")
	}
	if !strings.Contains(err.Error(), "시간 초과") {
		t.Fatalf("expected timeout diagnostic, got %v", err)
	}
	assertNoArtifacts(t, dir)
}

func TestHWPExtractDefaults(t *testing.T) {
	e := NewHWPExtractor("", "", 0, nil)
	if e.tool != defaultHWPTool {
		t.Fatalf("expected default tool, got %s", e.tool)
	}
	if e.timeout != DefaultExtractTimeout {
		t.Fatalf("expected default timeout, got %s", e.timeout)
	}
	if e.dir == "" {
		t.Fatalf("expected default temp dir")
	}
}
