package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultExtractTimeout bounds one conversion tool invocation.
const DefaultExtractTimeout = 30 * time.Second

const defaultHWPTool = "hwp5txt"

// HWPExtractor converts legacy HWP documents to plain text by invoking
// an external command-line tool against scoped temp files. Both temp
// artifacts are deleted on every exit path, including timeout.
type HWPExtractor struct {
	tool    string
	dir     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewHWPExtractor constructs an extractor. Empty tool, dir or timeout
// fall back to hwp5txt, the OS temp directory and DefaultExtractTimeout.
func NewHWPExtractor(tool, dir string, timeout time.Duration, logger *zap.Logger) *HWPExtractor {
	if tool == "" {
		tool = defaultHWPTool
	}
	if dir == "" {
		dir = os.TempDir()
	}
	if timeout <= 0 {
		timeout = DefaultExtractTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HWPExtractor{tool: tool, dir: dir, timeout: timeout, logger: logger}
}

// Extract writes data to a temp input file, runs the tool and returns
// the text it wrote to the temp output file.
func (e *HWPExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	inPath, err := tempPath(e.dir, "hwp")
	if err != nil {
		return "", err
	}
	outPath, err := tempPath(e.dir, "txt")
	if err != nil {
		return "", err
	}
	defer func() {
		// Best-effort cleanup; never masks the primary outcome.
		_ = os.Remove(inPath)
		_ = os.Remove(outPath)
	}()

	if err := os.WriteFile(inPath, data, 0o600); err != nil {
		return "", fmt.Errorf("write temp input: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.tool, "--output", outPath, inPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	e.logger.Info("extracting hwp text", zap.String("tool", e.tool))

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			diag = "실행 시간 초과"
		} else if diag == "" {
			diag = err.Error()
		}
		e.logger.Error("hwp tool failed", zap.String("stderr", diag), zap.Error(err))
		return "", fmt.Errorf("HWP 텍스트 추출 실패 (%s 오류): %s", e.tool, diag)
	}

	text, err := os.ReadFile(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrMissingOutput
		}
		return "", fmt.Errorf("read extracted text: %w", err)
	}
	return string(text), nil
}
