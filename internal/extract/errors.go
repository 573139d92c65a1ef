package extract

import (
	"errors"
	"fmt"
)

// ErrMissingOutput reports that the conversion tool exited cleanly but
// produced no output file.
var ErrMissingOutput = errors.New("HWP 텍스트 추출 결과 파일이 없습니다")

// ExtractionError is fatal for the whole batch: one unreadable document
// in a recognized office format aborts the request rather than
// returning a partial result. The message is shown to the user as-is.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s 변환 오류: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
