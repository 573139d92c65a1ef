package extract

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv"
)

// ExtractDOCX pulls the raw text out of a DOCX payload in-process.
func ExtractDOCX(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("DOCX 텍스트 추출 실패: %w", err)
	}
	return text, nil
}
