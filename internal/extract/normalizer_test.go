package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"govdocgo/internal/models"
)

type fakeHWP struct {
	text string
	err  error
}

func (f *fakeHWP) Extract(ctx context.Context, data []byte) (string, error) {
	return f.text, f.err
}

func newTestNormalizer(hwp hwpConverter) *Normalizer {
	return &Normalizer{hwp: hwp, logger: zap.NewNop()}
}

func encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func TestNormalizeClassification(t *testing.T) {
	n := newTestNormalizer(&fakeHWP{text: "한글 본문"})
	pdfBytes := []byte("%PDF-1.4 fake")

	cases := []struct {
		name       string
		file       models.UploadedFile
		wantInline bool
		wantSource models.PartSource
		wantText   string
	}{
		{
			name:       "pdf passes through inline",
			file:       models.UploadedFile{Base64Data: encode(pdfBytes), MimeType: "application/pdf"},
			wantInline: true,
		},
		{
			name:       "image passes through inline",
			file:       models.UploadedFile{Base64Data: encode([]byte{0xFF, 0xD8}), MimeType: "image/jpeg"},
			wantInline: true,
		},
		{
			name:       "hwp goes through the external tool",
			file:       models.UploadedFile{Base64Data: encode([]byte("hwp-bytes")), MimeType: "application/x-hwp"},
			wantSource: models.SourceHWP,
			wantText:   "한글 본문",
		},
		{
			name:       "hancom media type also selects hwp branch",
			file:       models.UploadedFile{Base64Data: encode([]byte("hwp-bytes")), MimeType: "application/vnd.hancom.hwp"},
			wantSource: models.SourceHWP,
			wantText:   "한글 본문",
		},
		{
			name:       "plain text decodes directly",
			file:       models.UploadedFile{Base64Data: encode([]byte("납부 안내")), MimeType: "text/plain"},
			wantSource: models.SourceText,
			wantText:   "납부 안내",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parts, err := n.Normalize(context.Background(), []models.UploadedFile{tc.file})
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if len(parts) != 1 {
				t.Fatalf("expected 1 part, got %d", len(parts))
			}
			part := parts[0]
			if part.IsInline() != tc.wantInline {
				t.Fatalf("inline mismatch: got %v", part.IsInline())
			}
			if tc.wantInline {
				if part.MimeType != tc.file.MimeType {
					t.Fatalf("mime type changed: %s", part.MimeType)
				}
				return
			}
			if part.Source != tc.wantSource {
				t.Fatalf("source mismatch: got %s want %s", part.Source, tc.wantSource)
			}
			if part.Text != tc.wantText {
				t.Fatalf("text mismatch: got %q", part.Text)
			}
		})
	}
}

func TestNormalizeDocx(t *testing.T) {
	n := newTestNormalizer(&fakeHWP{})
	docx := makeDocx(t, "임대차 계약 해지 통보")
	parts, err := n.Normalize(context.Background(), []models.UploadedFile{
		{Base64Data: encode(docx), MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	})
	if err != nil {
		t.Fatalf("normalize docx: %v", err)
	}
	if len(parts) != 1 || parts[0].Source != models.SourceDOCX {
		t.Fatalf("expected one DOCX part, got %#v", parts)
	}
	if !strings.Contains(parts[0].Text, "계약 해지") {
		t.Fatalf("extracted text missing marker: %q", parts[0].Text)
	}
}

func TestNormalizeSkipsUnsupportedType(t *testing.T) {
	n := newTestNormalizer(&fakeHWP{})
	parts, err := n.Normalize(context.Background(), []models.UploadedFile{
		{Base64Data: encode([]byte("zipzip")), MimeType: "application/zip"},
	})
	if err != nil {
		t.Fatalf("unsupported type must not fail the batch: %v", err)
	}
	if len(parts) != 0 {
		t.Fatalf("expected zero parts, got %d", len(parts))
	}
}

func TestNormalizeHWPFailureAbortsBatch(t *testing.T) {
	n := newTestNormalizer(&fakeHWP{err: errors.New("hwp5txt broke")})
	files := []models.UploadedFile{
		{Base64Data: encode([]byte("%PDF")), MimeType: "application/pdf"},
		{Base64Data: encode([]byte("hwp")), MimeType: "application/x-hwp"},
	}
	parts, err := n.Normalize(context.Background(), files)
	if err == nil {
		t.Fatalf("expected extraction failure")
	}
	if parts != nil {
		t.Fatalf("no partial result expected, got %d parts", len(parts))
	}
	var extErr *ExtractionError
	if !errors.As(err, &extErr) || extErr.Format != "HWP" {
		t.Fatalf("expected HWP extraction error, got %v", err)
	}
	if !strings.Contains(err.Error(), "HWP 변환 오류") {
		t.Fatalf("error message should reference HWP conversion: %v", err)
	}
}

func TestNormalizeInvalidBase64(t *testing.T) {
	n := newTestNormalizer(&fakeHWP{})
	_, err := n.Normalize(context.Background(), []models.UploadedFile{
		{Base64Data: "not base64!!!", MimeType: "application/pdf"},
	})
	if err == nil {
		t.Fatalf("expected decode failure")
	}
}

func makeDocx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	types, err := zw.Create("[Content_Types].xml")
	if err != nil {
		t.Fatalf("create content types: %v", err)
	}
	typesContent := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`
	if _, err := types.Write([]byte(typesContent)); err != nil {
		t.Fatalf("write content types: %v", err)
	}
	doc, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := doc.Write([]byte(content)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
