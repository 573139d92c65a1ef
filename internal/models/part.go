package models

// UploadedFile is one submitted document as it arrives on the wire:
// base64 payload plus the media type declared by the caller. It is
// consumed once per request and never stored.
type UploadedFile struct {
	Base64Data string `json:"base64Data"`
	MimeType   string `json:"mimeType"`
}

// PartSource labels where the text of an extracted Part came from.
type PartSource string

const (
	SourceHWP  PartSource = "HWP"
	SourceDOCX PartSource = "DOCX"
	SourceText PartSource = "Text"
)

// Part is one unit of content handed to the generative backend: either
// inline binary (PDF or image, passed through untouched) or text
// extracted from an office document. Batch order is preserved end to
// end because the model weights it as document order.
type Part struct {
	// inline binary variant
	Data     []byte
	MimeType string

	// text variant
	Text   string
	Source PartSource
}

// NewInlinePart wraps raw PDF or image bytes.
func NewInlinePart(data []byte, mimeType string) Part {
	return Part{Data: data, MimeType: mimeType}
}

// NewTextPart wraps extracted text tagged with its origin.
func NewTextPart(text string, source PartSource) Part {
	return Part{Text: text, Source: source}
}

// IsInline reports whether the part carries binary content.
func (p Part) IsInline() bool {
	return len(p.Data) > 0
}
