package search

import "strings"

// DocxMimeType is the MIME type for Word documents in OOXML format.
const DocxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// googleNativeMarker identifies Google-native document MIME types.
const googleNativeMarker = "application/vnd.google-apps"

// Kind classifies a document's MIME type into the format family that
// determines how its text is extracted. The classification happens once per
// document and extraction dispatches on it exhaustively.
type Kind int

const (
	// KindUnsupported covers every MIME type without a decoder.
	KindUnsupported Kind = iota

	// KindGoogleDoc is a Google-native document, exported as plain text.
	KindGoogleDoc

	// KindPDF is a PDF file, extracted page by page.
	KindPDF

	// KindText is any text/* file, decoded directly as UTF-8.
	KindText

	// KindDocx is a Word document, unpacked from its OOXML container.
	KindDocx
)

// String returns the kind's name for logging.
func (k Kind) String() string {
	switch k {
	case KindGoogleDoc:
		return "google_doc"
	case KindPDF:
		return "pdf"
	case KindText:
		return "text"
	case KindDocx:
		return "docx"
	default:
		return "unsupported"
	}
}

// KindForMime classifies a declared MIME type. First match wins: the
// Google-native family marker, then the exact PDF and DOCX types, then the
// generic text/ prefix.
func KindForMime(mimeType string) Kind {
	switch {
	case strings.Contains(mimeType, googleNativeMarker):
		return KindGoogleDoc
	case mimeType == "application/pdf":
		return KindPDF
	case mimeType == DocxMimeType:
		return KindDocx
	case strings.HasPrefix(mimeType, "text/"):
		return KindText
	default:
		return KindUnsupported
	}
}
