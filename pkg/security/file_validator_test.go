package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pdfHead = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

func TestInspectFile(t *testing.T) {
	t.Run("Should keep a declared type", func(t *testing.T) {
		got := InspectFile("cv.pdf", "application/pdf", pdfHead)
		assert.Equal(t, "application/pdf", got.MediaType)
		assert.Equal(t, ".pdf", got.Extension)
		assert.False(t, got.Spoofed)
	})

	t.Run("Should sniff when the declared type is generic", func(t *testing.T) {
		got := InspectFile("cv.pdf", "application/octet-stream", pdfHead)
		assert.Equal(t, "application/pdf", got.MediaType)
		assert.Equal(t, "application/octet-stream", got.DeclaredMIME)

		got = InspectFile("cv", "", pdfHead)
		assert.Equal(t, "application/pdf", got.MediaType)
	})

	t.Run("Should drop media type parameters", func(t *testing.T) {
		got := InspectFile("notes.txt", "text/plain; charset=utf-8", []byte("hello"))
		assert.Equal(t, "text/plain", got.MediaType)
	})

	t.Run("Should flag content that does not match the extension", func(t *testing.T) {
		got := InspectFile("cv.pdf", "application/pdf", []byte("MZ\x90\x00 not a pdf"))
		assert.True(t, got.Spoofed)
	})

	t.Run("Should strip path components", func(t *testing.T) {
		assert.Equal(t, "cv.pdf", InspectFile("../../etc/cv.pdf", "", nil).Filename)
		assert.Equal(t, "cv.docx", InspectFile(`C:\Users\me\cv.docx`, "", nil).Filename)
	})
}
