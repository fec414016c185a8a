package security

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// SniffLength is how many leading bytes are read for content detection
const SniffLength = 3072

// FileInspection describes an uploaded file without keeping its content
type FileInspection struct {
	Filename     string // Base name, path components stripped
	Extension    string // Lowercase extension including the dot
	DeclaredMIME string // Content-Type sent by the client, parameters dropped
	DetectedMIME string // Type detected from the leading bytes
	MediaType    string // Declared type, or the detected one when none was usable
	Spoofed      bool   // Known extension whose magic bytes do not match
}

// Magic byte signatures for document types
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".odt":  {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".rtf":  {{0x7B, 0x5C, 0x72, 0x74, 0x66}},                   // {\rtf
}

// InspectFile resolves the media type of an upload. The declared type wins
// unless it is missing or application/octet-stream, in which case the
// content is sniffed.
func InspectFile(filename, declared string, head []byte) FileInspection {
	result := FileInspection{
		Filename:     sanitizeFilename(filename),
		Extension:    strings.ToLower(filepath.Ext(filename)),
		DeclaredMIME: baseMediaType(declared),
	}

	if len(head) > 0 {
		result.DetectedMIME = baseMediaType(mimetype.Detect(head).String())
	}

	result.MediaType = result.DeclaredMIME
	if result.MediaType == "" || result.MediaType == "application/octet-stream" {
		result.MediaType = result.DetectedMIME
	}

	result.Spoofed = !validateMagicBytes(result.Extension, head)
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes.
// Extensions without a known signature always pass.
func validateMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok {
		return true
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

func baseMediaType(value string) string {
	if value == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return mediaType
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
