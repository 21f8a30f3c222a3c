// Package extract converts an uploaded payload into plain text. The extraction
// method is chosen by declared media type or filename extension via an ordered
// registry; anything unrecognized falls back to the request's raw content.
package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// Input carries the content-bearing fields of a generation request.
type Input struct {
	Content  string // raw text from the request body
	FileData string // base64-encoded file bytes, optionally data-URL-prefixed
	FileName string
	FileType string // declared media type
}

type extractor struct {
	match   func(fileType, fileName string) bool
	extract func(ctx context.Context, data []byte) (string, error)
}

// Evaluated in order; first match wins.
var registry = []extractor{
	{matchImage, extractImage},
	{matchPDF, extractPDF},
	{matchDocx, extractDocx},
	{matchPlainText, extractPlainText},
}

// Text extracts plain text from in. A file payload whose type matches no
// registered extractor yields the raw content field, which may be empty;
// emptiness is the caller's concern.
func Text(ctx context.Context, in Input) (string, error) {
	if in.FileData == "" {
		return in.Content, nil
	}

	data, err := decodePayload(in.FileData)
	if err != nil {
		return "", fmt.Errorf("decode file payload: %w", err)
	}

	fileType := strings.ToLower(strings.TrimSpace(in.FileType))
	fileName := strings.ToLower(strings.TrimSpace(in.FileName))
	for _, e := range registry {
		if e.match(fileType, fileName) {
			return e.extract(ctx, data)
		}
	}
	return in.Content, nil
}

// decodePayload strips an optional "data:...;base64," prefix and decodes.
func decodePayload(raw string) ([]byte, error) {
	if strings.HasPrefix(raw, "data:") {
		if i := strings.IndexByte(raw, ','); i >= 0 {
			raw = raw[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(raw)
}

func matchImage(fileType, fileName string) bool {
	if strings.Contains(fileType, "image") {
		return true
	}
	return hasAnySuffix(fileName, ".jpg", ".jpeg", ".png")
}

func matchPDF(fileType, fileName string) bool {
	return fileType == "application/pdf" || strings.HasSuffix(fileName, ".pdf")
}

func matchDocx(fileType, fileName string) bool {
	return strings.Contains(fileType, "officedocument.wordprocessingml.document") ||
		strings.HasSuffix(fileName, ".docx")
}

func matchPlainText(fileType, fileName string) bool {
	return fileType == "text/plain" || strings.HasSuffix(fileName, ".txt")
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
