package extract

import (
	"bytes"
	"context"
	"strings"

	docxlib "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"github.com/otiai10/gosseract/v2"
)

// extractImage runs OCR over the image bytes. The result may be empty or
// low-quality; there is no minimum-confidence gate.
func extractImage(_ context.Context, data []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", err
	}
	return client.Text()
}

// extractPDF reads the embedded text layer. A scanned-image PDF with no text
// layer yields an empty string, not an error.
func extractPDF(_ context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// extractDocx pulls raw text out of a Word document, discarding formatting.
func extractDocx(_ context.Context, data []byte) (string, error) {
	doc, err := docxlib.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docxlib.Paragraph:
			sb.WriteString(v.String())
			sb.WriteByte('\n')
		case *docxlib.Table:
			sb.WriteString(v.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func extractPlainText(_ context.Context, data []byte) (string, error) {
	return string(data), nil
}
