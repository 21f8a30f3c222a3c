package extract

import (
	"context"
	"encoding/base64"
	"testing"
)

func TestTextWithoutFileUsesRawContent(t *testing.T) {
	got, err := Text(context.Background(), Input{Content: "hello notes"})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hello notes" {
		t.Fatalf("got %q, want raw content", got)
	}
}

func TestTextPlainTextFile(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("line one\nline two"))
	got, err := Text(context.Background(), Input{
		FileData: payload,
		FileName: "notes.txt",
		FileType: "text/plain",
	})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("got %q", got)
	}
}

func TestTextDataURLPrefixIsStripped(t *testing.T) {
	payload := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("from data url"))
	got, err := Text(context.Background(), Input{
		FileData: payload,
		FileType: "text/plain",
	})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "from data url" {
		t.Fatalf("got %q", got)
	}
}

func TestTextUnrecognizedTypeFallsBackToContent(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0x1f, 0x8b, 0x00})
	got, err := Text(context.Background(), Input{
		Content:  "fallback content",
		FileData: payload,
		FileName: "archive.zip",
		FileType: "application/zip",
	})
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "fallback content" {
		t.Fatalf("got %q, want fallback to raw content", got)
	}
}

func TestTextInvalidBase64(t *testing.T) {
	_, err := Text(context.Background(), Input{
		FileData: "%%% not base64 %%%",
		FileType: "text/plain",
	})
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMatchers(t *testing.T) {
	cases := []struct {
		name     string
		match    func(fileType, fileName string) bool
		fileType string
		fileName string
		want     bool
	}{
		{"image by mime", matchImage, "image/png", "", true},
		{"image by jpeg ext", matchImage, "", "scan.jpeg", true},
		{"image rejects pdf", matchImage, "application/pdf", "doc.pdf", false},
		{"pdf by mime", matchPDF, "application/pdf", "", true},
		{"pdf by ext", matchPDF, "", "homework.pdf", true},
		{"docx by mime", matchDocx, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "", true},
		{"docx by ext", matchDocx, "", "essay.docx", true},
		{"txt by mime", matchPlainText, "text/plain", "", true},
		{"txt by ext", matchPlainText, "", "notes.txt", true},
		{"txt rejects markdown", matchPlainText, "text/markdown", "notes.md", false},
	}
	for _, tc := range cases {
		if got := tc.match(tc.fileType, tc.fileName); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRegistryPrefersImageOverGenericMatch(t *testing.T) {
	// A jpeg with an ambiguous declared type must route to OCR, not plain text.
	if !matchImage("", "photo.jpg") {
		t.Fatalf("jpg extension should match the image extractor")
	}
	if matchPlainText("", "photo.jpg") {
		t.Fatalf("jpg extension must not match the plain-text extractor")
	}
}
