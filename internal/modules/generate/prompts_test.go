package generate

import (
	"strings"
	"testing"
)

func normalized(d generateDTO) Request { return d.toRequest() }

func TestSolvePrompt(t *testing.T) {
	prompt := buildSystemPrompt(normalized(generateDTO{Type: "solve", Subject: "Physics", Content: "What is F=ma?"}))

	if !strings.Contains(prompt, `\( x^2 \)`) || !strings.Contains(prompt, `\[ \frac{a}{b} \]`) {
		t.Fatalf("solve prompt missing LaTeX delimiter instructions:\n%s", prompt)
	}
	if !strings.Contains(prompt, "DO NOT use single dollar signs") {
		t.Fatalf("solve prompt must forbid single-dollar delimiters")
	}
	if !strings.Contains(prompt, "Key takeaway") {
		t.Fatalf("solve prompt missing key takeaway instruction")
	}
	if !strings.Contains(prompt, "The subject is Physics.") {
		t.Fatalf("subject not appended:\n%s", prompt)
	}
	if strings.Contains(prompt, solveDocumentPrefix) {
		t.Fatalf("document prefix must not appear for a text-only request")
	}
	if !strings.Contains(prompt, "Provide the response in english.") {
		t.Fatalf("default language directive missing:\n%s", prompt)
	}
}

func TestSolvePromptWithFileOnlyPrependsDocumentInstruction(t *testing.T) {
	prompt := buildSystemPrompt(normalized(generateDTO{Type: "solve", FileData: "aGVsbG8="}))
	if !strings.HasPrefix(prompt, solveDocumentPrefix) {
		t.Fatalf("file-only solve request must prepend the identify-questions instruction:\n%s", prompt)
	}

	// Typed content alongside the file suppresses the prefix.
	prompt = buildSystemPrompt(normalized(generateDTO{Type: "solve", FileData: "aGVsbG8=", Content: "solve this"}))
	if strings.HasPrefix(prompt, solveDocumentPrefix) {
		t.Fatalf("prefix must not appear when content is present")
	}
}

func TestSummarizePromptSectionsAndComplexity(t *testing.T) {
	prompt := buildSystemPrompt(normalized(generateDTO{Type: "summarize", Complexity: "easy"}))

	for _, header := range []string{
		"**Topic Overview**",
		"**Core Concepts**",
		"**Detailed Breakdown**",
		"**Summary Table or List**",
		"**Summary Conclusion**",
	} {
		if !strings.Contains(prompt, header) {
			t.Fatalf("summarize prompt missing section %s:\n%s", header, prompt)
		}
	}
	if !strings.Contains(prompt, "Complexity level: easy.") {
		t.Fatalf("complexity directive missing:\n%s", prompt)
	}

	prompt = buildSystemPrompt(normalized(generateDTO{Type: "summarize"}))
	if !strings.Contains(prompt, "Complexity level: medium.") {
		t.Fatalf("complexity should default to medium:\n%s", prompt)
	}
}

func TestMCQPromptCount(t *testing.T) {
	prompt := buildSystemPrompt(normalized(generateDTO{Type: "mcq", Count: 10}))
	if !strings.Contains(prompt, "Generate 10 high-quality Multiple Choice Questions") {
		t.Fatalf("requested count not honored:\n%s", prompt)
	}

	prompt = buildSystemPrompt(normalized(generateDTO{Type: "mcq"}))
	if !strings.Contains(prompt, "Generate 5 high-quality Multiple Choice Questions") {
		t.Fatalf("count should default to 5:\n%s", prompt)
	}
	if !strings.Contains(prompt, "A) [Option]") || !strings.Contains(prompt, "D) [Option]") {
		t.Fatalf("mcq prompt missing labeled options:\n%s", prompt)
	}
	if !strings.Contains(prompt, "**Answer Key**") {
		t.Fatalf("mcq prompt missing answer key section:\n%s", prompt)
	}
}

func TestMCQPromptSubjectSuffix(t *testing.T) {
	prompt := buildSystemPrompt(normalized(generateDTO{Type: "mcq", Subject: "Chemistry"}))
	if !strings.Contains(prompt, "The subject is Chemistry.") {
		t.Fatalf("subject not appended:\n%s", prompt)
	}
}

func TestLanguageDirectives(t *testing.T) {
	prompt := buildSystemPrompt(normalized(generateDTO{Type: "solve", Language: "urdu"}))
	if !strings.Contains(prompt, "Provide the response in urdu.") {
		t.Fatalf("single-language directive missing:\n%s", prompt)
	}

	prompt = buildSystemPrompt(normalized(generateDTO{Type: "summarize", Language: "both"}))
	if !strings.Contains(prompt, "both English and Urdu (bilingual)") {
		t.Fatalf("bilingual directive missing:\n%s", prompt)
	}
}

func TestUnrecognizedModeYieldsEmptyPrompt(t *testing.T) {
	if got := buildSystemPrompt(Request{Mode: "translate"}); got != "" {
		t.Fatalf("unknown mode should produce an empty instruction, got %q", got)
	}
}
