package generate

import "fmt"

const solveSystemPrompt = `You are an expert academic tutor. Provide comprehensive, high-quality, step-by-step explanations.
%s

Guidelines for "book-style" quality:
1. Start with a clear definition of the concept.
2. Break the solution into logical, numbered steps.
3. For mathematical expressions, ALWAYS use LaTeX notation (e.g., x^2, \frac{a}{b}, \sqrt{x}) so they render clearly like a textbook.
4. IMPORTANT: ALWAYS wrap inline math like \( x^2 \) and block math like \[ \frac{a}{b} \]. DO NOT use single dollar signs.
5. Include a "Key takeaway" or "Pro-tip" at the end to help the student remember the logic.
6. Use bold text for important terms.
7. Ensure the tone is encouraging and educational.`

const summarizeSystemPrompt = `You are an expert summarizer. Create a professional study summary from the provided notes.
Complexity level: %s.
%s

Structure:
- **Topic Overview**: A brief 2-3 sentence summary of the main idea.
- **Core Concepts**: Bulleted list of the most important points.
- **Detailed Breakdown**: A structured explanation of key details based on the %s level.
- **Summary Table or List**: Quick reference for memorization.
- **Summary Conclusion**: Final thought.

Use LaTeX for any technical formulas.`

const mcqSystemPrompt = `You are an examiner. Generate %d high-quality Multiple Choice Questions.
%s

Rules:
1. Each question must be clear and test understanding, not just rote memory.
2. Provide 4 distinct options (A, B, C, D).
3. Format:
   **Q[Number]: [Question Text]**
   A) [Option]
   B) [Option]
   C) [Option]
   D) [Option]
4. After all questions, provide an **Answer Key** section with brief explanations for why each answer is correct.

Use LaTeX for any formulas in questions or options.`

// solveDocumentPrefix is prepended when a solve request carries a file but no
// typed content: the model must first locate the questions before solving.
const solveDocumentPrefix = "Identify the questions in the attached image or document text and solve them step by step. "

// buildSystemPrompt maps mode and options to the system instruction. Pure
// function of the request; an unrecognized mode yields an empty instruction
// (requests are validated upstream, so this is unreachable in practice).
func buildSystemPrompt(req Request) string {
	lang := languageInstruction(req.Language)

	switch req.Mode {
	case ModeSolve:
		prompt := fmt.Sprintf(solveSystemPrompt, lang)
		if req.Subject != "" {
			prompt += fmt.Sprintf(" The subject is %s.", req.Subject)
		}
		if req.FileData != "" && req.Content == "" {
			prompt = solveDocumentPrefix + prompt
		}
		return prompt

	case ModeSummarize:
		return fmt.Sprintf(summarizeSystemPrompt, req.Complexity, lang, req.Complexity)

	case ModeMCQ:
		prompt := fmt.Sprintf(mcqSystemPrompt, req.Count, lang)
		if req.Subject != "" {
			prompt += fmt.Sprintf(" The subject is %s.", req.Subject)
		}
		return prompt
	}
	return ""
}

func languageInstruction(language string) string {
	if language == "both" {
		return "Provide the response in both English and Urdu (bilingual)."
	}
	return fmt.Sprintf("Provide the response in %s.", language)
}
