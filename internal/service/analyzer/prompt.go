package analyzer

import (
	"fmt"

	"govdocgo/internal/models"
)

// instructionTemplate is the fixed analysis instruction. It is
// identical across requests; only the trailing part-count note varies.
const instructionTemplate = `You are an expert AI assistant for Korean administrative and legal documents.
You are provided with document contents (either as images/PDFs or extracted text).
Your goal is to help users (freelancers, elderly, office workers) understand complex official documents instantly.

**Task Instructions:**
1. **Identify Document Type**: Determine if this is a Tax Notice (국세/지방세), Utility Bill (공과금), Legal Notice (등기/공문), or Application Guide (청약/지원금).

2. **Tailored Summary**:
   - **For Tax/Bills**: "You have to pay [Amount] for [Reason] by [Date]. If late, extra fees apply."
   - **For Legal/Warnings**: "This is a warning about [Topic]. You must [Action] by [Date] to avoid [Penalty]."
   - **For Applications**: "You can apply for [Benefit] if you meet [Criteria] between [Start Date] and [End Date]."
   - **For General**: Summarize the core message simply.

3. **Extract Specific Actions (Critical)**:
   - **Separation**: If the document contains multiple payments (e.g., Income Tax AND Local Tax), create SEPARATE action items for each.
   - **Accuracy**: Extract exact amounts and deadlines from ALL provided files/text.
   - **Priority**: Mark as HIGH if the deadline is within 7 days or if terms like "Seizure(압류)", "Warning(독촉)" are present.

4. **Terminology**: Identify difficult legal/administrative terms and provide clear, simple definitions.

5. **Language**: Output strictly in **Korean**.

Input Data: %d part(s) provided.`

// buildInstruction renders the instruction part for a batch of the
// given size.
func buildInstruction(partCount int) string {
	return fmt.Sprintf(instructionTemplate, partCount)
}

// assembleRequest builds the ordered sequence sent to the backend: the
// instruction part first, then the normalized parts in submission
// order, with extracted text framed by its origin label.
func assembleRequest(parts []models.Part) []models.Part {
	request := make([]models.Part, 0, len(parts)+1)
	request = append(request, models.NewTextPart(buildInstruction(len(parts)), ""))
	for _, p := range parts {
		request = append(request, framePart(p))
	}
	return request
}

func framePart(p models.Part) models.Part {
	if p.IsInline() || p.Source == "" {
		return p
	}
	framed := fmt.Sprintf("\n[Document Content (%s)]: \n%s\n", p.Source, p.Text)
	return models.NewTextPart(framed, p.Source)
}
