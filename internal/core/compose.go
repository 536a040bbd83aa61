package core

import (
	"fmt"

	"health-companion/pkg"
)

// Compose builds the two-part completion request for the given mode. It is a
// pure function: no I/O, deterministic given its inputs. The record argument
// is only consulted for ModeDrugWithContext and may be nil otherwise.
func Compose(mode pkg.Mode, userQuery string, record *pkg.DrugRecord) pkg.CompletionRequest {
	req := pkg.CompletionRequest{Mode: mode}

	switch mode {
	case pkg.ModeSymptom:
		req.SystemInstruction = TriagePrompt
		req.UserContent = userQuery
	case pkg.ModeDrugWithContext:
		req.SystemInstruction = DrugWithDataPrompt
		req.UserContent = fmt.Sprintf("Official Data: %s\n\nUser Question: %s", FormatRecord(record), userQuery)
	case pkg.ModeDrugNoContext:
		req.SystemInstruction = DrugNoDataPrompt
		req.UserContent = "Explain the medicine: " + userQuery
	}

	return req
}

// FormatRecord serializes an authoritative record into the plain-text block
// interpolated into the drug_with_context prompt.
func FormatRecord(r *pkg.DrugRecord) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("Source: %s\nPurpose: %s\nIndications: %s\nWarnings: %s",
		r.Source, r.Purpose, r.Indications, r.Warnings)
}
