package pkg

import "fmt"

// Mode selects which fixed instruction template and user-content shape a
// request uses. Exactly one mode is active per invocation; every switch over
// Mode in this codebase enumerates all three cases so that adding a fourth
// mode is a compile-visible change, not a silent default branch.
type Mode int

const (
	// ModeSymptom is the triage path: free-text symptoms straight to the
	// triage-nurse template, no prior lookup.
	ModeSymptom Mode = iota
	// ModeDrugWithContext is the medicine path when the authoritative
	// source returned a record.
	ModeDrugWithContext
	// ModeDrugNoContext is the fallback medicine path: the authoritative
	// source had no match, the model answers from general knowledge.
	ModeDrugNoContext
)

// String returns the wire name of the mode, used in JSON responses and
// metric labels.
func (m Mode) String() string {
	switch m {
	case ModeSymptom:
		return "symptom"
	case ModeDrugWithContext:
		return "drug_with_context"
	case ModeDrugNoContext:
		return "drug_no_context"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText makes Mode render as its wire name inside JSON payloads.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// DrugRecord is the fixed-shape normalization of the first matching entry
// from the drug-label source. It is request-scoped and never persisted.
// Absent fields carry the literal "Not Listed"; Warnings is capped at 1000
// characters by the lookup client.
type DrugRecord struct {
	Source      string `json:"source"`
	Purpose     string `json:"purpose"`
	Indications string `json:"indications"`
	Warnings    string `json:"warnings"`
}

// CompletionRequest is the composed two-part message sent to the completion
// provider. SystemInstruction is fully determined by Mode; UserContent is
// built once and never mutated afterward.
type CompletionRequest struct {
	Mode              Mode
	SystemInstruction string
	UserContent       string
}

// Gender is the patient gender supplied with a symptom request.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the three accepted values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// SymptomRequest is the body of POST /api/v1/symptoms.
type SymptomRequest struct {
	Age      int    `json:"age"`
	Gender   Gender `json:"gender"`
	Symptoms string `json:"symptoms"`
}

// MedicineRequest is the body of POST /api/v1/medicine.
type MedicineRequest struct {
	Name string `json:"name"`
}

// Answer is the assistant's reply to either flow. Record is present only
// when the authoritative source matched, so clients can show the technical
// data alongside the explanation.
type Answer struct {
	Reply  string      `json:"reply"`
	Mode   Mode        `json:"mode"`
	Record *DrugRecord `json:"record,omitempty"`
}

// Helpline is a fixed emergency phone entry.
type Helpline struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// EmergencyInfo is the response to GET /api/v1/emergency/{city}: two map
// search links for the city plus the fixed helpline numbers. Built by pure
// string formatting, no network call.
type EmergencyInfo struct {
	City          string     `json:"city"`
	HospitalsURL  string     `json:"hospitals_url"`
	AmbulancesURL string     `json:"ambulances_url"`
	Helplines     []Helpline `json:"helplines"`
}
