package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"health-companion/internal/llm"
	"health-companion/internal/logging"
	"health-companion/internal/metrics"
	"health-companion/pkg"
)

// Input validation errors, checked before any outbound call is placed.
var (
	ErrInvalidAge    = errors.New("age must be between 1 and 120")
	ErrInvalidGender = errors.New("gender must be Male, Female or Other")
	ErrEmptySymptoms = errors.New("symptoms must not be empty")
	ErrEmptyDrugName = errors.New("drug name must not be empty")
)

// DrugLookup is the authoritative-source port consumed by the assistant.
// The boolean result collapses every lookup failure to "not found".
type DrugLookup interface {
	Lookup(ctx context.Context, drugName string) (*pkg.DrugRecord, bool)
}

// Assistant routes each user action to the right information source and
// prompt template, then invokes the completion client exactly once. It holds
// no per-request state; every call is independent.
type Assistant struct {
	Lookup DrugLookup
	LLM    llm.Client
}

// NewAssistant constructs an Assistant with the given lookup and completion
// clients.
func NewAssistant(lookup DrugLookup, client llm.Client) *Assistant {
	return &Assistant{Lookup: lookup, LLM: client}
}

// AnalyzeSymptoms handles the triage flow: the demographic fields and the
// free-text description are folded into one query and sent straight to the
// triage template, with no prior lookup.
func (a *Assistant) AnalyzeSymptoms(ctx context.Context, age int, gender pkg.Gender, symptoms string) (*pkg.Answer, error) {
	if age < 1 || age > 120 {
		return nil, ErrInvalidAge
	}
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrEmptySymptoms
	}

	query := fmt.Sprintf("Age: %d, Gender: %s, Symptoms: %s", age, gender, symptoms)
	req := Compose(pkg.ModeSymptom, query, nil)

	reply, err := a.complete(ctx, req)
	if err != nil {
		return nil, err
	}
	return &pkg.Answer{Reply: reply, Mode: pkg.ModeSymptom}, nil
}

// MedicineDetails handles the medicine flow. The authoritative source is
// always tried first and always wins when it has a match; the
// general-knowledge template is used only on explicit lookup failure. The
// two sources are never blended.
func (a *Assistant) MedicineDetails(ctx context.Context, drugName string) (*pkg.Answer, error) {
	name := strings.TrimSpace(drugName)
	if name == "" {
		return nil, ErrEmptyDrugName
	}

	record, found := a.Lookup.Lookup(ctx, name)
	if found {
		metrics.DrugLookupTotal.WithLabelValues("found").Inc()
		req := Compose(pkg.ModeDrugWithContext, "Explain "+name, record)
		reply, err := a.complete(ctx, req)
		if err != nil {
			return nil, err
		}
		return &pkg.Answer{Reply: reply, Mode: pkg.ModeDrugWithContext, Record: record}, nil
	}

	metrics.DrugLookupTotal.WithLabelValues("not_found").Inc()
	logging.Info("drug not in authoritative source, using general knowledge", "drug", name)
	req := Compose(pkg.ModeDrugNoContext, name, nil)
	reply, err := a.complete(ctx, req)
	if err != nil {
		return nil, err
	}
	return &pkg.Answer{Reply: reply, Mode: pkg.ModeDrugNoContext}, nil
}

func (a *Assistant) complete(ctx context.Context, req pkg.CompletionRequest) (string, error) {
	reply, err := a.LLM.Complete(ctx, req)
	if err != nil {
		metrics.CompletionTotal.WithLabelValues(req.Mode.String(), "error").Inc()
		return "", err
	}
	metrics.CompletionTotal.WithLabelValues(req.Mode.String(), "ok").Inc()
	return reply, nil
}
