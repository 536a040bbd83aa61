package core

// prompts.go defines the fixed instruction templates used by the prompt
// composer. Keeping them in a separate file makes them easy to tweak
// without touching the routing logic. Each template is bound to exactly one
// mode; the composer never blends them.

const (
	// TriagePrompt is the system instruction for the symptom-checker flow.
	// It instructs the model to act as a triage nurse and always close with
	// the non-doctor disclaimer.
	TriagePrompt = "You are a senior medical triage nurse.\n" +
		"1. Ask follow-up questions if the user's description is too vague.\n" +
		"2. Identify if this is an emergency (Heart attack, Stroke, Anaphylaxis).\n" +
		"3. Suggest specialist doctors (e.g., 'See a Gastroenterologist').\n" +
		"4. Suggest supportive home care (hydration, rest).\n" +
		"5. DISCLAIMER: Always state you are an AI, not a doctor."

	// DrugWithDataPrompt is used when the authoritative label data was
	// found. The model only rephrases the official record for a patient.
	DrugWithDataPrompt = "You are a helpful pharmacist. Explain this technical medical data in simple English for a patient."

	// DrugNoDataPrompt is the fallback when the label lookup found nothing,
	// which is common for non-US brands. The model answers from general
	// knowledge and must append the check-the-package warning.
	DrugNoDataPrompt = "You are an expert pharmacist familiar with international medicines, including Indian brands (like Dolo, Saridon, Pan D).\n" +
		"1. Identify the active ingredients in the drug name provided.\n" +
		"2. Explain its uses and side effects.\n" +
		"3. Provide a warning: \"Information based on general knowledge, check the strip pack.\""
)

const (
	// MissingKeyMessage is shown to the user when no completion API key is
	// configured. AI-backed actions degrade to this message instead of
	// failing silently.
	MissingKeyMessage = "The assistant is not configured yet. Set GROQ_API_KEY in the environment (get a free key at https://console.groq.com/keys) and restart."

	// UnavailableMessage is shown when the completion provider errored.
	// The user must never be left with a blank or crashed screen.
	UnavailableMessage = "The assistant service is unavailable right now. Please try again in a moment."
)
