package interpreter

import "context"

// Interpretation is the structured reading of a free-text service request.
// Empty CategoryID or DetectedLocation means the interpreter found nothing;
// callers must tolerate fully degraded output (everything empty or an echo
// of the input) without error.
type Interpretation struct {
	CategoryID       string `json:"categoryId,omitempty"`
	Reasoning        string `json:"reasoning,omitempty"`
	SuggestedTerm    string `json:"suggestedSearchTerm"`
	DetectedLocation string `json:"detectedLocation,omitempty"`
}

// QueryInterpreter maps free-text input to a category/location/term hint.
// The core does not care how the mapping is produced.
type QueryInterpreter interface {
	Interpret(ctx context.Context, freeText string) (Interpretation, error)
	// EnhanceBio rewrites a provider bio into marketing copy.
	EnhanceBio(ctx context.Context, bio, name, profession string) (string, error)
}
