package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hireme/models"
	"hireme/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiInterpreter reads service requests with a language model, falling
// back to the keyword interpreter whenever the model is unavailable or
// returns something unusable.
type GeminiInterpreter struct {
	model    *genai.GenerativeModel
	fallback *KeywordInterpreter
}

// NewGeminiInterpreter creates a model-backed interpreter.
func NewGeminiInterpreter(apiKey string) (*GeminiInterpreter, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiInterpreter{model: model, fallback: NewKeywordInterpreter()}, nil
}

// Interpret prompts the model for a strict-JSON reading of the query.
func (g *GeminiInterpreter) Interpret(ctx context.Context, freeText string) (Interpretation, error) {
	var ids []string
	for _, c := range models.Categories() {
		ids = append(ids, c.ID)
	}
	prompt := fmt.Sprintf(`You classify home-service requests.
Known category ids: %s. Known cities: %s.
Respond with ONLY a JSON object of this exact shape:
{"categoryId": "<id or empty string>", "reasoning": "<short>", "suggestedSearchTerm": "<cleaned term>", "detectedLocation": "<city/area or empty string>"}
Request: %q`, strings.Join(ids, ", "), strings.Join(models.Cities, ", "), freeText)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("gemini interpret failed, using keyword fallback", zap.Error(err))
		return g.fallback.Interpret(ctx, freeText)
	}

	var out Interpretation
	if err := json.Unmarshal([]byte(extractJSON(text)), &out); err != nil {
		utils.GetLogger().Warn("gemini returned unparseable output, using keyword fallback", zap.Error(err))
		return g.fallback.Interpret(ctx, freeText)
	}
	if _, ok := models.CategoryByID(out.CategoryID); !ok {
		out.CategoryID = ""
	}
	if out.SuggestedTerm == "" {
		out.SuggestedTerm = freeText
	}
	return out, nil
}

// EnhanceBio rewrites a provider bio, falling back to the template rewrite.
func (g *GeminiInterpreter) EnhanceBio(ctx context.Context, bio, name, profession string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite this service provider bio as two or three friendly, professional sentences. Provider name: %s. Profession: %s. Current bio: %q. Respond with the rewritten bio only.`, name, profession, bio)
	text, err := g.generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		utils.GetLogger().Warn("gemini bio rewrite failed, using template fallback", zap.Error(err))
		return g.fallback.EnhanceBio(ctx, bio, name, profession)
	}
	return strings.TrimSpace(text), nil
}

func (g *GeminiInterpreter) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// extractJSON tolerates models wrapping the object in code fences or prose.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}
