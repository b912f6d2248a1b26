package places

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voyago/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// GeminiSource generates candidate places with the Gemini API. The model is
// asked only for names, categories and search metadata; it is not trusted
// for coordinates or ratings, which stay nil until enriched elsewhere.
type GeminiSource struct {
	model *genai.GenerativeModel
	count int
}

// NewGeminiSource builds a Gemini-backed candidate source.
func NewGeminiSource(apiKey string, count int) (*GeminiSource, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiSource{model: model, count: count}, nil
}

// Candidates prompts the model for a JSON array of places.
func (g *GeminiSource) Candidates(ctx context.Context, city, vibe string) ([]models.CandidatePlace, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(candidatePrompt(city, vibe, g.count)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return ParseCandidates(sb.String())
}

func candidatePrompt(city, vibe string, count int) string {
	vibeContext := ""
	if vibe != "" {
		vibeContext = fmt.Sprintf(" The traveler is looking for a %s vibe.", vibe)
	}
	return fmt.Sprintf(`You are a travel expert. Generate exactly %d must-visit places for someone traveling to %s.%s

IMPORTANT: Return ONLY a valid JSON array. No markdown, no explanation, no code blocks.

Each place should have:
- "name": The official name of the place
- "category": One of: "landmark", "restaurant", "museum", "nature", "nightlife", "shopping", "cultural", "cafe"
- "why": One sentence on why to visit (max 15 words)
- "types": A short list of descriptive tags (e.g. ["park", "tourist_attraction"])

Return exactly %d diverse places covering different categories. JSON only:`, count, city, vibeContext, count)
}

// ParseCandidates decodes the model's JSON array, tolerating the markdown
// code fences models sometimes wrap it in. Candidates without an id get one
// assigned; categories are normalized.
func ParseCandidates(raw string) ([]models.CandidatePlace, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimPrefix(raw, "json")
		if idx := strings.LastIndex(raw, "```"); idx >= 0 {
			raw = raw[:idx]
		}
		raw = strings.TrimSpace(raw)
	}

	var candidates []models.CandidatePlace
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}
	for i := range candidates {
		if candidates[i].ID == "" {
			candidates[i].ID = uuid.New().String()
		}
		candidates[i].Category = models.ParseCategory(string(candidates[i].Category))
	}
	return candidates, nil
}
