package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backend/models"
	"backend/pkg/logger"
)

// GeminiService is the single fallible boundary to the generative-AI
// collaborator. Callers that treat the AI as optional go through Suggestion
// values instead of handling errors ad hoc.
type GeminiService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	log     *logger.Logger
}

func NewGeminiService(apiKey string, log *logger.Logger) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		model:   "gemini-2.0-flash",
		// Bounded timeout so a stalled upstream never exhausts handlers.
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

func (gs *GeminiService) WithModel(model string) *GeminiService {
	gs.model = model
	return gs
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (gs *GeminiService) prompt(ctx context.Context, system, text string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: text}}}},
	}
	if system != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", gs.baseURL, gs.model, gs.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := gs.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrAIUnavailable, resp.StatusCode)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrAIUnavailable)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences unwraps ```json ... ``` blocks the model tends to emit
// around structured output.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// ---------- Weekly narrative (best-effort) ----------

// Suggestion carries the narrative text or an explicit unavailable marker.
type Suggestion struct {
	Text      string
	Available bool
}

const narrativeSystem = "You are a nutrition expert. Provide helpful, concise advice."

// WeeklyNarrative asks for a short markdown narrative over the weekly
// averages. Failure is logged and returned as unavailable, never as an
// error: the weekly report ships without it.
func (gs *GeminiService) WeeklyNarrative(ctx context.Context, averages, percentages models.NutrientVector, goal *models.Goal) Suggestion {
	var b strings.Builder
	b.WriteString("Write a short markdown summary (3-5 sentences) of this user's week of eating, with one or two practical suggestions.\n\n")
	fmt.Fprintf(&b, "Daily averages: %.0f kcal, %.1f g protein, %.1f g carbohydrate, %.1f g fat, %.1f g fiber, %.0f mg sodium.\n",
		averages.Calories, averages.Protein, averages.Carbohydrate, averages.FatTotal, averages.Fiber, averages.Sodium)
	if goal != nil {
		fmt.Fprintf(&b, "Primary goals: %s.\n", strings.Join(goal.PrimaryGoalList(), ", "))
		fmt.Fprintf(&b, "Percent of daily targets: calories %.0f%%, protein %.0f%%, fiber %.0f%%, sodium %.0f%%.\n",
			percentages.Calories, percentages.Protein, percentages.Fiber, percentages.Sodium)
	}

	text, err := gs.prompt(ctx, narrativeSystem, b.String())
	if err != nil {
		gs.log.Warnw("weekly narrative unavailable", "error", err)
		return Suggestion{}
	}
	return Suggestion{Text: text, Available: true}
}

// ---------- Meal plan (AI is the deliverable) ----------

type PlannedMeal struct {
	Name        string  `json:"name"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
}

type MealPlanDay struct {
	Day   string        `json:"day"`
	Meals []PlannedMeal `json:"meals"`
}

type MealPlan struct {
	Days []MealPlanDay `json:"days"`
}

// GenerateMealPlan builds a 7-day plan from the current goal and profile.
// Here the AI output is the deliverable, so failures surface as the
// operation's own error.
func (gs *GeminiService) GenerateMealPlan(ctx context.Context, goal *models.Goal, profile *models.HealthProfile) (*MealPlan, error) {
	var b strings.Builder
	b.WriteString("You are a professional nutritionist. Create a 7-day meal plan.\n\n")
	fmt.Fprintf(&b, "Daily targets: %.0f kcal, %.1f g protein, %.1f g carbohydrate, %.1f g fat, %.0f g fiber.\n",
		goal.Targets.Calories, goal.Targets.Protein, goal.Targets.Carbohydrate, goal.Targets.FatTotal, goal.Targets.Fiber)
	fmt.Fprintf(&b, "Primary goals: %s.\n", strings.Join(goal.PrimaryGoalList(), ", "))
	if allergies := goal.Allergies; allergies != "" {
		fmt.Fprintf(&b, "Avoid these allergens: %s.\n", allergies)
	}
	if profile != nil && profile.Gender != "" {
		fmt.Fprintf(&b, "The user is %s, %.0f cm, %.0f kg.\n", profile.Gender, profile.HeightCm, profile.CurrentWeightKg)
	}
	b.WriteString("\nRespond with JSON only, no prose, in this shape:\n")
	b.WriteString(`{"days":[{"day":"Monday","meals":[{"name":"...","time":"08:00","description":"...","calories":0}]}]}`)

	text, err := gs.prompt(ctx, "", b.String())
	if err != nil {
		return nil, err
	}

	var plan MealPlan
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &plan); err != nil {
		return nil, fmt.Errorf("%w: unparseable meal plan: %v", ErrAIUnavailable, err)
	}
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("%w: empty meal plan", ErrAIUnavailable)
	}
	return &plan, nil
}

// ---------- OCR structuring ----------

// FoodItemDraft is the AI-structured reading of a nutrition label. Nothing
// is persisted from it without the user confirming the draft.
type FoodItemDraft struct {
	Name               string                `json:"name"`
	ServingQuantity    float64               `json:"serving_quantity"`
	ServingUnit        string                `json:"serving_unit"`
	ServingWeightGrams float64               `json:"serving_weight_grams"`
	Nutrients          models.NutrientVector `json:"nutrients"`
	ExpirationHours    float64               `json:"expiration_hours"`
	Tags               []string              `json:"tags"`
}

// StructureFoodItem turns OCR text from a product label into a FoodItem
// draft. Unparseable output degrades to (nil, nil): the caller still has
// the raw text to return as a partial result.
func (gs *GeminiService) StructureFoodItem(ctx context.Context, ocrText string) (*FoodItemDraft, error) {
	var b strings.Builder
	b.WriteString("Extract a food item from this nutrition label text. Normalize nutrients per 100 g or 100 ml.\n\n")
	b.WriteString("Label text:\n")
	b.WriteString(ocrText)
	b.WriteString("\n\nRespond with JSON only:\n")
	b.WriteString(`{"name":"...","serving_quantity":0,"serving_unit":"g","serving_weight_grams":0,` +
		`"nutrients":{"calories":0,"protein":0,"carbohydrate":0,"fat_total":0,"fiber":0,"sodium":0,` +
		`"cholesterol":0,"potassium":0,"vitamin_a":0,"vitamin_c":0,"vitamin_d":0,"calcium":0,"iron":0,"magnesium":0},` +
		`"expiration_hours":0,"tags":[]}`)

	text, err := gs.prompt(ctx, "", b.String())
	if err != nil {
		return nil, err
	}

	var draft FoodItemDraft
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &draft); err != nil {
		gs.log.Warnw("food item draft unparseable", "error", err)
		return nil, nil
	}
	return &draft, nil
}

// ---------- Chat ----------

type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const chatSystem = "You are a nutrition expert. Provide helpful, concise advice."

// Chat sends one user message with the running conversation context, the
// way the product's chat sessions are built.
func (gs *GeminiService) Chat(ctx context.Context, history []ChatMessage, userMessage string) (string, error) {
	var b strings.Builder
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == "user" {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n\n", role, msg.Content)
	}
	fmt.Fprintf(&b, "User: %s\n\nAssistant:", userMessage)

	return gs.prompt(ctx, chatSystem, b.String())
}
