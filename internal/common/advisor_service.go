package common

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"elite-hub/treinador/internal/constants"
	"elite-hub/treinador/internal/models/dtos"
)

// AdvisorService talks to the generative-language API that produces
// coaching tips. It is a pure collaborator: prompt in, text or error out.
// Login never waits on it.
type AdvisorService struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
	cache   CacheInterface
}

// NewAdvisorService creates a new instance, reading config from environment variables
func NewAdvisorService(cache CacheInterface) *AdvisorService {
	baseURL := os.Getenv("GENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := os.Getenv("GENAI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	apiKey := os.Getenv("GENAI_API_KEY")
	client := &http.Client{Timeout: 10 * time.Second}
	return &AdvisorService{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  client,
		cache:   cache,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// GenerateTip returns a coaching tip for the profile and question. Identical
// questions from the same profile are served from cache for a short window.
// The second return value reports a cache hit.
func (svc *AdvisorService) GenerateTip(ctx context.Context, profile *dtos.Profile, question string) (string, bool, error) {
	key := tipCacheKey(profile.ID, question)

	if svc.cache != nil {
		if val, found := svc.cache.Get(key); found {
			if tip, ok := val.(string); ok {
				return tip, true, nil
			}
		}
	}

	tip, err := svc.generate(ctx, BuildTipPrompt(profile, question))
	if err != nil {
		return "", false, err
	}

	if svc.cache != nil {
		svc.cache.Set(key, tip, 10*time.Minute)
	}
	return tip, false, nil
}

func (svc *AdvisorService) generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", svc.BaseURL, svc.Model, svc.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor API returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("advisor API returned no candidates")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("advisor API returned empty text")
	}
	return text, nil
}

// BuildTipPrompt assembles the coaching context from the athlete's profile.
func BuildTipPrompt(profile *dtos.Profile, question string) string {
	var b strings.Builder
	b.WriteString("Você é um treinador de elite especialista em biomecânica e recomposição corporal.\n")
	b.WriteString("Informações do aluno:\n")
	fmt.Fprintf(&b, "- Nome: %s\n", profile.Name)
	if profile.Objective != nil {
		fmt.Fprintf(&b, "- Objetivo: %s\n", *profile.Objective)
	}
	if profile.CurrentWeight != nil && profile.TargetWeight != nil {
		fmt.Fprintf(&b, "- Peso atual: %.1fkg, Meta: %.1fkg\n", *profile.CurrentWeight, *profile.TargetWeight)
	}
	if len(profile.ClinicalRestrictions) > 0 {
		fmt.Fprintf(&b, "- Restrições médicas: %s\n", strings.Join(profile.ClinicalRestrictions, ", "))
	}
	b.WriteString("Regras: seja motivador mas técnico; nunca sugira exercícios que conflitem com as restrições médicas.\n\n")
	fmt.Fprintf(&b, "Aluno pergunta: %s", question)
	return b.String()
}

func tipCacheKey(profileID, question string) string {
	sum := sha256.Sum256([]byte(question))
	return fmt.Sprintf("%s%s:%x", constants.CachePrefixAdvisorTip, profileID, sum[:8])
}
