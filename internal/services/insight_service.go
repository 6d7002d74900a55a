package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

const geminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// InsightService asks Gemini for a short business analysis of the current
// dataset. Always returns a human-readable string; failures degrade to a
// canned message and never reach the ledger.
type InsightService struct {
	Ledger     *LedgerService
	HTTPClient *http.Client

	apiKey string
}

func NewInsightService(ledger *LedgerService, apiKey string) *InsightService {
	return &InsightService{
		Ledger:     ledger,
		HTTPClient: http.DefaultClient,
		apiKey:     apiKey,
	}
}

// Generate summarizes every customer and asks the model for trends,
// at-risk customers and growth suggestions.
func (s *InsightService) Generate(ctx context.Context) string {
	if s.apiKey == "" {
		return "API key not found. Please set GEMINI_API_KEY to enable insights."
	}

	summaries := s.Ledger.SummarizeCustomers(ctx)
	data, err := json.Marshal(summaries)
	if err != nil {
		return "Failed to generate insights. Please check your network or API key."
	}

	prompt := fmt.Sprintf(
		"You are a business analyst for a water jar delivery service. "+
			"Analyze this customer data and provide 3 concise, actionable insights "+
			"about revenue trends, at-risk customers, and growth opportunities. "+
			"Data: %s", string(data))

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "Failed to generate insights. Please check your network or API key."
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		geminiURL+"?key="+s.apiKey, bytes.NewReader(payload))
	if err != nil {
		return "Failed to generate insights. Please check your network or API key."
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		log.Printf("[Insight] Request failed: %v", err)
		return "Failed to generate insights. Please check your network or API key."
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Insight] Gemini returned %d", resp.StatusCode)
		return "Failed to generate insights. Please check your network or API key."
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "Failed to generate insights. Please check your network or API key."
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "No analysis generated."
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "No analysis generated."
	}
	return text
}
