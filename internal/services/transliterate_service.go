package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const inputToolsURL = "https://inputtools.google.com/request"

// TransliterateService converts Latin-script text to Devanagari using the
// Google Input Tools endpoint. Best effort: any failure returns the input
// unchanged.
type TransliterateService struct {
	HTTPClient *http.Client
}

func NewTransliterateService() *TransliterateService {
	return &TransliterateService{HTTPClient: http.DefaultClient}
}

// Transliterate returns the best Hindi guess for text, or text itself when
// the call fails or yields nothing usable.
func (s *TransliterateService) Transliterate(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	q := url.Values{}
	q.Set("text", text)
	q.Set("itc", "hi-t-i0-und")
	q.Set("num", "1")
	q.Set("cp", "0")
	q.Set("cs", "1")
	q.Set("ie", "utf-8")
	q.Set("oe", "utf-8")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, inputToolsURL+"?"+q.Encode(), nil)
	if err != nil {
		return text
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return text
	}

	result, err := parseInputToolsResponse(resp.Body)
	if err != nil {
		return text
	}
	return result
}

// parseInputToolsResponse digs the first suggestion out of the nested
// response: ["SUCCESS", [[input, [suggestion, ...], ...], ...]].
func parseInputToolsResponse(body io.Reader) (string, error) {
	var payload []interface{}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload) < 2 {
		return "", errors.New("short response")
	}
	status, ok := payload[0].(string)
	if !ok || status != "SUCCESS" {
		return "", fmt.Errorf("status %v", payload[0])
	}

	groups, ok := payload[1].([]interface{})
	if !ok || len(groups) == 0 {
		return "", errors.New("no result groups")
	}
	group, ok := groups[0].([]interface{})
	if !ok || len(group) < 2 {
		return "", errors.New("malformed result group")
	}
	suggestions, ok := group[1].([]interface{})
	if !ok || len(suggestions) == 0 {
		return "", errors.New("no suggestions")
	}
	best, ok := suggestions[0].(string)
	if !ok || best == "" {
		return "", errors.New("empty suggestion")
	}
	return best, nil
}
