package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voiceorder-server/internal/observability"
)

// DefaultLanguage is returned when detection yields nothing usable.
const DefaultLanguage = "en"

type TranslatorClient struct {
	endpoint   string
	key        string
	region     string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewTranslatorClient(endpoint, key, region string, timeout time.Duration, logger *observability.Logger) *TranslatorClient {
	return &TranslatorClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		key:        key,
		region:     region,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type detectRequest struct {
	Text string `json:"Text"`
}

type detectResult struct {
	Language string  `json:"language"`
	Score    float64 `json:"score"`
}

// DetectLanguage returns the ISO-639-1 code of text, or DefaultLanguage when the
// service answers with no result.
func (c *TranslatorClient) DetectLanguage(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal([]detectRequest{{Text: text}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/detect?api-version=3.0", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	if c.region != "" {
		req.Header.Set("Ocp-Apim-Subscription-Region", c.region)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "language detection request failed", err)
		return "", fmt.Errorf("language detection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("language detection error %d: %s", resp.StatusCode, string(respBody))
		c.logger.Error(ctx, "language detection rejected", err)
		return "", err
	}

	var results []detectResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("failed to decode detect response: %w", err)
	}
	if len(results) == 0 || results[0].Language == "" {
		return DefaultLanguage, nil
	}
	return results[0].Language, nil
}
