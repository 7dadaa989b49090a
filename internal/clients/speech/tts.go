package speech

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"voiceorder-server/internal/observability"
)

const outputFormat = "riff-16khz-16bit-mono-pcm"

type TTSClient struct {
	endpoint   string
	key        string
	region     string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewTTSClient(endpoint, key, region string, timeout time.Duration, logger *observability.Logger) *TTSClient {
	return &TTSClient{
		endpoint:   endpoint,
		key:        key,
		region:     region,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Synthesize renders text with the given voice and returns 16 kHz mono WAV audio.
func (c *TTSClient) Synthesize(ctx context.Context, text, locale, voice string) ([]byte, error) {
	ssml, err := buildSSML(text, locale, voice)
	if err != nil {
		return nil, fmt.Errorf("failed to build ssml: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	if c.region != "" {
		req.Header.Set("Ocp-Apim-Subscription-Region", c.region)
	}
	req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("User-Agent", "voiceorder-server")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "TTS request failed", err)
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("TTS error %d: %s", resp.StatusCode, string(respBody))
		c.logger.Error(ctx, "TTS request rejected", err)
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

func buildSSML(text, locale, voice string) ([]byte, error) {
	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return nil, err
	}
	var attrLocale, attrVoice bytes.Buffer
	if err := xml.EscapeText(&attrLocale, []byte(locale)); err != nil {
		return nil, err
	}
	if err := xml.EscapeText(&attrVoice, []byte(voice)); err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(
		`<speak version='1.0' xml:lang='%s'><voice name='%s'>%s</voice></speak>`,
		attrLocale.String(), attrVoice.String(), escaped.String(),
	)), nil
}
