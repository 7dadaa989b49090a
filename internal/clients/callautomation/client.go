// Package callautomation is a thin REST client for the call-automation service:
// answering calls, playing audio, starting speech recognition and hanging up.
package callautomation

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voiceorder-server/internal/observability"
)

var ErrCallNotFound = errors.New("call connection not found")

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("call automation returned %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	Endpoint   string
	AccessKey  string
	APIVersion string
	// CognitiveServicesEndpoint is attached to answered calls so recognition can run.
	CognitiveServicesEndpoint string
	Timeout                   time.Duration
}

type Client struct {
	endpoint   *url.URL
	key        []byte
	apiVersion string
	cognitive  string
	httpClient *http.Client
	logger     *observability.Logger
	now        func() time.Time
}

func NewClient(cfg Config, logger *observability.Logger) (*Client, error) {
	endpoint, err := url.Parse(strings.TrimSuffix(cfg.Endpoint, "/"))
	if err != nil || endpoint.Host == "" {
		return nil, fmt.Errorf("invalid call automation endpoint %q", cfg.Endpoint)
	}
	key, err := base64.StdEncoding.DecodeString(cfg.AccessKey)
	if err != nil {
		return nil, fmt.Errorf("call automation access key is not base64: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		key:        key,
		apiVersion: cfg.APIVersion,
		cognitive:  cfg.CognitiveServicesEndpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}, nil
}

type fileSource struct {
	URI string `json:"uri"`
}

type playSource struct {
	Kind string     `json:"kind"`
	File fileSource `json:"file"`
}

func newFileSource(uri string) *playSource {
	return &playSource{Kind: "file", File: fileSource{URI: uri}}
}

type callIntelligenceOptions struct {
	CognitiveServicesEndpoint string `json:"cognitiveServicesEndpoint"`
}

type answerRequest struct {
	IncomingCallContext     string                   `json:"incomingCallContext"`
	CallbackURI             string                   `json:"callbackUri"`
	CallIntelligenceOptions *callIntelligenceOptions `json:"callIntelligenceOptions,omitempty"`
}

type answerResponse struct {
	CallConnectionID string `json:"callConnectionId"`
}

// Answer accepts an incoming call and returns its call connection id.
func (c *Client) Answer(ctx context.Context, incomingCallContext, callbackURL string) (string, error) {
	req := answerRequest{IncomingCallContext: incomingCallContext, CallbackURI: callbackURL}
	if c.cognitive != "" {
		req.CallIntelligenceOptions = &callIntelligenceOptions{CognitiveServicesEndpoint: c.cognitive}
	}

	var resp answerResponse
	if err := c.post(ctx, "/calling/callConnections:answer", req, &resp); err != nil {
		c.logger.Error(ctx, "failed to answer call", err)
		return "", fmt.Errorf("failed to answer call: %w", err)
	}
	if resp.CallConnectionID == "" {
		return "", errors.New("answer response carried no call connection id")
	}
	return resp.CallConnectionID, nil
}

type playOptions struct {
	Loop bool `json:"loop"`
}

type playRequest struct {
	PlaySources []*playSource `json:"playSources"`
	PlayOptions playOptions   `json:"playOptions"`
}

// Play plays the audio file to every participant once.
func (c *Client) Play(ctx context.Context, callConnectionID, audioURL string) error {
	req := playRequest{
		PlaySources: []*playSource{newFileSource(audioURL)},
		PlayOptions: playOptions{Loop: false},
	}
	if err := c.post(ctx, callPath(callConnectionID, "play"), req, nil); err != nil {
		c.logger.Error(ctx, "failed to play audio", err)
		return fmt.Errorf("failed to play audio: %w", err)
	}
	return nil
}

// RecognizeOptions configures one speech recognition turn.
type RecognizeOptions struct {
	TargetRawID    string
	Locale         string
	PromptURL      string
	InitialSilence time.Duration
}

type targetParticipant struct {
	RawID string `json:"rawId"`
}

type recognizeOptions struct {
	InterruptPrompt                bool               `json:"interruptPrompt"`
	InitialSilenceTimeoutInSeconds int                `json:"initialSilenceTimeoutInSeconds"`
	TargetParticipant              *targetParticipant `json:"targetParticipant,omitempty"`
	SpeechLanguage                 string             `json:"speechLanguage,omitempty"`
}

type recognizeRequest struct {
	RecognizeInputType          string           `json:"recognizeInputType"`
	PlayPrompt                  *playSource      `json:"playPrompt,omitempty"`
	InterruptCallMediaOperation bool             `json:"interruptCallMediaOperation"`
	RecognizeOptions            recognizeOptions `json:"recognizeOptions"`
}

// StartRecognition listens for one utterance from the target participant.
func (c *Client) StartRecognition(ctx context.Context, callConnectionID string, opts RecognizeOptions) error {
	silence := opts.InitialSilence
	if silence <= 0 {
		silence = 5 * time.Second
	}
	req := recognizeRequest{
		RecognizeInputType:          "speech",
		InterruptCallMediaOperation: true,
		RecognizeOptions: recognizeOptions{
			InterruptPrompt:                true,
			InitialSilenceTimeoutInSeconds: int(silence / time.Second),
			SpeechLanguage:                 opts.Locale,
		},
	}
	if opts.TargetRawID != "" {
		req.RecognizeOptions.TargetParticipant = &targetParticipant{RawID: opts.TargetRawID}
	}
	if opts.PromptURL != "" {
		req.PlayPrompt = newFileSource(opts.PromptURL)
	}

	if err := c.post(ctx, callPath(callConnectionID, "recognize"), req, nil); err != nil {
		c.logger.Error(ctx, "failed to start recognition", err)
		return fmt.Errorf("failed to start recognition: %w", err)
	}
	return nil
}

// HangUp terminates the call for every participant.
func (c *Client) HangUp(ctx context.Context, callConnectionID string) error {
	if err := c.post(ctx, callPath(callConnectionID, "terminate"), struct{}{}, nil); err != nil {
		c.logger.Error(ctx, "failed to hang up call", err)
		return fmt.Errorf("failed to hang up call: %w", err)
	}
	return nil
}

func callPath(callConnectionID, action string) string {
	return "/calling/callConnections/" + callConnectionID + ":" + action
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	u := *c.endpoint
	u.Path = u.Path + path
	q := url.Values{}
	q.Set("api-version", c.apiVersion)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.sign(req, payload)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call automation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrCallNotFound, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)})
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// sign applies HMAC-SHA256 request authentication with the access key.
func (c *Client) sign(req *http.Request, payload []byte) {
	hash := sha256.Sum256(payload)
	contentHash := base64.StdEncoding.EncodeToString(hash[:])
	date := c.now().UTC().Format(http.TimeFormat)
	host := req.URL.Host

	stringToSign := req.Method + "\n" + req.URL.RequestURI() + "\n" + date + ";" + host + ";" + contentHash
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(stringToSign))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req.Header.Set("x-ms-date", date)
	req.Header.Set("x-ms-content-sha256", contentHash)
	req.Header.Set("Authorization", "HMAC-SHA256 SignedHeaders=x-ms-date;host;x-ms-content-sha256&Signature="+signature)
}
