// Package voice turns agent replies into audio the call can play and
// identifies the caller's language.
package voice

//go:generate go run go.uber.org/mock/mockgen@latest -source=bridge.go -destination=mocks_test.go -package=voice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/voice/audio"
)

const sampleRate = 16000

var ErrEmptyText = errors.New("text to synthesize is empty")

type Synthesizer interface {
	Synthesize(ctx context.Context, text, locale, voice string) ([]byte, error)
}

type LanguageDetector interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
}

type AudioStore interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, name string) error
}

type Bridge struct {
	tts      Synthesizer
	detector LanguageDetector
	audio    AudioStore
	logger   *observability.Logger
}

func NewBridge(tts Synthesizer, detector LanguageDetector, store AudioStore, logger *observability.Logger) *Bridge {
	return &Bridge{
		tts:      tts,
		detector: detector,
		audio:    store,
		logger:   logger,
	}
}

// AudioName is the single transient artifact kept per call. Every synthesis
// for the call overwrites it.
func AudioName(callID string) string {
	return fmt.Sprintf("session-%s.wav", callID)
}

// Synthesize speaks text with the voice for locale and returns a URL the
// call-media player can fetch.
func (b *Bridge) Synthesize(ctx context.Context, callID, text, locale string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	profile := ProfileFor(locale)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "locale", Value: profile.Locale},
		observability.Field{Key: "voice", Value: profile.Voice},
	)

	data, err := b.tts.Synthesize(ctx, text, profile.Locale, profile.Voice)
	if err != nil {
		b.logger.Error(ctx, "failed to synthesize speech", err)
		return "", fmt.Errorf("failed to synthesize speech: %w", err)
	}
	data = audio.EnsureWAV(data, sampleRate)

	url, err := b.audio.Upload(ctx, AudioName(callID), data, "audio/wav")
	if err != nil {
		b.logger.Error(ctx, "failed to upload synthesized audio", err)
		return "", fmt.Errorf("failed to upload synthesized audio: %w", err)
	}

	b.logger.Metrics(ctx,
		observability.MetricField{Key: "tts_bytes", Value: len(data)},
		observability.MetricField{Key: "tts_duration_ms", Value: audio.Duration(data, sampleRate).Milliseconds()},
	)
	return url, nil
}

// DetectLanguage returns the locale of the profile matching the language of text.
func (b *Bridge) DetectLanguage(ctx context.Context, text string) (string, error) {
	code, err := b.detector.DetectLanguage(ctx, text)
	if err != nil {
		b.logger.Error(ctx, "failed to detect language", err)
		return "", fmt.Errorf("failed to detect language: %w", err)
	}
	return ProfileFor(code).Locale, nil
}

// DeleteAudio removes the call's transient artifact.
func (b *Bridge) DeleteAudio(ctx context.Context, callID string) error {
	if err := b.audio.Delete(ctx, AudioName(callID)); err != nil {
		return fmt.Errorf("failed to delete call audio: %w", err)
	}
	return nil
}
