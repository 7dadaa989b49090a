package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voiceorder-server/internal/callsession"
	"voiceorder-server/internal/clients/callautomation"
	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/voicecall/events"
)

var (
	ErrMissingField    = errors.New("event is missing a required field")
	ErrSessionNotFound = errors.New("no session for call")
)

const (
	repeatPrompt  = "Sorry, I didn't hear you. Can you please repeat that?"
	goodbyePrompt = "It seems we are having trouble hearing you. Ending the call now. Thank you!"
	defaultLocale = "en-US"
)

type CallControl interface {
	Answer(ctx context.Context, incomingCallContext, callbackURL string) (string, error)
	Play(ctx context.Context, callConnectionID, audioURL string) error
	StartRecognition(ctx context.Context, callConnectionID string, opts callautomation.RecognizeOptions) error
	HangUp(ctx context.Context, callConnectionID string) error
}

type SpeechBridge interface {
	Synthesize(ctx context.Context, callID, text, locale string) (string, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
	DeleteAudio(ctx context.Context, callID string) error
}

type AgentBridge interface {
	CreateSession(ctx context.Context) (string, error)
	Send(ctx context.Context, handle, text string) (string, error)
	DeleteSession(ctx context.Context, handle string) error
}

type SessionStore interface {
	Get(ctx context.Context, callID string) (callsession.CallSession, bool, error)
	GetOrCreate(ctx context.Context, callID string) (callsession.CallSession, error)
	Save(ctx context.Context, session callsession.CallSession) error
	Remove(ctx context.Context, callID string) error
}

type Config struct {
	CallbackURL string
	// TargetRawID is used for recognition when the caller's id was not on the IncomingCall event.
	TargetRawID        string
	WelcomePromptURL   string
	OutboundTimeout    time.Duration
	SilenceHangupDelay time.Duration
}

// Result counts what happened to the events of one delivery.
type Result struct {
	Handled int
	Skipped int
	Failed  int
}

type CallEventProcessor struct {
	calls    CallControl
	speech   SpeechBridge
	agent    AgentBridge
	sessions SessionStore
	locks    *callsession.Locks
	cfg      Config
	logger   *observability.Logger
}

func New(calls CallControl, speech SpeechBridge, agent AgentBridge, sessions SessionStore, cfg Config, logger *observability.Logger) *CallEventProcessor {
	return &CallEventProcessor{
		calls:    calls,
		speech:   speech,
		agent:    agent,
		sessions: sessions,
		locks:    callsession.NewLocks(),
		cfg:      cfg,
		logger:   logger,
	}
}

// ProcessEvents handles the events of one delivery in order. A failing event is
// logged and never stops the ones after it. The caller's cancellation does not
// reach the event handlers; every outbound call carries its own timeout instead.
func (p *CallEventProcessor) ProcessEvents(ctx context.Context, evts []events.Event) Result {
	ctx = context.WithoutCancel(ctx)

	var res Result
	for i, ev := range evts {
		evCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: ev.Kind.String()},
			observability.Field{Key: "event_index", Value: i},
		)
		if ev.CallConnectionID != "" {
			evCtx = observability.WithFields(evCtx, observability.Field{Key: "call_connection_id", Value: ev.CallConnectionID})
		}

		err := p.processEvent(evCtx, ev)
		switch {
		case err == nil:
			res.Handled++
		case errors.Is(err, ErrMissingField), errors.Is(err, ErrSessionNotFound):
			p.logger.WarnWithError(evCtx, "skipping event", err)
			res.Skipped++
		default:
			p.logger.Error(evCtx, "failed to process event", err)
			res.Failed++
		}
	}
	return res
}

func (p *CallEventProcessor) processEvent(ctx context.Context, ev events.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", ev.Kind, r)
		}
	}()

	if ev.Malformed {
		return fmt.Errorf("%w: undecodable event", ErrMissingField)
	}

	switch ev.Kind {
	case events.KindIncomingCall:
		return p.handleIncomingCall(ctx, ev)
	case events.KindRecognizeCompleted, events.KindRecognizeFailed:
		return p.withCallLock(ctx, ev, p.handleRecognition)
	case events.KindPlayCompleted, events.KindPlayFailed:
		return p.withCallLock(ctx, ev, p.handlePlayFinished)
	case events.KindCallDisconnected:
		return p.withCallLock(ctx, ev, p.handleDisconnected)
	case events.KindAnswerFailed:
		p.handleAnswerFailed(ctx, ev)
		return nil
	case events.KindCallConnected, events.KindParticipantsUpdated:
		p.logger.Debug(ctx, "acknowledged call event")
		return nil
	default:
		p.logger.Info(ctx, fmt.Sprintf("ignoring unhandled event type %q", ev.Type))
		return nil
	}
}

// withCallLock serializes every event of one call so session read-modify-write
// cycles never interleave.
func (p *CallEventProcessor) withCallLock(ctx context.Context, ev events.Event, fn func(context.Context, events.Event) error) error {
	if ev.CallConnectionID == "" {
		return fmt.Errorf("%w: callConnectionId", ErrMissingField)
	}
	release, err := p.locks.Acquire(ctx, ev.CallConnectionID)
	if err != nil {
		return fmt.Errorf("failed to lock call: %w", err)
	}
	defer release()
	return fn(ctx, ev)
}

func (p *CallEventProcessor) outbound(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.OutboundTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.OutboundTimeout)
}

func (p *CallEventProcessor) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
