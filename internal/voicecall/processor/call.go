package processor

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

func (p *CallEventProcessor) handleIncomingCall(ctx context.Context, ev events.Event) error {
	if ev.IncomingCallContext == "" {
		return fmt.Errorf("%w: incomingCallContext", ErrMissingField)
	}

	octx, cancel := p.outbound(ctx)
	callID, err := p.calls.Answer(octx, ev.IncomingCallContext, p.cfg.CallbackURL)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to answer call: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_connection_id", Value: callID})
	p.logger.Info(ctx, "answered incoming call")

	release, err := p.locks.Acquire(ctx, callID)
	if err != nil {
		return fmt.Errorf("failed to lock call: %w", err)
	}
	defer release()

	session, err := p.sessions.GetOrCreate(ctx, callID)
	if err != nil {
		return fmt.Errorf("failed to create call session: %w", err)
	}
	session.CallerRawID = ev.CallerRawID

	if err := p.ensureAgentSession(ctx, &session); err != nil {
		// The first utterance retries the creation.
		p.logger.WarnWithError(ctx, "call answered without an agent session", err)
	}
	if err := p.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save call session: %w", err)
	}

	return p.listen(ctx, session, p.cfg.WelcomePromptURL)
}

func (p *CallEventProcessor) handleRecognition(ctx context.Context, ev events.Event) error {
	session, ok, err := p.sessions.Get(ctx, ev.CallConnectionID)
	if err != nil {
		return fmt.Errorf("failed to load call session: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, ev.CallConnectionID)
	}

	if ev.Speech == "" {
		return p.handleSilence(ctx, session)
	}
	return p.handleUtterance(ctx, session, ev.Speech)
}

func (p *CallEventProcessor) handleSilence(ctx context.Context, session callsession.CallSession) error {
	session.SilenceCount++
	ctx = observability.WithFields(ctx, observability.Field{Key: "silence_count", Value: session.SilenceCount})
	if err := p.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save call session: %w", err)
	}

	if session.SilenceCount == 1 {
		p.logger.Info(ctx, "no speech recognized, asking caller to repeat")
		if err := p.say(ctx, session, repeatPrompt, defaultLocale); err != nil {
			return p.resumeAfter(ctx, session, err)
		}
		return nil
	}

	p.logger.Info(ctx, "caller stayed silent, ending call")
	if err := p.say(ctx, session, goodbyePrompt, defaultLocale); err != nil {
		p.logger.WarnWithError(ctx, "failed to play goodbye prompt", err)
	}
	p.sleep(ctx, p.cfg.SilenceHangupDelay)

	octx, cancel := p.outbound(ctx)
	err := p.calls.HangUp(octx, session.CallConnectionID)
	cancel()
	if err != nil {
		p.logger.Error(ctx, "failed to hang up call", err)
	}

	p.release(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to hang up call: %w", err)
	}
	return nil
}

func (p *CallEventProcessor) handleUtterance(ctx context.Context, session callsession.CallSession, speech string) error {
	session.SilenceCount = 0

	if !session.HasLanguage() {
		octx, cancel := p.outbound(ctx)
		locale, err := p.speech.DetectLanguage(octx, speech)
		cancel()
		if err != nil {
			p.logger.WarnWithError(ctx, "language detection failed, using default", err)
			locale = defaultLocale
		}
		session.Language = locale
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "language", Value: locale}), "detected caller language")
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "language", Value: session.Language})

	agentErr := p.ensureAgentSession(ctx, &session)
	if err := p.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save call session: %w", err)
	}
	if agentErr != nil {
		return p.resumeAfter(ctx, session, agentErr)
	}

	start := time.Now()
	octx, cancel := p.outbound(ctx)
	reply, err := p.agent.Send(octx, session.AgentSessionHandle, speech)
	cancel()
	if err != nil {
		return p.resumeAfter(ctx, session, fmt.Errorf("agent turn failed: %w", err))
	}
	p.logger.Metrics(ctx, observability.MetricField{Key: "agent_turn_ms", Value: time.Since(start).Milliseconds()})

	if err := p.say(ctx, session, reply, session.Language); err != nil {
		return p.resumeAfter(ctx, session, err)
	}
	return nil
}

func (p *CallEventProcessor) handlePlayFinished(ctx context.Context, ev events.Event) error {
	session, ok, err := p.sessions.Get(ctx, ev.CallConnectionID)
	if err != nil {
		return fmt.Errorf("failed to load call session: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, ev.CallConnectionID)
	}
	if ev.Kind == events.KindPlayFailed && ev.Result != nil {
		p.logger.Warn(ctx, fmt.Sprintf("play failed (%d/%d): %s", ev.Result.Code, ev.Result.SubCode, ev.Result.Message))
	}
	return p.listen(ctx, session, "")
}

func (p *CallEventProcessor) handleDisconnected(ctx context.Context, ev events.Event) error {
	session, ok, err := p.sessions.Get(ctx, ev.CallConnectionID)
	if err != nil {
		return fmt.Errorf("failed to load call session: %w", err)
	}
	if !ok {
		p.logger.Debug(ctx, "call already released")
		return nil
	}
	p.release(ctx, session)
	p.logger.Info(ctx, "call disconnected, session released")
	return nil
}

func (p *CallEventProcessor) handleAnswerFailed(ctx context.Context, ev events.Event) {
	err := errors.New("answer failed")
	if ev.Result != nil {
		err = fmt.Errorf("answer failed (%d/%d): %s", ev.Result.Code, ev.Result.SubCode, ev.Result.Message)
	}
	p.logger.Error(ctx, "call could not be answered", err)
}

func (p *CallEventProcessor) ensureAgentSession(ctx context.Context, session *callsession.CallSession) error {
	if session.AgentSessionHandle != "" {
		return nil
	}
	octx, cancel := p.outbound(ctx)
	defer cancel()
	handle, err := p.agent.CreateSession(octx)
	if err != nil {
		return fmt.Errorf("failed to create agent session: %w", err)
	}
	session.AgentSessionHandle = handle
	return nil
}

// say synthesizes text and plays it to everyone on the call.
func (p *CallEventProcessor) say(ctx context.Context, session callsession.CallSession, text, locale string) error {
	octx, cancel := p.outbound(ctx)
	url, err := p.speech.Synthesize(octx, session.CallConnectionID, text, locale)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to synthesize reply: %w", err)
	}

	octx, cancel = p.outbound(ctx)
	defer cancel()
	if err := p.calls.Play(octx, session.CallConnectionID, url); err != nil {
		return fmt.Errorf("failed to play reply: %w", err)
	}
	return nil
}

// listen starts a recognition turn in the session's language, optionally
// preceded by a prompt.
func (p *CallEventProcessor) listen(ctx context.Context, session callsession.CallSession, promptURL string) error {
	locale := session.Language
	if locale == "" {
		locale = defaultLocale
	}
	target := session.CallerRawID
	if target == "" {
		target = p.cfg.TargetRawID
	}

	octx, cancel := p.outbound(ctx)
	defer cancel()
	err := p.calls.StartRecognition(octx, session.CallConnectionID, callautomation.RecognizeOptions{
		TargetRawID: target,
		Locale:      locale,
		PromptURL:   promptURL,
	})
	if err != nil {
		return fmt.Errorf("failed to start recognition: %w", err)
	}
	return nil
}

// resumeAfter puts the call back into listening after a failed turn so the caller
// is not left in dead air. The turn's error is still returned.
func (p *CallEventProcessor) resumeAfter(ctx context.Context, session callsession.CallSession, cause error) error {
	if err := p.listen(ctx, session, ""); err != nil {
		p.logger.WarnWithError(ctx, "failed to resume listening", err)
	}
	return cause
}

// release drops everything the call owns. Each step is best-effort.
func (p *CallEventProcessor) release(ctx context.Context, session callsession.CallSession) {
	if session.AgentSessionHandle != "" {
		octx, cancel := p.outbound(ctx)
		if err := p.agent.DeleteSession(octx, session.AgentSessionHandle); err != nil {
			p.logger.WarnWithError(ctx, "failed to delete agent session", err)
		}
		cancel()
	}

	octx, cancel := p.outbound(ctx)
	if err := p.speech.DeleteAudio(octx, session.CallConnectionID); err != nil {
		p.logger.WarnWithError(ctx, "failed to delete call audio", err)
	}
	cancel()

	if err := p.sessions.Remove(ctx, session.CallConnectionID); err != nil {
		p.logger.WarnWithError(ctx, "failed to remove call session", err)
	}
}
