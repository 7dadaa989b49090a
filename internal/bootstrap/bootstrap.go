package bootstrap

import (
	"context"
	"fmt"

	"voiceorder-server/internal/callsession"
	"voiceorder-server/internal/clients/agent"
	"voiceorder-server/internal/clients/audiostore"
	"voiceorder-server/internal/clients/callautomation"
	kafkaClient "voiceorder-server/internal/clients/kafka"
	"voiceorder-server/internal/clients/mail"
	redisClient "voiceorder-server/internal/clients/redis"
	"voiceorder-server/internal/clients/sms"
	"voiceorder-server/internal/clients/speech"
	"voiceorder-server/internal/config"
	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/store"
	"voiceorder-server/internal/voice"

	agentHandler "voiceorder-server/internal/agent/handler"
	agentProcessor "voiceorder-server/internal/agent/processor"
	menuHandler "voiceorder-server/internal/menu/handler"
	menuProcessor "voiceorder-server/internal/menu/processor"
	orderHandler "voiceorder-server/internal/orders/handler"
	orderProcessor "voiceorder-server/internal/orders/processor"
	voiceCallHandler "voiceorder-server/internal/voicecall/handler"
	voiceCallProcessor "voiceorder-server/internal/voicecall/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	VoiceCallHandler voiceCallHandler.Handler
	MenuHandler      menuHandler.Handler
	OrderHandler     orderHandler.Handler
	AgentHandler     agentHandler.Handler

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
	Gemini        *agent.GeminiClient
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Document store
	st, err := store.New(cfg.Database.ConnectionString(), store.Containers{
		Menu:   cfg.Database.MenuContainer,
		Orders: cfg.Database.OrderContainer,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.Store = &st
	if err := deps.Store.EnsureContainers(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to prepare document tables: %w", err)
	}

	agentClient, err := newAgentClient(ctx, cfg, deps, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	sessions, err := newSessionStore(ctx, cfg, deps, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	// Call control and speech
	callClient, err := callautomation.NewClient(callautomation.Config{
		Endpoint:                  cfg.CallAutomation.Endpoint,
		AccessKey:                 cfg.CallAutomation.AccessKey,
		APIVersion:                cfg.CallAutomation.APIVersion,
		CognitiveServicesEndpoint: cfg.CallAutomation.CognitiveServicesEndpoint,
		Timeout:                   cfg.Timing.OutboundTimeout,
	}, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create call automation client: %w", err)
	}

	audio, err := audiostore.New(ctx, audiostore.Config{
		Bucket:   cfg.AudioStore.Bucket,
		Region:   cfg.AudioStore.Region,
		Endpoint: cfg.AudioStore.Endpoint,
		Prefix:   cfg.AudioStore.Prefix,
		URLTTL:   cfg.AudioStore.URLTTL,

		AccessKeyID:     cfg.AudioStore.AccessKeyID,
		SecretAccessKey: cfg.AudioStore.SecretAccessKey,
	}, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create audio store: %w", err)
	}

	speechBridge := voice.NewBridge(
		speech.NewTTSClient(cfg.Speech.TTSEndpoint, cfg.Speech.TTSKey, cfg.Speech.TTSRegion, cfg.Timing.OutboundTimeout, logger),
		speech.NewTranslatorClient(cfg.Speech.TranslatorEndpoint, cfg.Speech.TranslatorKey, cfg.Speech.TranslatorRegion, cfg.Timing.OutboundTimeout, logger),
		audio,
		logger,
	)

	// Voice call dispatcher
	callProc := voiceCallProcessor.New(callClient, speechBridge, agentClient, sessions, voiceCallProcessor.Config{
		CallbackURL:        cfg.CallAutomation.CallbackURL,
		TargetRawID:        cfg.CallAutomation.TargetUserID,
		WelcomePromptURL:   cfg.CallAutomation.WelcomeAudioURL,
		OutboundTimeout:    cfg.Timing.OutboundTimeout,
		SilenceHangupDelay: cfg.Timing.SilenceHangupDelay,
	}, logger)
	deps.VoiceCallHandler = voiceCallHandler.New(callProc, logger)

	// Menu
	deps.MenuHandler = menuHandler.New(menuProcessor.New(deps.Store, logger), logger)

	// Orders
	notifier, err := newOrderNotifier(cfg, deps, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}
	deps.OrderHandler = orderHandler.New(orderProcessor.New(deps.Store, notifier, logger), logger)

	// Agent Q&A
	deps.AgentHandler = agentHandler.New(agentProcessor.New(agentClient, logger), logger)

	return deps, nil
}

func newAgentClient(ctx context.Context, cfg *config.Config, deps *Dependencies, logger *observability.Logger) (agent.Client, error) {
	switch cfg.Agent.Provider {
	case config.AgentProviderGemini:
		gemini, err := agent.NewGeminiClient(ctx, cfg.Agent.GeminiAPIKey, cfg.Agent.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini agent: %w", err)
		}
		deps.Gemini = gemini
		return gemini, nil
	default:
		return agent.NewAssistantsClient(agent.AssistantsConfig{
			APIKey:      cfg.Agent.APIKey,
			BaseURL:     cfg.Agent.Endpoint,
			AssistantID: cfg.Agent.AgentID,
			Timeout:     cfg.Timing.OutboundTimeout,
		}, logger), nil
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config, deps *Dependencies, logger *observability.Logger) (callsession.Store, error) {
	if cfg.Sessions.Backend != config.SessionBackendRedis {
		return callsession.NewMemoryStore(), nil
	}
	client, err := redisClient.NewClient(ctx, cfg.Sessions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.Redis = client
	return callsession.NewRedisStore(client.GetClient(), cfg.Sessions.TTL), nil
}

// newOrderNotifier leaves a channel's sender nil when it is not configured.
func newOrderNotifier(cfg *config.Config, deps *Dependencies, logger *observability.Logger) (*orderProcessor.ConfirmationNotifier, error) {
	n := cfg.Notifications

	var smsSender orderProcessor.SMSSender
	if n.SMSEnabled() {
		smsSender = sms.NewTwilioClient(n.TwilioAccountSID, n.TwilioAuthToken, n.TwilioFromNumber, logger)
	}

	var emailSender orderProcessor.EmailSender
	if n.EmailEnabled() {
		mailClient, err := mail.NewResendClient(n.ResendAPIKey, n.OrderEmailSender, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		emailSender = mailClient
	}

	var publisher orderProcessor.EventPublisher
	if n.EventsEnabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: n.KafkaBrokers,
			Topic:   n.OrderEventsTopic,
		}, logger)
		publisher = deps.KafkaProducer
	}

	return orderProcessor.NewConfirmationNotifier(smsSender, emailSender, publisher, cfg.Timing.OutboundTimeout, logger), nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close kafka producer", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close redis client", err)
		}
	}
	if d.Gemini != nil {
		if err := d.Gemini.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close gemini client", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close database", err)
		}
	}
}
