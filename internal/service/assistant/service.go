package assistant

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/adapter/queue"
	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/infrastructure/circuitbreaker"
	"github.com/seu-repo/acessa/internal/observability/telemetry"
	"github.com/seu-repo/acessa/internal/ports"
)

// Service is the command interpretation pipeline: normalize, classify,
// extract, route, then compose. The AI provider is only consulted when the
// deterministic router resolves to "unknown", and its failures never reach
// the caller.
type Service struct {
	router    *Router
	ai        ports.AIProvider
	aiBreaker *circuitbreaker.CircuitBreaker
	mq        queue.MessageQueue
	log       *zap.Logger
}

func NewService(
	router *Router,
	ai ports.AIProvider,
	mq queue.MessageQueue,
	log *zap.Logger,
) *Service {
	return &Service{
		router: router,
		ai:     ai,
		aiBreaker: circuitbreaker.New(circuitbreaker.Settings{
			Name:             "ai-provider",
			FailureThreshold: 3,
			Timeout:          30 * time.Second,
		}, log),
		mq:  mq,
		log: log,
	}
}

// Interpret classifies and routes one command. The context in the request
// selects the decision table; routing errors (missing content id, unknown
// content) propagate, everything else resolves to a normal response.
func (s *Service) Interpret(ctx context.Context, req domain.CommandRequest) (*domain.CommandResponse, error) {
	start := time.Now()

	normalized := Normalize(req.Utterance)
	intent := ClassifyIntent(normalized)
	entities := ExtractEntities(normalized)

	resp, err := s.router.Route(ctx, req, intent, entities)
	if err != nil {
		return nil, err
	}

	if resp.Action == ActionUnknown && s.ai != nil {
		if aiResp := s.consultAI(ctx, req); aiResp != nil {
			resp = aiResp
		}
	}

	resp = compose(resp, intent, req.Context)

	telemetry.CommandsTotal.WithLabelValues(string(intent.Name), string(req.Context)).Inc()
	telemetry.CommandLatency.Observe(time.Since(start).Seconds())

	s.publishInterpreted(req, intent, resp)

	return resp, nil
}

// consultAI asks the provider for a free-form answer to an unrecognized
// command. Any failure, including an open circuit, returns nil so the caller
// keeps the deterministic unknown response.
func (s *Service) consultAI(ctx context.Context, req domain.CommandRequest) *domain.CommandResponse {
	result, err := s.aiBreaker.ExecuteCtx(ctx, func(ctx context.Context) (interface{}, error) {
		return s.ai.Complete(ctx, req.Utterance, req.Context)
	})
	if err != nil {
		telemetry.AIFallbacksTotal.WithLabelValues("error").Inc()
		s.log.Warn("AI fallback failed, keeping deterministic response",
			zap.String("context", string(req.Context)),
			zap.Error(err),
		)
		return nil
	}

	aiResult, ok := result.(*domain.AIResult)
	if !ok || aiResult == nil || strings.TrimSpace(aiResult.Response) == "" {
		telemetry.AIFallbacksTotal.WithLabelValues("empty").Inc()
		return nil
	}

	telemetry.AIFallbacksTotal.WithLabelValues("success").Inc()

	action := ActionAssistant
	if aiResult.Action != "" {
		action = aiResult.Action
	}
	return &domain.CommandResponse{
		Action: action,
		Text:   aiResult.Response,
		Speech: aiResult.Response,
		Data: domain.AssistantData{
			Response:  aiResult.Response,
			FollowUps: aiResult.FollowUpQuestions,
		},
	}
}

type interpretedEvent struct {
	UserID     string  `json:"user_id,omitempty"`
	Context    string  `json:"context"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Action     string  `json:"action"`
}

// publishInterpreted emits the command.interpreted event. Publishing is
// best-effort; a broker outage must not fail the command.
func (s *Service) publishInterpreted(req domain.CommandRequest, intent domain.IntentResult, resp *domain.CommandResponse) {
	if s.mq == nil {
		return
	}

	payload, err := json.Marshal(interpretedEvent{
		UserID:     req.UserID,
		Context:    string(req.Context),
		Intent:     string(intent.Name),
		Confidence: intent.Confidence,
		Action:     resp.Action,
	})
	if err != nil {
		return
	}

	if err := s.mq.Publish("command.interpreted", payload); err != nil {
		s.log.Warn("Failed to publish command.interpreted event", zap.Error(err))
	}
}
