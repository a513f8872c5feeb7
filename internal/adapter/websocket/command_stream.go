package websocket

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/adapter/ai/gemini"
	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/observability/telemetry"
	"github.com/seu-repo/acessa/internal/ports"
)

// CommandStreamHandler atende o canal interativo do aplicativo: frames de
// texto são comandos a interpretar, frames binários são áudio PCM16
// encaminhado à Gemini Live API quando ela está configurada.
type CommandStreamHandler struct {
	assistant ports.AssistantService
	live      *gemini.LiveClient
	logger    *zap.Logger
}

func NewCommandStreamHandler(assistant ports.AssistantService, live *gemini.LiveClient, logger *zap.Logger) *CommandStreamHandler {
	return &CommandStreamHandler{
		assistant: assistant,
		live:      live,
		logger:    logger,
	}
}

type streamCommand struct {
	Utterance string `json:"utterance"`
	Context   string `json:"context"`
	ContentID string `json:"content_id,omitempty"`
}

type streamError struct {
	Error string `json:"error"`
}

// HandleCommandStream gerencia uma sessão de comandos em tempo real
func (h *CommandStreamHandler) HandleCommandStream(c *websocket.Conn) {
	userID, _ := c.Locals("user_id").(string)

	telemetry.ActiveStreamSessions.Inc()
	defer telemetry.ActiveStreamSessions.Dec()

	ctx := context.Background()
	liveConnected := false
	defer func() {
		if liveConnected {
			h.live.Close()
		}
	}()

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			break
		}

		switch messageType {
		case websocket.TextMessage:
			h.handleCommand(ctx, c, userID, data)

		case websocket.BinaryMessage:
			if h.live == nil {
				h.writeJSON(c, streamError{Error: "voice streaming is not configured"})
				continue
			}
			if !liveConnected {
				if err := h.live.ConnectVoiceStream(ctx); err != nil {
					h.logger.Error("Erro ao conectar com a Live API", zap.Error(err))
					h.writeJSON(c, streamError{Error: "voice streaming unavailable"})
					continue
				}
				liveConnected = true
			}
			h.relayAudio(ctx, c, data)
		}
	}
}

func (h *CommandStreamHandler) handleCommand(ctx context.Context, c *websocket.Conn, userID string, data []byte) {
	var cmd streamCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		h.writeJSON(c, streamError{Error: "invalid command frame"})
		return
	}

	response, err := h.assistant.Interpret(ctx, domain.CommandRequest{
		Utterance: cmd.Utterance,
		Context:   domain.CommandContext(cmd.Context),
		ContentID: cmd.ContentID,
		UserID:    userID,
	})
	if err != nil {
		h.writeJSON(c, streamError{Error: err.Error()})
		return
	}

	h.writeJSON(c, response)
}

func (h *CommandStreamHandler) relayAudio(ctx context.Context, c *websocket.Conn, audio []byte) {
	if err := h.live.SendAudioChunk(audio); err != nil {
		h.logger.Error("Erro ao enviar áudio para a Live API", zap.Error(err))
		return
	}

	response, err := h.live.ReceiveResponse(ctx)
	if err != nil {
		h.logger.Error("Erro ao receber resposta da Live API", zap.Error(err))
		return
	}

	for _, part := range response.ServerContent.ModelTurn.Parts {
		if part.Text != "" {
			h.writeJSON(c, map[string]string{"speech_text": part.Text})
		}
		if part.InlineData.Data != "" {
			h.writeJSON(c, map[string]string{
				"audio":     part.InlineData.Data,
				"mime_type": part.InlineData.MimeType,
			})
		}
	}
}

func (h *CommandStreamHandler) writeJSON(c *websocket.Conn, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Warn("Erro ao enviar frame para o cliente", zap.Error(err))
	}
}

// SetupCommandStreamRoutes registra a rota de WebSocket do assistente
func SetupCommandStreamRoutes(app *fiber.App, handler *CommandStreamHandler) {
	app.Use("/ws/commands", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/commands", websocket.New(handler.HandleCommandStream))
}
