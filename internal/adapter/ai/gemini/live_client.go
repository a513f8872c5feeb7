package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// LiveClient é o gateway de voz bidirecional com a Gemini Live API. Ele
// transporta áudio do usuário e devolve fala sintetizada; a interpretação do
// comando em si continua no motor de regras.
type LiveClient struct {
	apiKey  string
	modelID string
	logger  *zap.Logger
	conn    *websocket.Conn
}

type VoiceConfig struct {
	Voice            string `json:"voice"`             // "Puck", "Charon", "Kore", "Fenrir", "Aoede"
	Language         string `json:"language"`          // "pt-BR"
	SpeechModel      string `json:"speech_model"`      // "gemini-2.0-flash-exp"
	ResponseModality string `json:"response_modality"` // "AUDIO"
}

func NewLiveClient(apiKey string, logger *zap.Logger) *LiveClient {
	return &LiveClient{
		apiKey:  apiKey,
		modelID: "gemini-2.0-flash-exp",
		logger:  logger,
	}
}

// ConnectVoiceStream estabelece conexão bidirecional com a Gemini Live API
func (c *LiveClient) ConnectVoiceStream(ctx context.Context) error {
	url := "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1alpha.GenerativeService.BidiGenerateContent"

	headers := http.Header{
		"Content-Type": []string{"application/json"},
	}

	conn, _, err := websocket.Dial(ctx, url+"?key="+c.apiKey, &websocket.DialOptions{
		HTTPHeader: headers,
	})
	if err != nil {
		return err
	}

	c.conn = conn

	// Enviar setup inicial
	setup := map[string]interface{}{
		"setup": map[string]interface{}{
			"model": "models/" + c.modelID,
			"generation_config": map[string]interface{}{
				"response_modalities": []string{"AUDIO"},
				"speech_config": map[string]interface{}{
					"voice_config": map[string]interface{}{
						"prebuilt_voice_config": map[string]string{
							"voice_name": "Aoede",
						},
					},
				},
			},
			"system_instruction": map[string]interface{}{
				"parts": []map[string]string{
					{
						"text": `Você é a voz do ACESSA, um catálogo de filmes e séries acessíveis.
                        Você ajuda pessoas cegas ou com baixa visão a:
                        - Buscar títulos por nome, gênero ou recurso de acessibilidade
                        - Controlar a reprodução (tocar, pausar, volume, legendas)
                        - Ouvir descrições e avaliações de um título
                        - Navegar entre as telas do aplicativo

                        Responda em frases curtas, adequadas para leitores de tela.
                        Fale em português brasileiro.`,
					},
				},
			},
		},
	}

	return c.send(setup)
}

// SendAudioChunk envia áudio PCM16 para o Gemini
func (c *LiveClient) SendAudioChunk(audioData []byte) error {
	msg := map[string]interface{}{
		"realtime_input": map[string]interface{}{
			"media_chunks": []map[string]string{
				{
					"mime_type": "audio/pcm",
					"data":      base64.StdEncoding.EncodeToString(audioData),
				},
			},
		},
	}

	return c.send(msg)
}

// ReceiveResponse recebe a resposta de voz do Gemini
func (c *LiveClient) ReceiveResponse(ctx context.Context) (*VoiceResponse, error) {
	_, data, err := c.conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	var response VoiceResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Close encerra a conexão com a Live API
func (c *LiveClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close(websocket.StatusNormalClosure, "session finished")
}

func (c *LiveClient) send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return c.conn.Write(context.Background(), websocket.MessageText, data)
}

type VoiceResponse struct {
	ServerContent struct {
		ModelTurn struct {
			Parts []struct {
				Text       string `json:"text,omitempty"`
				InlineData struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"` // Base64 audio
				} `json:"inlineData,omitempty"`
			} `json:"parts"`
		} `json:"modelTurn"`
		TurnComplete bool `json:"turnComplete"`
	} `json:"serverContent"`
}
