package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// SimulatorConfig holds the simulator configuration
type SimulatorConfig struct {
	ServerURL string
	Token     string
	Context   string
	ContentID string
}

// Simulator drives the command stream endpoint the way the mobile client
// does: it sends utterances and prints the structured responses.
type Simulator struct {
	config *SimulatorConfig
	conn   *websocket.Conn
	log    *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type commandFrame struct {
	Utterance string `json:"utterance"`
	Context   string `json:"context"`
	ContentID string `json:"content_id,omitempty"`
}

// NewSimulator creates a new command stream simulator
func NewSimulator(config *SimulatorConfig, log *zap.Logger) *Simulator {
	return &Simulator{
		config:   config,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Connect connects to the command stream endpoint
func (s *Simulator) Connect() error {
	header := http.Header{}
	if s.config.Token != "" {
		header.Set("Authorization", "Bearer "+s.config.Token)
	}

	conn, _, err := websocket.DefaultDialer.Dial(s.config.ServerURL, header)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	s.conn = conn
	s.log.Info("Connected to command stream",
		zap.String("url", s.config.ServerURL),
		zap.String("context", s.config.Context),
	)

	s.wg.Add(1)
	go s.readResponses()

	return nil
}

// Stop stops the simulator
func (s *Simulator) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.conn != nil {
			s.conn.Close()
		}
	})
	s.wg.Wait()
}

// readResponses prints every structured response from the server
func (s *Simulator) readResponses() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		default:
			_, message, err := s.conn.ReadMessage()
			if err != nil {
				select {
				case <-s.stopChan:
				default:
					s.log.Error("Read error", zap.Error(err))
				}
				return
			}
			s.printResponse(message)
		}
	}
}

func (s *Simulator) printResponse(data []byte) {
	var response struct {
		Error       string   `json:"error"`
		Action      string   `json:"action"`
		Text        string   `json:"text"`
		Speech      string   `json:"speech"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		fmt.Printf("<- %s\n", data)
		return
	}

	if response.Error != "" {
		fmt.Printf("<- error: %s\n", response.Error)
		return
	}

	fmt.Printf("<- [%s] %s\n", response.Action, response.Text)
	if response.Speech != "" && response.Speech != response.Text {
		fmt.Printf("   speech: %s\n", response.Speech)
	}
	if len(response.Suggestions) > 0 {
		fmt.Printf("   suggestions: %s\n", strings.Join(response.Suggestions, " | "))
	}
}

// SendUtterance sends one utterance in the current context
func (s *Simulator) SendUtterance(utterance string) error {
	frame := commandFrame{
		Utterance: utterance,
		Context:   s.config.Context,
		ContentID: s.config.ContentID,
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	fmt.Printf("-> [%s] %s\n", frame.Context, utterance)
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// ReplayScript sends utterances from a file, one per line. Lines starting
// with "#" are comments; "@context name" and "@content id" switch state.
func (s *Simulator) ReplayScript(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "@context ") {
			s.config.Context = strings.TrimSpace(strings.TrimPrefix(line, "@context "))
			continue
		}
		if strings.HasPrefix(line, "@content ") {
			s.config.ContentID = strings.TrimSpace(strings.TrimPrefix(line, "@content "))
			continue
		}

		if err := s.SendUtterance(line); err != nil {
			return err
		}

		// Give the server time to answer before the next utterance
		time.Sleep(200 * time.Millisecond)
	}

	// Let the last response arrive
	time.Sleep(500 * time.Millisecond)

	return scanner.Err()
}

// RunInteractive runs the simulator in interactive mode
func (s *Simulator) RunInteractive() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		parts := strings.SplitN(line, " ", 2)

		if len(parts) == 0 || parts[0] == "" {
			fmt.Print("> ")
			continue
		}

		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = strings.TrimSpace(parts[1])
		}

		switch cmd {
		case "say":
			if arg == "" {
				fmt.Println("Usage: say <utterance>")
			} else if err := s.SendUtterance(arg); err != nil {
				fmt.Printf("Send failed: %v\n", err)
			}

		case "context":
			if arg == "" {
				fmt.Printf("Current context: %s\n", s.config.Context)
			} else {
				s.config.Context = arg
				fmt.Printf("Context set to %s\n", arg)
			}

		case "content":
			if arg == "" {
				fmt.Printf("Current content ID: %s\n", s.config.ContentID)
			} else {
				s.config.ContentID = arg
				fmt.Printf("Content ID set to %s\n", arg)
			}

		case "quit", "exit":
			fmt.Println("Goodbye!")
			s.Stop()
			return

		default:
			// Bare text is treated as an utterance
			if err := s.SendUtterance(line); err != nil {
				fmt.Printf("Send failed: %v\n", err)
			}
		}

		// Small pause so responses interleave readably
		time.Sleep(200 * time.Millisecond)
		fmt.Print("> ")
	}
}
