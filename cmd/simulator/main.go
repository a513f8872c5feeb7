package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

var (
	serverURL   = flag.String("server", "ws://localhost:8080/ws/commands", "Command stream WebSocket URL")
	token       = flag.String("token", "", "Bearer token for authenticated streams")
	cmdContext  = flag.String("context", "search", "Initial command context (search/player/details/navigation)")
	contentID   = flag.String("content-id", "", "Content ID for player/details contexts")
	script      = flag.String("script", "", "Path to a script file with one utterance per line")
	interactive = flag.Bool("interactive", false, "Enable interactive mode")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// Setup logger
	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	config := &SimulatorConfig{
		ServerURL: *serverURL,
		Token:     *token,
		Context:   *cmdContext,
		ContentID: *contentID,
	}

	simulator := NewSimulator(config, logger)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down simulator...")
		simulator.Stop()
		os.Exit(0)
	}()

	if err := simulator.Connect(); err != nil {
		logger.Fatal("Failed to connect to server", zap.Error(err))
	}

	switch {
	case *script != "":
		if err := simulator.ReplayScript(*script); err != nil {
			logger.Fatal("Script replay failed", zap.Error(err))
		}
		simulator.Stop()
	case *interactive:
		runInteractiveMode(simulator)
	default:
		fmt.Println("Nothing to do: pass -script or -interactive")
	}
}

func runInteractiveMode(sim *Simulator) {
	fmt.Println("\nACESSA Command Simulator - Interactive Mode")
	fmt.Println("===========================================")
	fmt.Println("Commands:")
	fmt.Println("  say <utterance>      - Send an utterance in the current context")
	fmt.Println("  context <name>       - Switch context (search/player/details/navigation)")
	fmt.Println("  content <id>         - Set the content ID for player/details")
	fmt.Println("  quit                 - Exit simulator")
	fmt.Println("")

	sim.RunInteractive()
}
