// Package cmd provides CLI commands for the Nova backend.
//
// Commands:
//   - serve: HTTP JSON API server for the chat frontend
//
// Signal handling and graceful shutdown are implemented via context
// cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
)

// Execute is the main entry point for the Nova backend.
func Execute() error {
	// Initialize logger once at entry point
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(os.Args) < 2 {
		return runServe()
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("Nova - AI chat backend")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  nova serve         Start the HTTP API server (default)")
	fmt.Println("  nova --version     Show version information")
	fmt.Println("  nova --help        Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY     Gemini API key; without it chat requests return 503")
	fmt.Println("  PORT               Listen port (default: 5000)")
	fmt.Println("  DEBUG              Optional: Enable debug logging")
}
