package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/talentsift/resume-extract/internal/config"
	"github.com/talentsift/resume-extract/internal/docs"
	"github.com/talentsift/resume-extract/internal/extract"
	"github.com/talentsift/resume-extract/internal/mcp"
	"github.com/talentsift/resume-extract/internal/nlp"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the execution mode.
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		if !cfg.IsDebug() {
			log.SetOutput(io.Discard)
		}
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// runCLIMode extracts a single resume file and prints the fields.
func runCLIMode(cfg *config.Config, extractor *extract.Service) {
	fields := extractor.ExtractFile(cfg.File)
	fmt.Print(mcp.FormatFields(fields))
}

// runServerMode handles MCP server execution with signal handling.
func runServerMode(ctx context.Context, cancel context.CancelFunc, server *mcp.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Run(ctx)
	}()

	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		log.Println("Initiating graceful shutdown...")
		cancel()

		if err := <-serverErrCh; err != nil {
			log.Printf("Server shutdown with error: %v", err)
			os.Exit(1)
		}

	case err := <-serverErrCh:
		if err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}

	log.Println("Server stopped successfully")
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	// One-time initialization of shared read-only state: the skill
	// vocabulary and the annotation models.
	vocab, err := extract.LoadVocabulary(cfg.SkillsFile)
	if err != nil {
		log.Fatalf("Failed to load skill vocabulary: %v", err)
	}
	annotator := nlp.NewProseAnnotator()

	decoder := docs.NewService(cfg.MaxFileSize)
	extractor := extract.NewService(decoder, annotator, vocab, cfg.Region)

	if cfg.IsCLIMode() {
		runCLIMode(cfg, extractor)
		return
	}

	server, err := mcp.NewServer(cfg, extractor, decoder, vocab)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runServerMode(ctx, cancel, server)
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("Resume Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
