package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/css-color-tools/internal/config"
	"github.com/ironsheep/css-color-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("csscolor-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("csscolor-mcp - MCP server for parsing and rendering CSS colors")
			fmt.Println()
			fmt.Println("Usage: csscolor-mcp [--config file.toml]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --config FILE    TOML settings file")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  " + config.EnvConfig + "=FILE             Settings file when --config is absent")
			fmt.Println("  " + config.EnvLogLevel + "=debug        Log level: debug, info, warn, error")
			fmt.Println("  " + config.EnvDefaultMode + "=dark      Branch used by light-dark()")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	configPath := flag.String("config", "", "TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csscolor-mcp: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is for MCP protocol.
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	logger.Info("starting", "server", server.ServerName, "version", Version, "commit", GitCommit, "built", BuildTime)

	srv := server.New(cfg, logger)
	srv.Version = Version
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
