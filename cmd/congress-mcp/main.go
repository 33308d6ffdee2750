package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/congress-mcp/internal/common"
	"github.com/bobmcallan/congress-mcp/internal/config"
	"github.com/bobmcallan/congress-mcp/internal/congress"
	"github.com/bobmcallan/congress-mcp/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "", "Path to config file")
	port := flag.String("port", "", "HTTP port (overrides config)")
	showVersion := flag.Bool("version", false, "Print version information")
	flag.Parse()

	common.LoadVersionFromFile()

	if *showVersion {
		fmt.Printf("congress-mcp version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Auto-discover a config file when none was given. Binary-relative
	// paths are tried first so the config is found even when the working
	// directory differs from the binary location.
	path := *configFile
	if path == "" {
		for _, candidate := range configSearchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.ApplyFlagOverrides(cfg, *port)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Values can be set via a TOML config file, environment variables, or CLI flags.")
		fmt.Fprintln(os.Stderr, "See config/congress-mcp.toml for the expected format.")
		fmt.Fprintln(os.Stderr, "")
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	client := congress.NewClient(cfg.API, logger)
	router := mcp.NewRouter(client, logger)
	amendments := congress.NewAmendmentService(client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registered := mcp.RegisterResourceTools(mcpServer, router)
	registered += mcp.RegisterAmendmentTools(mcpServer, amendments)
	registered += mcp.RegisterUtilityTools(mcpServer, client)

	logger.Info().
		Int("tools", registered).
		Str("base_url", cfg.API.BaseURL).
		Msg("registered MCP tools")

	if *stdio {
		// Stdio transport reads stdin and writes stdout; logs stay on stderr.
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", cfg.Server.Port)

	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried first, with CWD fallbacks after.
func configSearchPaths() []string {
	candidates := []string{
		"congress-mcp.toml",
		"config/congress-mcp.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "congress-mcp.toml"),
		filepath.Join(binDir, "config", "congress-mcp.toml"),
	}
	return append(paths, candidates...)
}
