package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/surveytools/srpt/internal/mcp"
)

// Serve flags
var (
	serveTools   []string      // --tools to expose
	serveTimeout time.Duration // --timeout inactivity shutdown
)

// serveCmd starts the MCP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Start an MCP (Model Context Protocol) server exposing report generation.

AI agents can call the report tools directly instead of shelling out to the
CLI. Each tool takes the path to a decoded survey JSON document and returns
the assembled report.

Tools:
  srpt_results      Generate the results-table report
  srpt_appendices   Generate the text-response appendix report
  srpt_logic        Generate the survey logic report
  srpt_check        Summarize unprocessable questions

Examples:
  srpt serve
  srpt serve --tools srpt_results,srpt_check
  srpt serve --timeout 5m`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringSliceVar(&serveTools, "tools", nil, "Tools to expose (default: all)")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 0, "Exit after this period of inactivity (0 = never)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	server, err := mcp.New(mcp.Config{
		Tools:   serveTools,
		Timeout: serveTimeout,
		Options: cfg.ReportOptions(),
	})
	if err != nil {
		return fmt.Errorf("start MCP server: %w", err)
	}

	return server.ServeStdio()
}
