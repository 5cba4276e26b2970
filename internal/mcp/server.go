// Package mcp provides an MCP (Model Context Protocol) server for srpt.
// This allows AI agents to generate survey reports through MCP tools
// instead of CLI commands.
package mcp

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/surveytools/srpt/internal/output"
	"github.com/surveytools/srpt/internal/render"
	"github.com/surveytools/srpt/internal/report"
	"github.com/surveytools/srpt/internal/survey"
)

// Server wraps the MCP server with srpt-specific functionality
type Server struct {
	mcpServer    *server.MCPServer
	opts         report.Options
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration
type Config struct {
	Tools   []string       // Which tools to expose (empty = all)
	Timeout time.Duration  // Inactivity timeout (0 = no timeout)
	Options report.Options // Default report assembly options
}

// AllTools lists all available tools
var AllTools = []string{"srpt_results", "srpt_appendices", "srpt_logic", "srpt_check"}

// New creates a new MCP server for srpt
func New(cfg Config) (*Server, error) {
	mcpServer := server.NewMCPServer(
		"srpt",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		opts:         cfg.Options,
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = AllTools
	}

	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			return nil, fmt.Errorf("failed to register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(name string) error {
	switch name {
	case "srpt_results":
		return s.registerReportTool(name, report.ReportTypeResults,
			"Generate the results-table report: per-question descriptions and tabulated results as HTML.")
	case "srpt_appendices":
		return s.registerReportTool(name, report.ReportTypeAppendices,
			"Generate the text-response appendix report: verbatim answers and coded comments as HTML.")
	case "srpt_logic":
		return s.registerReportTool(name, report.ReportTypeLogic,
			"Generate the survey logic report: display and skip logic per question as HTML.")
	case "srpt_check":
		return s.registerCheckTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
}

// registerReportTool registers one of the three report-generation tools.
func (s *Server) registerReportTool(name string, rt report.ReportType, description string) error {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("survey",
			mcp.Required(),
			mcp.Description("Path to the decoded survey JSON document"),
		),
		mcp.WithBoolean("block_headers",
			mcp.Description("Include block headers in the results report (default: true)"),
		),
		mcp.WithNumber("threshold",
			mcp.Description("Coded-comment count threshold (default: 15)"),
		),
	)

	s.mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.handleReport(req, rt)
	})
	return nil
}

// registerCheckTool registers the srpt_check tool
func (s *Server) registerCheckTool() error {
	tool := mcp.NewTool("srpt_check",
		mcp.WithDescription("List the questions that could not be automatically processed."),
		mcp.WithString("survey",
			mcp.Required(),
			mcp.Description("Path to the decoded survey JSON document"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: text, yaml, or json (default: text)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleCheck)
	return nil
}

func (s *Server) handleReport(req mcp.CallToolRequest, rt report.ReportType) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, ok := args["survey"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("survey parameter is required"), nil
	}

	opts := s.opts
	if headers, ok := args["block_headers"].(bool); ok {
		opts.IncludeBlockHeaders = headers
	}
	if threshold, ok := args["threshold"].(float64); ok {
		opts.NThreshold = int(threshold)
	}

	sv, err := survey.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	gen := report.NewGenerator(render.NewHTML(), opts)
	result, err := gen.Generate(sv, rt)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, ok := args["survey"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("survey parameter is required"), nil
	}

	name, _ := args["format"].(string)
	if name == "" {
		name = "text"
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sv, err := survey.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := formatter.Format(report.Check(sv))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	// Start timeout checker if timeout is set
	if s.timeout > 0 {
		go s.timeoutChecker()
	}

	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker monitors for inactivity and exits if timeout exceeded
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		elapsed := time.Since(s.lastActivity)
		s.mu.RUnlock()

		if elapsed > s.timeout {
			fmt.Fprintf(os.Stderr, "srpt serve: timeout after %v of inactivity\n", s.timeout)
			os.Exit(0)
		}
	}
}

// updateActivity updates the last activity timestamp
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// ListTools returns the list of registered tools
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	return tools
}
