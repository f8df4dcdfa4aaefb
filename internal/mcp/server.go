package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/talentsift/resume-extract/internal/config"
	"github.com/talentsift/resume-extract/internal/descriptions"
	"github.com/talentsift/resume-extract/internal/docs"
	"github.com/talentsift/resume-extract/internal/extract"
)

// Server exposes the resume extraction pipeline as an MCP server.
type Server struct {
	config    *config.Config
	extractor *extract.Service
	decoder   *docs.Service
	vocab     *extract.SkillVocabulary
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, extractor *extract.Service, decoder *docs.Service, vocab *extract.SkillVocabulary) (*Server, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}
	if decoder == nil {
		return nil, fmt.Errorf("decoder cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		extractor: extractor,
		decoder:   decoder,
		vocab:     vocab,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"resume_extract_file",
		mcp.WithDescription(descriptions.ResumeExtractFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the resume file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	readFileTool := mcp.NewTool(
		"resume_read_file",
		mcp.WithDescription(descriptions.ResumeReadFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the resume file"),
		),
	)
	s.mcpServer.AddTool(readFileTool, s.handleReadFile)

	searchDirectoryTool := mcp.NewTool(
		"resume_search_directory",
		mcp.WithDescription(descriptions.ResumeSearchDirectoryDescription),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy filename matching"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleSearchDirectory)

	serverInfoTool := mcp.NewTool(
		"resume_server_info",
		mcp.WithDescription(descriptions.ResumeServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions

func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields := s.extractor.ExtractFile(path)
	return mcp.NewToolResultText(FormatFields(fields)), nil
}

func (s *Server) handleReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, format := s.decoder.DecodeFile(path)
	if text == "" {
		return mcp.NewToolResultError(fmt.Sprintf("no text could be decoded from %s (format: %s)", path, format)), nil
	}

	responseText := fmt.Sprintf("Successfully decoded: %s\n", path)
	responseText += fmt.Sprintf("Format: %s\n", format)
	responseText += fmt.Sprintf("Length: %d bytes\n", len(text))
	responseText += "\nContent:\n"
	responseText += text

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.ResumeDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	result, err := s.decoder.SearchDirectory(docs.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No resume files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Default Directory: %s\n", s.config.ResumeDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n", s.config.MaxFileSize/(1024*1024))
	text += fmt.Sprintf("Phone Region: %s\n", s.config.Region)
	if s.vocab != nil {
		text += fmt.Sprintf("Skill Vocabulary: %d phrases\n", s.vocab.Size())
	}

	if count, err := s.decoder.CountResumesInDirectory(s.config.ResumeDirectory); err == nil {
		text += fmt.Sprintf("Resumes in Default Directory: %d\n", count)
	}

	text += "\nAvailable Tools:\n"
	text += "• resume_extract_file - extract structured fields from a resume\n"
	text += "• resume_read_file - decode a resume to raw text\n"
	text += "• resume_search_directory - find resume files by name\n"
	text += "• resume_server_info - this information\n"

	return mcp.NewToolResultText(text), nil
}

// formatSearchDirectoryResult renders a directory search result.
func (s *Server) formatSearchDirectoryResult(result *docs.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d resume file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

// FormatFields renders extracted resume fields as a key-value listing.
func FormatFields(fields *extract.ResumeFields) string {
	var b strings.Builder

	if fields.Path != "" {
		fmt.Fprintf(&b, "File: %s\n", fields.Path)
		fmt.Fprintf(&b, "Format: %s\n", fields.Format)
	}

	fmt.Fprintf(&b, "Name: %s\n", orNone(fields.Name))
	fmt.Fprintf(&b, "Emails: %s\n", orNone(strings.Join(fields.Emails, ", ")))
	fmt.Fprintf(&b, "Phone: %s\n", orNone(fields.Phone))

	b.WriteString("Professional Summary:\n")
	if len(fields.Summary) == 0 {
		b.WriteString("  None\n")
	} else {
		for _, line := range fields.Summary {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	fmt.Fprintf(&b, "Education: %s\n", orNone(strings.Join(fields.Education, ", ")))
	fmt.Fprintf(&b, "Companies: %s\n", orNone(strings.Join(fields.Companies, ", ")))
	fmt.Fprintf(&b, "Skills: %s\n", orNone(strings.Join(fields.Skills, ", ")))

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// Run starts the MCP server in the configured mode.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsStdioMode() {
		return s.runStdioMode(ctx)
	}
	return s.runServerMode(ctx)
}

// runStdioMode runs the server in stdio mode.
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting resume extraction MCP server in stdio mode")
		log.Printf("Resume directory: %s", s.config.ResumeDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode.
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs transport is stdio-first; server mode falls back.
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
