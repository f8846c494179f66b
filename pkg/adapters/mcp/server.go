// Package mcp exposes the directive engine as an MCP server, so editor AI
// assistants can validate and preview layer directives while drafting
// dialogue timelines.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/CakeVR/dialogic"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ParseResult aligns with the HTTP adapter's parse response so both surfaces
// report the same shape.
type ParseResult struct {
	Commands    []domain.Command    `json:"commands" jsonschema_description:"Parsed commands in segment order"`
	Diagnostics []domain.Diagnostic `json:"diagnostics" jsonschema_description:"Segments dropped and why"`
}

// Server wraps the Dialogic engine and exposes it as an MCP Server.
type Server struct {
	engine    *dialogic.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *dialogic.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("dialogic-mcp", dialogic.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	parseTool := mcp.NewTool("parse_directive",
		mcp.WithDescription("Parse a layer directive and report the commands and any malformed segments. Does not touch any tree."),
		mcp.WithString("directive", mcp.Required(), mcp.Description("The directive text, e.g. 'set torso/armor, show scar_left'")),
		mcp.WithOutputSchema[ParseResult](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParse))

	previewTool := mcp.NewTool("preview_directive",
		mcp.WithDescription("Apply a directive to a character's portrait profile and return the resulting layer visibility."),
		mcp.WithString("character", mcp.Required(), mcp.Description("Character name as listed by list_characters")),
		mcp.WithString("directive", mcp.Required(), mcp.Description("The directive text to apply")),
		mcp.WithOutputSchema[dialogic.PreviewResult](),
	)
	s.mcpServer.AddTool(previewTool, mcp.NewStructuredToolHandler(s.handlePreview))

	s.mcpServer.AddTool(mcp.NewTool("list_characters",
		mcp.WithDescription("List the characters whose portrait profiles are available for preview."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.engine.Characters()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		return mcp.NewToolResultText(strings.Join(names, "\n")), nil
	})
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ParseResult, error) {
	directive, _ := args["directive"].(string)
	commands, diags := s.engine.Parse(directive)
	return ParseResult{Commands: commands, Diagnostics: diags}, nil
}

func (s *Server) handlePreview(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (dialogic.PreviewResult, error) {
	character, _ := args["character"].(string)
	directive, _ := args["directive"].(string)

	result, err := s.engine.Preview(ctx, character, directive)
	if err != nil {
		return dialogic.PreviewResult{}, fmt.Errorf("preview failed: %w", err)
	}
	return *result, nil
}
