// Package mcp exposes the document library over the Model Context
// Protocol. The surface is read-only: four tools cover skill discovery and
// retrieval, and every indexed prompt document is published as an MCP
// prompt that renders on get. Transport is stdio only.
package mcp

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/thoreinstein/skillkit/internal/library"
	"github.com/thoreinstein/skillkit/internal/logging"
)

// ServerName identifies this server during the MCP handshake.
const ServerName = "skillkit"

const instructions = `skillkit serves skill documents and prompt templates.

Call list_skills first to discover what is available. Fetch a skill's full
instructions with get_skill, then load its supporting files on demand with
get_skill_script and get_skill_reference. Prompt templates are published as
MCP prompts; each one lists its required arguments.`

// Server is an MCP server whose tools and prompts are backed by a document
// library.
type Server struct {
	lib    *library.Library
	mcp    *server.MCPServer
	logger *slog.Logger
}

// New assembles the server. The tool set is static and the prompt list is
// fixed at construction from the library index; the documents behind both
// are re-read on every call, so edits show up without a restart.
func New(lib *library.Library, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	s := &Server{lib: lib, logger: logger}
	s.mcp = server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	s.mcp.AddTools(s.tools()...)
	for _, p := range s.promptDefinitions() {
		s.mcp.AddPrompt(p, s.promptHandler(p.Name, p.Description))
	}
	return s
}

// ServeStdio runs the server over stdin/stdout until ctx is canceled or
// stdin closes. Diagnostics go to the logger, never to stdout, which the
// protocol owns.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio",
		"skills", len(s.lib.ListSkills()),
		"prompts", len(s.lib.ListPrompts()))

	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
