package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
)

// tools returns the complete tool set with handlers bound to the library.
func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: newReadOnlyTool("list_skills", "List skills",
				"List every available skill with its description. Call this first to discover what is available.",
			),
			Handler: s.handleListSkills,
		},
		{
			Tool: newReadOnlyTool("get_skill", "Get skill",
				"Fetch the full instructions of a skill.",
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Skill name as reported by list_skills."),
				),
			),
			Handler: s.handleGetSkill,
		},
		{
			Tool: newReadOnlyTool("get_skill_script", "Get skill script",
				"Fetch one executable helper from a skill's scripts directory.",
				mcp.WithString("skill",
					mcp.Required(),
					mcp.Description("Skill name as reported by list_skills."),
				),
				mcp.WithString("filename",
					mcp.Required(),
					mcp.Description("Script filename, for example run.sh."),
				),
			),
			Handler: s.handleGetScript,
		},
		{
			Tool: newReadOnlyTool("get_skill_reference", "Get skill reference",
				"Fetch one document from a skill's references directory.",
				mcp.WithString("skill",
					mcp.Required(),
					mcp.Description("Skill name as reported by list_skills."),
				),
				mcp.WithString("filename",
					mcp.Required(),
					mcp.Description("Reference filename, for example rollout.md."),
				),
			),
			Handler: s.handleGetReference,
		},
		{
			Tool: newReadOnlyTool("get_writable_roots", "Get writable roots",
				"List the directories where new skills and prompts can be created. The bundled fallback set is excluded.",
			),
			Handler: s.handleWritableRoots,
		},
	}
}

// newReadOnlyTool builds a tool annotated as safe to call freely: it never
// writes, never reaches the network, and repeat calls with the same input
// return the same result.
func newReadOnlyTool(name, title, description string, opts ...mcp.ToolOption) mcp.Tool {
	all := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
	all = append(all, opts...)
	return mcp.NewTool(name, all...)
}

// skillRow is one list_skills entry. Name is the lookup key accepted by the
// get tools, which can differ from the frontmatter display name.
type skillRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListSkills(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := s.lib.ListSkills()
	rows := make([]skillRow, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, skillRow{Name: info.Key, Description: info.Description})
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleWritableRoots(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roots := s.lib.WritableRoots()
	if roots == nil {
		roots = []string{}
	}

	payload, err := json.MarshalIndent(roots, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleGetSkill(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := s.lib.GetSkillContent(name)
	if err != nil {
		return s.lookupResult(err)
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleGetScript(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.skillFileResult(req, s.lib.GetScript)
}

func (s *Server) handleGetReference(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.skillFileResult(req, s.lib.GetReference)
}

func (s *Server) skillFileResult(req mcp.CallToolRequest, fetch func(skill, filename string) (string, error)) (*mcp.CallToolResult, error) {
	skill, err := req.RequireString("skill")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := fetch(skill, filename)
	if err != nil {
		return s.lookupResult(err)
	}
	return mcp.NewToolResultText(content), nil
}

// lookupResult converts a miss into a tool error the model can read and
// recover from, since the message enumerates the names that do exist.
// Anything else is a protocol-level failure.
func (s *Server) lookupResult(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, library.ErrNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, err
}
