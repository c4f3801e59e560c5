package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thoreinstein/skillkit/internal/render"
)

// promptDefinitions builds one MCP prompt per indexed prompt document,
// named by its lookup key. Argument metadata comes from the merged spec: a
// parameter is required unless it has a default or is a boolean.
func (s *Server) promptDefinitions() []mcp.Prompt {
	infos := s.lib.ListPrompts()
	prompts := make([]mcp.Prompt, 0, len(infos))
	for _, info := range infos {
		opts := []mcp.PromptOption{mcp.WithPromptDescription(info.Description)}
		for _, field := range render.BuildSchema(info.Arguments).Fields {
			argOpts := []mcp.ArgumentOption{
				mcp.ArgumentDescription(fieldDescription(field)),
			}
			if field.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(field.Name, argOpts...))
		}
		prompts = append(prompts, mcp.NewPrompt(info.Key, opts...))
	}
	return prompts
}

// fieldDescription folds the parameter type and default into the argument
// description, since MCP prompt arguments carry no structured schema.
func fieldDescription(f render.Field) string {
	desc := f.Description
	switch {
	case desc == "":
		desc = f.Type
	case f.Type != render.TypeString:
		desc += " (" + f.Type + ")"
	}
	if f.Default != nil {
		desc += " (default " + render.Stringify(f.Default) + ")"
	}
	return desc
}

// promptHandler renders the named prompt on get. Arguments arrive as
// strings over the wire; schema validation coerces typed parameters and
// fills defaults before substitution.
func (s *Server) promptHandler(key, description string) server.PromptHandlerFunc {
	return func(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		values := make(map[string]any, len(req.Params.Arguments))
		for name, value := range req.Params.Arguments {
			values[name] = value
		}

		body, err := s.lib.RenderPrompt(key, values)
		if err != nil {
			return nil, err
		}
		return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(body)),
		}), nil
	}
}
