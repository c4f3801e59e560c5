package library

import (
	"io/fs"
	"slices"
	"strings"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/render"
	"github.com/thoreinstein/skillkit/pkg/frontmatter"
)

// PromptInfo is one row of a prompt listing, including the merged argument
// specification so callers can present parameters without a second fetch.
// Key is the index key used for lookups; Name is the displayed name, which
// follows the frontmatter when it declares one.
type PromptInfo struct {
	Key         string      `json:"-"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Arguments   render.Spec `json:"arguments,omitempty"`
}

// ListPrompts returns every indexed prompt sorted by name. Unreadable
// documents degrade to their filename-derived name, the same way skill
// listings do.
func (l *Library) ListPrompts() []PromptInfo {
	infos := make([]PromptInfo, 0, len(l.prompts))
	for _, key := range sortedKeys(l.prompts) {
		e := l.prompts[key]
		info := PromptInfo{Key: key, Name: key}

		data, err := fs.ReadFile(e.root.FS, e.path)
		if err != nil {
			l.logger.Debug("prompt unreadable, listing by filename",
				"prompt", key,
				"root", e.root.Path,
				"error", err)
			infos = append(infos, info)
			continue
		}

		meta, _ := frontmatter.ParseMap(data)
		if name, ok := meta["name"].(string); ok && name != "" {
			info.Name = name
		}
		if desc, ok := meta["description"].(string); ok {
			info.Description = desc
		}
		info.Arguments = mergedArguments(data)
		infos = append(infos, info)
	}

	slices.SortFunc(infos, func(a, b PromptInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}

// GetPromptBody returns the body of the named prompt with frontmatter
// stripped and surrounding whitespace trimmed. Placeholders are left as
// written.
func (l *Library) GetPromptBody(name string) (string, error) {
	data, err := l.promptContent(name)
	if err != nil {
		return "", err
	}
	_, body := frontmatter.ParseMap(data)
	return body, nil
}

// PromptArguments returns the merged argument specification for a prompt.
func (l *Library) PromptArguments(name string) (render.Spec, error) {
	data, err := l.promptContent(name)
	if err != nil {
		return nil, err
	}
	return mergedArguments(data), nil
}

// RenderPrompt returns the prompt body with values substituted. Values are
// checked against the prompt's parameter schema first: missing required
// parameters and untypeable values fail before any substitution happens,
// and omitted optional parameters take their declared defaults.
func (l *Library) RenderPrompt(name string, values map[string]any) (string, error) {
	data, err := l.promptContent(name)
	if err != nil {
		return "", err
	}

	matter, rawBody, _ := frontmatter.Split(data)
	body := strings.TrimSpace(string(rawBody))

	spec := render.Merge(render.DeclaredArgs(matter), render.Placeholders(body))
	completed, err := render.BuildSchema(spec).Validate(values)
	if err != nil {
		return "", errors.Wrapf(err, "rendering prompt %q", name)
	}
	return render.Substitute(body, completed), nil
}

// promptContent reads the named prompt's full raw text.
func (l *Library) promptContent(name string) ([]byte, error) {
	e, ok := l.prompts[name]
	if !ok {
		return nil, notFound("prompt", name, sortedKeys(l.prompts))
	}
	data, err := fs.ReadFile(e.root.FS, e.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading prompt %q", name)
	}
	return data, nil
}
