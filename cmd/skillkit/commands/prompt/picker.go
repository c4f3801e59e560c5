package prompt

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
)

// pickPrompt opens a fuzzy finder over the prompt listing and returns the
// chosen lookup name. An aborted picker returns "" with no error.
func pickPrompt(lib *library.Library) (string, error) {
	infos := lib.ListPrompts()
	if len(infos) == 0 {
		return "", errors.NewUserError(
			errors.New("no prompts available"),
			"Add sources to config.yaml and run 'skillkit source sync'")
	}

	idx, err := fuzzyfinder.Find(
		infos,
		func(i int) string {
			return fmt.Sprintf("%s: %s", infos[i].Key, infos[i].Description)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			info := infos[i]
			return fmt.Sprintf("Name: %s\n\nDescription:\n%s\n\nArguments:\n%s",
				info.Name, info.Description, strings.Join(info.Arguments.Names(), ", "))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}

	return infos[idx].Key, nil
}
