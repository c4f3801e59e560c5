package skill

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
)

// pickSkill opens a fuzzy finder over the skill listing and returns the
// chosen lookup name. An aborted picker returns "" with no error.
func pickSkill(lib *library.Library) (string, error) {
	infos := lib.ListSkills()
	if len(infos) == 0 {
		return "", errors.NewUserError(
			errors.New("no skills available"),
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
			return fmt.Sprintf("Name: %s\n\nDescription:\n%s", info.Name, info.Description)
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
