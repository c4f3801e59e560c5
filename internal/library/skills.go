package library

import (
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/render"
	"github.com/thoreinstein/skillkit/pkg/frontmatter"
)

// SkillInfo is one row of a skill listing. Key is the index key used for
// lookups; Name is the displayed name, which follows the frontmatter when
// it declares one.
type SkillInfo struct {
	Key         string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListSkills returns every indexed skill sorted by name. Documents that
// cannot be read fall back to their directory-derived name with an empty
// description so one broken skill never hides the rest.
func (l *Library) ListSkills() []SkillInfo {
	infos := make([]SkillInfo, 0, len(l.skills))
	for _, key := range sortedKeys(l.skills) {
		e := l.skills[key]
		info := SkillInfo{Key: key, Name: key}

		data, err := fs.ReadFile(e.root.FS, path.Join(e.path, skillFileName))
		if err != nil {
			l.logger.Debug("skill unreadable, listing by directory name",
				"skill", key,
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
		infos = append(infos, info)
	}

	slices.SortFunc(infos, func(a, b SkillInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}

// GetSkillContent returns the full raw text of the named skill's SKILL.md.
func (l *Library) GetSkillContent(name string) (string, error) {
	e, ok := l.skills[name]
	if !ok {
		return "", notFound("skill", name, sortedKeys(l.skills))
	}
	data, err := fs.ReadFile(e.root.FS, path.Join(e.path, skillFileName))
	if err != nil {
		return "", errors.Wrapf(err, "reading skill %q", name)
	}
	return string(data), nil
}

// GetScript returns the raw text of a file under the skill's scripts
// directory.
func (l *Library) GetScript(skill, filename string) (string, error) {
	return l.skillFile(skill, "scripts", filename)
}

// GetReference returns the raw text of a file under the skill's references
// directory.
func (l *Library) GetReference(skill, filename string) (string, error) {
	return l.skillFile(skill, "references", filename)
}

// ListScripts returns the filenames in the skill's scripts directory,
// sorted. A skill without one yields an empty list, not an error.
func (l *Library) ListScripts(skill string) ([]string, error) {
	return l.skillFileNames(skill, "scripts")
}

// ListReferences returns the filenames in the skill's references directory,
// sorted. A skill without one yields an empty list, not an error.
func (l *Library) ListReferences(skill string) ([]string, error) {
	return l.skillFileNames(skill, "references")
}

// skillFileNames enumerates the immediate files of a skill subdirectory.
// Unlike skillFile, a missing or unreadable subdirectory is an empty list:
// listings degrade, fetches fail.
func (l *Library) skillFileNames(skill, subdir string) ([]string, error) {
	e, ok := l.skills[skill]
	if !ok {
		return nil, notFound("skill", skill, sortedKeys(l.skills))
	}

	entries, err := fs.ReadDir(e.root.FS, path.Join(e.path, subdir))
	if err != nil {
		return []string{}, nil
	}

	names := make([]string, 0, len(entries))
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)
	return names, nil
}

// skillFile serves one file out of a skill subdirectory. Only immediate
// files are addressable; the subdirectory's entries double as the
// suggestion list when the filename misses.
func (l *Library) skillFile(skill, subdir, filename string) (string, error) {
	e, ok := l.skills[skill]
	if !ok {
		return "", notFound("skill", skill, sortedKeys(l.skills))
	}

	dirPath := path.Join(e.path, subdir)
	entries, err := fs.ReadDir(e.root.FS, dirPath)
	if err != nil {
		return "", noSubdir(skill, subdir)
	}

	present := make([]string, 0, len(entries))
	found := false
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		present = append(present, de.Name())
		if de.Name() == filename {
			found = true
		}
	}
	if !found {
		sort.Strings(present)
		return "", fileNotFound(strings.TrimSuffix(subdir, "s"), filename, skill, present)
	}

	data, err := fs.ReadFile(e.root.FS, path.Join(dirPath, filename))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path.Join(skill, subdir, filename))
	}
	return string(data), nil
}

// SkillArguments returns the merged argument specification for a skill:
// parameters declared in frontmatter first, then placeholders discovered in
// the body.
func (l *Library) SkillArguments(name string) (render.Spec, error) {
	e, ok := l.skills[name]
	if !ok {
		return nil, notFound("skill", name, sortedKeys(l.skills))
	}
	data, err := fs.ReadFile(e.root.FS, path.Join(e.path, skillFileName))
	if err != nil {
		return nil, errors.Wrapf(err, "reading skill %q", name)
	}
	return mergedArguments(data), nil
}

// mergedArguments computes the full parameter set for a document.
func mergedArguments(content []byte) render.Spec {
	matter, body, _ := frontmatter.Split(content)
	declared := render.DeclaredArgs(matter)
	return render.Merge(declared, render.Placeholders(string(body)))
}
