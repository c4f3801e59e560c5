package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/skillkit/internal/library"
)

// testLibrary indexes root as the only document root.
func testLibrary(t *testing.T, root string) *library.Library {
	t.Helper()
	return library.New([]library.Root{library.DirRoot(root)}, nil)
}

// writeSkill creates skills/<name>/SKILL.md under root.
func writeSkill(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "skills", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeSkillFile creates skills/<skill>/<subdir>/<name> under root.
func writeSkillFile(t *testing.T, root, skill, subdir, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "skills", skill, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// skillDoc returns minimal valid SKILL.md content.
func skillDoc(name, description string) string {
	return "---\nname: " + name + "\ndescription: " + description + "\n---\n\nInstructions for " + name + ".\n"
}
