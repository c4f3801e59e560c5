package prompt

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

// writePrompt creates prompts/<name>.md under root.
func writePrompt(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "prompts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// promptDoc returns minimal valid prompt content.
func promptDoc(name, description, body string) string {
	return "---\nname: " + name + "\ndescription: " + description + "\n---\n\n" + body + "\n"
}
