package builtin

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/thoreinstein/skillkit/internal/render"
	"github.com/thoreinstein/skillkit/pkg/frontmatter"
)

func TestFSLayout(t *testing.T) {
	root := FS()

	for _, path := range []string{
		"skills/skill-authoring/SKILL.md",
		"skills/skill-authoring/references/frontmatter-fields.md",
		"skills/skill-authoring/scripts/new-skill.sh",
		"prompts/summarize.md",
	} {
		if _, err := fs.Stat(root, path); err != nil {
			t.Errorf("Stat(%q) error = %v", path, err)
		}
	}
}

func TestEmbeddedSkillParses(t *testing.T) {
	content, err := fs.ReadFile(FS(), "skills/skill-authoring/SKILL.md")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	meta, body := frontmatter.ParseMap(content)
	if meta["name"] != "skill-authoring" {
		t.Errorf("name = %v, want skill-authoring", meta["name"])
	}
	desc, _ := meta["description"].(string)
	if desc == "" || strings.ContainsAny(desc, "<>") || len(desc) > 1024 {
		t.Errorf("description %q violates listing rules", desc)
	}
	if !strings.Contains(body, "skills/<name>/") {
		t.Errorf("body should document the layout, got %q", body[:min(len(body), 80)])
	}
}

func TestEmbeddedPromptArguments(t *testing.T) {
	content, err := fs.ReadFile(FS(), "prompts/summarize.md")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	matter, body, found := frontmatter.Split(content)
	if !found {
		t.Fatal("summarize.md should carry frontmatter")
	}

	declared := render.DeclaredArgs(matter)
	merged := render.Merge(declared, render.Placeholders(string(body)))

	// Every placeholder in the shipped prompt must be declared, so merging
	// adds nothing.
	if len(merged) != len(declared) {
		t.Errorf("undeclared placeholders present: declared %v, merged %v",
			declared.Names(), merged.Names())
	}

	arg, ok := merged.Get("topic")
	if !ok || arg.Default != nil {
		t.Errorf("topic = %#v, %v; want required with no default", arg, ok)
	}
	if arg, _ := merged.Get("audience"); arg.Default != "a general reader" {
		t.Errorf("audience default = %#v", arg.Default)
	}
	if arg, _ := merged.Get("bullets"); arg.Type != render.TypeNumber {
		t.Errorf("bullets type = %q, want number", arg.Type)
	}
}
