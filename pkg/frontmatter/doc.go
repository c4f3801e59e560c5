// Package frontmatter parses YAML frontmatter from Markdown documents.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end. The package offers two views of the same block:
//
// [ParseMap] is permissive and never fails: a document without a complete
// block, or whose block is not a YAML mapping, degrades to an empty map and
// the full trimmed content as body. Discovery and listing paths use this so
// one malformed document cannot break an index of many.
//
// [Parse] and [MustParse] unmarshal into a typed struct and do return
// errors; the validator uses them to report exactly what is wrong:
//
//	type meta struct {
//		Name        string `yaml:"name"`
//		Description string `yaml:"description"`
//	}
//
//	var m meta
//	body, err := frontmatter.MustParse(f, &m)
//	if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
//		// handle missing frontmatter
//	}
//
// [Split] exposes the raw block for callers that need custom decoding, such
// as order-preserving traversal with yaml.Node.
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
