package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for strict parsing.
var (
	// ErrMissingFrontmatter is returned by MustParse when no frontmatter is found.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrMissingClosingDelimiter is returned by MustParse when the opening
	// delimiter is present but never closed.
	ErrMissingClosingDelimiter = errors.New("missing closing frontmatter delimiter")
)

// Split separates content into its frontmatter block and body.
//
// Content participates only if it begins with a "---" line. found reports
// whether a complete block (opening and closing delimiter) was present;
// when it is false, matter is nil and body is the full content. Split
// performs no YAML parsing.
//
// Both LF and CRLF line endings are handled.
func Split(content []byte) (matter, body []byte, found bool) {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, content, false
	}

	// Skip past the opening delimiter line.
	start := 3
	if len(content) > start && content[start] == '\r' {
		start++
	}
	if len(content) > start && content[start] == '\n' {
		start++
	}

	rest := content[start:]
	end, next := closingDelimiter(rest)
	if end < 0 {
		return nil, content, false
	}

	matter = rest[:end]
	body = rest[next:]
	return matter, body, true
}

// closingDelimiter finds a "---" line in rest. It returns the offset where
// the frontmatter block ends and the offset where the body begins, or
// (-1, -1) when no closing line exists.
func closingDelimiter(rest []byte) (end, next int) {
	offset := 0
	for offset <= len(rest) {
		lineEnd := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		if lineEnd < 0 {
			line = rest[offset:]
		} else {
			line = rest[offset : offset+lineEnd]
		}
		if bytes.Equal(bytes.TrimRight(line, "\r"), []byte("---")) {
			if lineEnd < 0 {
				return offset, len(rest)
			}
			return offset, offset + lineEnd + 1
		}
		if lineEnd < 0 {
			break
		}
		offset += lineEnd + 1
	}
	return -1, -1
}

// ParseMap extracts frontmatter permissively. It returns the metadata as a
// generic map and the body with surrounding whitespace trimmed.
//
// Degradation rules: content without a complete frontmatter block yields an
// empty map and the whole trimmed content as body; a block that fails to
// parse as a YAML mapping yields an empty map and the body after the
// closing delimiter. ParseMap never returns an error.
func ParseMap(content []byte) (map[string]any, string) {
	matter, body, found := Split(content)
	trimmedBody := strings.TrimSpace(string(body))
	if !found {
		return map[string]any{}, trimmedBody
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal(matter, &meta); err != nil || meta == nil {
		return map[string]any{}, trimmedBody
	}
	return meta, trimmedBody
}

// Parse extracts YAML frontmatter and body content from a reader.
// If no frontmatter is present, returns empty struct and full content as body.
// This is useful for files where frontmatter is optional (prompts).
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but returns an error if no frontmatter is found.
// This is useful for files where frontmatter is required (skills).
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	block, body, found := Split(content)
	if !found {
		if required {
			if bytes.HasPrefix(content, []byte("---")) {
				return nil, ErrMissingClosingDelimiter
			}
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}

	if err := yaml.Unmarshal(block, matter); err != nil {
		return nil, err
	}

	return body, nil
}

// ParseHeader parses only the frontmatter from the reader.
// It stops reading after the closing delimiter "---".
// The body is not consumed or returned.
// Returns nil if no frontmatter is found (silent success, matter remains empty).
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	// Check first line
	if !scanner.Scan() {
		return scanner.Err()
	}
	line := strings.TrimSpace(scanner.Text())
	if line != "---" {
		// No frontmatter start delimiter
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			// Found closing delimiter
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return scanner.Err()
}

// Format formats content with YAML frontmatter.
// The matter struct is serialized to YAML and wrapped in "---" delimiters,
// followed by the body content.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
