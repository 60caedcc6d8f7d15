// Package section implements the text framing protocol that multiplexes
// several repositories' raw command output into one stream.
//
// A section looks like:
//
//	@@HAPI_REPO <percent-encoded name>
//	<body>
//	@@HAPI_REPO_END
//
// Sections are concatenated with newlines. A stream containing no marker
// at all is "legacy mode": the entire input is one anonymous section,
// which keeps direct single-repository output parseable unchanged.
package section

import (
	"net/url"
	"strings"
)

const (
	startMarker = "@@HAPI_REPO "
	endMarker   = "@@HAPI_REPO_END"
)

// Section is one repository's body within a framed stream. Name is empty
// for the anonymous section produced by legacy mode.
type Section struct {
	Name string
	Body string
}

// Wrap frames raw command output under a repository name. The name is
// percent-encoded so arbitrary characters, including whitespace, survive
// the line-oriented framing. The body is trimmed of outer whitespace.
func Wrap(repoName, raw string) string {
	var b strings.Builder
	b.WriteString(startMarker)
	b.WriteString(url.PathEscape(repoName))
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(raw))
	b.WriteString("\n")
	b.WriteString(endMarker)
	return b.String()
}

// decodeName reverses the percent-encoding applied by Wrap. Decoding
// failures fall back to the raw encoded text unchanged.
func decodeName(encoded string) string {
	name, err := url.PathUnescape(encoded)
	if err != nil {
		return encoded
	}
	return name
}

// Split parses a framed stream back into its ordered sections.
//
// It is a line-scanning state machine: a start marker flushes any
// in-progress section and opens a new one; the end marker flushes and
// closes. Lines seen before the first marker are kept only when the whole
// stream contains no marker, which yields the single anonymous legacy
// section.
func Split(framed string) []Section {
	if !strings.Contains(framed, startMarker) && !strings.Contains(framed, endMarker) {
		body := strings.TrimSpace(framed)
		if body == "" {
			return nil
		}
		return []Section{{Body: body}}
	}

	var (
		sections []Section
		body     []string
		name     string
		open     bool
	)
	flush := func() {
		if !open {
			body = nil
			return
		}
		sections = append(sections, Section{
			Name: name,
			Body: strings.TrimSpace(strings.Join(body, "\n")),
		})
		body = nil
		open = false
	}

	for _, line := range strings.Split(framed, "\n") {
		switch {
		case strings.HasPrefix(line, startMarker):
			flush()
			name = decodeName(strings.TrimSpace(line[len(startMarker):]))
			open = true
		case strings.TrimSpace(line) == endMarker:
			flush()
		default:
			if open {
				body = append(body, line)
			}
		}
	}
	flush() // unterminated trailing section

	return sections
}
