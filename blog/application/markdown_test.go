package application

import (
	"strings"
	"testing"
)

func TestIsRelativeLink(t *testing.T) {
	tests := []struct {
		name     string
		dest     string
		expected bool
	}{
		{name: "Sibling post", dest: "other.md", expected: true},
		{name: "Parent directory", dest: "../2016/other.md", expected: true},
		{name: "Absolute path", dest: "/blog/posts/other.html", expected: false},
		{name: "Fragment only", dest: "#section", expected: false},
		{name: "External url", dest: "https://example.com/a.md", expected: false},
		{name: "Mail link", dest: "mailto:me@example.com", expected: false},
		{name: "Empty", dest: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isRelativeLink(tt.dest)
			if result != tt.expected {
				t.Errorf("isRelativeLink(%q) = %v, want %v", tt.dest, result, tt.expected)
			}
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name     string
		dest     string
		expected string
	}{
		{name: "Plain", dest: "other.md", expected: "other.html"},
		{name: "With fragment", dest: "other.md#intro", expected: "other.html#intro"},
		{name: "With query", dest: "dir/other.md?x=1", expected: "dir/other.html?x=1"},
		{name: "Not markdown", dest: "image.png", expected: "image.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := markdownToHTML(tt.dest)
			if result != tt.expected {
				t.Errorf("markdownToHTML(%q) = %q, want %q", tt.dest, result, tt.expected)
			}
		})
	}
}

func TestMarkdownRendererImpl_Render(t *testing.T) {
	renderer := NewMarkdownRenderer()

	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "Heading and paragraph",
			markdown: "# hello\n\nhello world!\n",
			contains: []string{"<h1 id=\"hello\">hello</h1>", "<p>hello world!</p>"},
		},
		{
			name:     "Table",
			markdown: "| Col1 | Col2 |\n|------|------|\n| A    | B    |\n",
			contains: []string{"<table>", "<thead>", "<tbody>", "<td>A</td>"},
		},
		{
			name:     "Strikethrough",
			markdown: "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "Relative post link",
			markdown: "see [other](other.md#top)",
			contains: []string{"<a href=\"other.html#top\">other</a>"},
		},
		{
			name:     "External link untouched",
			markdown: "[Link](https://example.com/x.md)",
			contains: []string{"<a href=\"https://example.com/x.md\">Link</a>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := renderer.Render([]byte(tt.markdown))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			html := string(result)
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("Render() = %q, want it to contain %q", html, want)
				}
			}
		})
	}
}

func TestMarkdownRendererImpl_RenderIsFresh(t *testing.T) {
	renderer := NewMarkdownRenderer()

	first, err := renderer.Render([]byte("one"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := renderer.Render([]byte("two"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(first) != "<p>one</p>\n" {
		t.Errorf("first Render() = %q, want %q", first, "<p>one</p>\n")
	}
	if string(second) != "<p>two</p>\n" {
		t.Errorf("second Render() = %q, want %q", second, "<p>two</p>\n")
	}
}
