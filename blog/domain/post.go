package domain

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// BuildsDir is the directory under the blog root that receives build output.
	BuildsDir = "_builds"
	// BlogPrefix is the url and output prefix for posts and tags.
	BlogPrefix = "blog"

	headBodySeparator = "\n\n"
	htmlExt           = ".html"
)

// MarkdownRenderer converts a markdown body into HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
}

// Post represents one markdown article of the blog.
// A post file is a block of `key: value` header lines, a blank line, then the markdown body.
// Posts are populated once by Load and are read-only afterwards.
type Post struct {
	root     string
	path     string
	head     string
	body     string
	metadata *Metadata
}

// NewPost binds a post to its blog root and its path relative to that root.
func NewPost(root string, path string) *Post {
	return &Post{
		root:     root,
		path:     path,
		metadata: NewMetadata(),
	}
}

func (p *Post) Root() string { return p.root }

func (p *Post) Path() string { return p.path }

func (p *Post) Head() string { return p.head }

func (p *Post) Body() string { return p.body }

func (p *Post) Metadata() *Metadata { return p.metadata }

// Src is the absolute location of the post source file.
func (p *Post) Src() string {
	return filepath.Join(p.root, p.path)
}

// Dest is the default output location, <root>/_builds/blog/<path>.html.
func (p *Post) Dest() string {
	return p.DestIn(filepath.Join(p.root, BuildsDir))
}

// DestIn places the rendered post under dir/blog, keeping the source layout.
func (p *Post) DestIn(dir string) string {
	return filepath.Join(dir, BlogPrefix, replaceExt(p.path, htmlExt))
}

// URL is the site-absolute url of the rendered post.
func (p *Post) URL() string {
	return path.Join("/", BlogPrefix, filepath.ToSlash(replaceExt(p.path, htmlExt)))
}

// Title is derived from the file name without its extension.
func (p *Post) Title() (string, error) {
	base := filepath.Base(p.path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", &FormatError{Path: p.path, Msg: "filename format error"}
	}
	return stem, nil
}

// Datetime returns the raw `date` header.
func (p *Post) Datetime() (string, error) {
	date, ok := p.metadata.Get("date")
	if !ok {
		return "", &FormatError{Path: p.path, Msg: "require date header"}
	}
	return date, nil
}

// Tags splits the `tags` header on commas. Entries are trimmed, empty ones
// dropped, duplicates kept, and the result is sorted.
func (p *Post) Tags() []string {
	raw, ok := p.metadata.Get("tags")
	if !ok {
		return []string{}
	}

	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Published is false only for posts that say `published: false`.
func (p *Post) Published() bool {
	value, ok := p.metadata.Get("published")
	if !ok {
		return true
	}
	return !strings.EqualFold(strings.TrimSpace(value), "false")
}

// Content renders the markdown body to HTML. Nothing is cached.
func (p *Post) Content(renderer MarkdownRenderer) (string, error) {
	html, err := renderer.Render([]byte(p.body))
	if err != nil {
		return "", err
	}
	return string(html), nil
}

// Map is the minimal projection handed to templates.
func (p *Post) Map() (map[string]string, error) {
	title, err := p.Title()
	if err != nil {
		return nil, err
	}
	datetime, err := p.Datetime()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"title":    title,
		"url":      p.URL(),
		"datetime": datetime,
	}, nil
}

// Load reads the source file and parses the header block.
// Nothing is assigned to the post unless the whole file parses.
func (p *Post) Load() error {
	log.Debug().Str("path", p.path).Msg("loading post")

	content, err := os.ReadFile(p.Src())
	if err != nil {
		return NewIOError("read", p.Src(), err)
	}

	head, body, found := strings.Cut(string(content), headBodySeparator)
	if !found {
		return &FormatError{Path: p.path, Msg: "must have head and body parts"}
	}

	metadata := NewMetadata()
	for _, line := range headLines(head) {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return &FormatError{Path: p.path, Msg: "head part parse error: " + line}
		}
		metadata.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	p.head = head
	p.body = body
	p.metadata = metadata
	return nil
}

func headLines(head string) []string {
	if head == "" {
		return nil
	}
	lines := strings.Split(head, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func replaceExt(p string, ext string) string {
	return strings.TrimSuffix(p, filepath.Ext(p)) + ext
}
