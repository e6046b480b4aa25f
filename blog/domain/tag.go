package domain

import (
	"net/url"
	"path"
	"strings"
)

// PostID indexes a post in the post list of a build.
type PostID int

// Tag groups the posts that share a label.
// Tags reference posts by id; the build owns the posts themselves.
type Tag struct {
	name  string
	url   string
	num   int
	posts []PostID
}

func NewTag(name string, tagURL string) *Tag {
	return &Tag{name: name, url: tagURL}
}

// TagURL is the site-absolute url of a tag page. The name is path-escaped;
// the page on disk keeps the raw name.
func TagURL(name string) string {
	return path.Join("/", BlogPrefix, "tags", url.PathEscape(name+htmlExt))
}

// ValidTagName reports whether name can be used as a tag page file name.
func ValidTagName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

// Add appends a post and bumps the count. The same post added twice is counted twice.
func (t *Tag) Add(id PostID) {
	t.num++
	t.posts = append(t.posts, id)
}

func (t *Tag) Name() string { return t.name }

func (t *Tag) URL() string { return t.url }

func (t *Tag) Num() int { return t.num }

func (t *Tag) Posts() []PostID {
	return append([]PostID(nil), t.posts...)
}
