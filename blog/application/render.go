package application

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/dfryer1193/mdblog/blog/theme"
	"github.com/rs/zerolog/log"
)

const (
	baseTemplate = "base"
	indexPage    = "index.html"
	tagsDir      = "tags"
)

// siteRenderer executes the theme templates. Each page template is parsed on
// top of its own copy of base.tpl and fills in the "content" block.
type siteRenderer struct {
	markdown domain.MarkdownRenderer
	index    *template.Template
	post     *template.Template
	tag      *template.Template
}

func newSiteRenderer(th *theme.Theme, markdown domain.MarkdownRenderer) (*siteRenderer, error) {
	base, err := template.New(baseTemplate).Parse(string(th.BaseTemplate()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}

	page := func(name string, src []byte) (*template.Template, error) {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base template: %w", err)
		}
		if _, err := clone.New(name).Parse(string(src)); err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		return clone, nil
	}

	r := &siteRenderer{markdown: markdown}
	if r.index, err = page("index", th.IndexTemplate()); err != nil {
		return nil, err
	}
	if r.post, err = page("post", th.PostTemplate()); err != nil {
		return nil, err
	}
	if r.tag, err = page("tag", th.TagTemplate()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *siteRenderer) renderAll(out string, posts []*domain.Post, tags map[string]*domain.Tag) error {
	tagViews := tagList(tags)

	summaries := make([]map[string]any, 0, len(posts))
	for _, post := range posts {
		summary, err := postSummary(post)
		if err != nil {
			return err
		}
		summaries = append(summaries, summary)
	}

	err := r.write(r.index, filepath.Join(out, indexPage), map[string]any{
		"Posts": summaries,
		"Tags":  tagViews,
	})
	if err != nil {
		return err
	}

	for _, post := range posts {
		view, err := r.postView(post)
		if err != nil {
			return err
		}
		err = r.write(r.post, post.DestIn(out), map[string]any{
			"Post": view,
			"Tags": tagViews,
		})
		if err != nil {
			return err
		}
	}

	for _, name := range sortedTagNames(tags) {
		tag := tags[name]
		tagPosts := make([]map[string]any, 0, tag.Num())
		for _, id := range tag.Posts() {
			tagPosts = append(tagPosts, summaries[id])
		}
		dest, err := outputPath(out, domain.BlogPrefix, tagsDir, name+".html")
		if err != nil {
			return err
		}
		err = r.write(r.tag, dest, map[string]any{
			"Tag":   tagView(tag),
			"Posts": tagPosts,
			"Tags":  tagViews,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *siteRenderer) write(tpl *template.Template, dest string, data any) error {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", dest, err)
	}

	log.Debug().Str("dest", dest).Msg("writing page")
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return domain.NewIOError("mkdir", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
		return domain.NewIOError("write", dest, err)
	}
	return nil
}

// outputPath joins elem under out and refuses anything that lands outside it.
func outputPath(out string, elem ...string) (string, error) {
	dest := filepath.Join(append([]string{out}, elem...)...)
	rel, err := filepath.Rel(out, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("output path %s escapes %s", dest, out)
	}
	return dest, nil
}

// postSummary is Post.Map widened for templates.
func postSummary(post *domain.Post) (map[string]any, error) {
	fields, err := post.Map()
	if err != nil {
		return nil, err
	}
	summary := make(map[string]any, len(fields))
	for k, v := range fields {
		summary[k] = v
	}
	return summary, nil
}

// postView adds the rendered body and tag links to the summary.
func (r *siteRenderer) postView(post *domain.Post) (map[string]any, error) {
	view, err := postSummary(post)
	if err != nil {
		return nil, err
	}

	content, err := post.Content(r.markdown)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %s: %w", post.Path(), err)
	}
	view["content"] = template.HTML(content)

	tags := []map[string]any{}
	for _, name := range post.Tags() {
		tags = append(tags, map[string]any{
			"name": name,
			"url":  domain.TagURL(name),
		})
	}
	view["tags"] = tags
	return view, nil
}

func tagView(tag *domain.Tag) map[string]any {
	return map[string]any{
		"name": tag.Name(),
		"url":  tag.URL(),
		"num":  tag.Num(),
	}
}

func tagList(tags map[string]*domain.Tag) []map[string]any {
	views := make([]map[string]any, 0, len(tags))
	for _, name := range sortedTagNames(tags) {
		views = append(views, tagView(tags[name]))
	}
	return views
}
