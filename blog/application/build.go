package application

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/rs/zerolog/log"
)

var postExtensions = []string{".md", ".markdown"}

// Build renders every published post under posts/ with the named theme into
// _builds/<theme>. The first invalid post aborts the build unless
// WithSkipInvalid was given. Output written before an error is left in place.
func (m *Mdblog) Build(themeName string) error {
	m.posts = nil
	m.tags = map[string]*domain.Tag{}

	if err := m.theme.Load(themeName); err != nil {
		return fmt.Errorf("failed to load theme %s: %w", themeName, err)
	}

	posts, err := m.loadPosts()
	if err != nil {
		return err
	}
	m.posts = posts
	m.tags = buildTagIndex(posts)

	out := m.OutputDir(themeName)
	log.Info().Str("theme", themeName).Int("posts", len(posts)).Int("tags", len(m.tags)).Str("output", out).Msg("building blog")

	site, err := newSiteRenderer(m.theme, m.markdown)
	if err != nil {
		return err
	}
	if err := site.renderAll(out, m.posts, m.tags); err != nil {
		return err
	}

	if err := m.theme.ExportStatic(out); err != nil {
		return fmt.Errorf("failed to export static assets: %w", err)
	}
	return nil
}

func (m *Mdblog) loadPosts() ([]*domain.Post, error) {
	paths, err := m.findPosts()
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(paths))
	for _, rel := range paths {
		post := domain.NewPost(m.root, rel)
		published, err := loadPost(post)
		if err != nil {
			if !m.skipInvalid {
				return nil, fmt.Errorf("failed to load post %s: %w", rel, err)
			}
			log.Warn().Err(err).Str("path", rel).Msg("Skipping invalid post")
			continue
		}

		if !published {
			log.Debug().Str("path", rel).Msg("Skipping unpublished post")
			continue
		}
		posts = append(posts, post)
	}

	sortPosts(posts)
	return posts, nil
}

// loadPost loads the post and, unless it is a draft, checks the headers every
// page needs. Drafts are only required to parse.
func loadPost(post *domain.Post) (bool, error) {
	if err := post.Load(); err != nil {
		return false, err
	}
	if !post.Published() {
		return false, nil
	}

	if _, err := post.Map(); err != nil {
		return false, err
	}
	for _, name := range post.Tags() {
		if !domain.ValidTagName(name) {
			return false, &domain.FormatError{Path: post.Path(), Msg: "invalid tag name: " + name}
		}
	}
	return true, nil
}

// findPosts lists markdown files under posts/, relative to the root, in lexical order.
func (m *Mdblog) findPosts() ([]string, error) {
	dir := filepath.Join(m.root, postsDir)

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return domain.NewIOError("walk", path, err)
		case d.IsDir():
			return nil
		case !isPostFile(path):
			return nil
		}

		rel, err := filepath.Rel(m.root, path)
		if err != nil {
			return fmt.Errorf("failed to resolve post path %s: %w", path, err)
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func isPostFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range postExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// sortPosts orders posts newest first, then by path.
func sortPosts(posts []*domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		di, _ := posts[i].Datetime()
		dj, _ := posts[j].Datetime()
		if di != dj {
			return di > dj
		}
		return posts[i].Path() < posts[j].Path()
	})
}

// buildTagIndex groups posts by tag. Tags hold indexes into posts.
func buildTagIndex(posts []*domain.Post) map[string]*domain.Tag {
	tags := map[string]*domain.Tag{}
	for i, post := range posts {
		for _, name := range post.Tags() {
			tag, ok := tags[name]
			if !ok {
				tag = domain.NewTag(name, domain.TagURL(name))
				tags[name] = tag
			}
			tag.Add(domain.PostID(i))
		}
	}
	return tags
}

func sortedTagNames(tags map[string]*domain.Tag) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
