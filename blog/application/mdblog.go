package application

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/dfryer1193/mdblog/blog/theme"
	"github.com/dfryer1193/mdblog/internal/config"
	"github.com/dfryer1193/mdblog/internal/middleware"
	"github.com/dfryer1193/mdblog/internal/rest"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	postsDir = "posts"

	helloPost = "date: 2016-06-05 17:14:43\n" +
		"published: true\n" +
		"tags: hello\n" +
		"\n" +
		"# hello\n\nhello world!\n"
)

// Mdblog drives scaffolding, building and serving of one blog root.
type Mdblog struct {
	root        string
	theme       *theme.Theme
	markdown    domain.MarkdownRenderer
	skipInvalid bool

	// rebuilt on every Build
	posts []*domain.Post
	tags  map[string]*domain.Tag
}

type Option func(*Mdblog)

// WithSkipInvalid makes Build log and skip posts that fail to load instead of aborting.
func WithSkipInvalid() Option {
	return func(m *Mdblog) {
		m.skipInvalid = true
	}
}

func WithMarkdownRenderer(r domain.MarkdownRenderer) Option {
	return func(m *Mdblog) {
		m.markdown = r
	}
}

func New(root string, opts ...Option) *Mdblog {
	m := &Mdblog{
		root:     root,
		theme:    theme.New(root),
		markdown: NewMarkdownRenderer(),
		tags:     map[string]*domain.Tag{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mdblog) Root() string { return m.root }

func (m *Mdblog) Theme() *theme.Theme { return m.theme }

// Posts are the published posts of the last build, newest first.
func (m *Mdblog) Posts() []*domain.Post { return m.posts }

// Tags is the tag index of the last build.
func (m *Mdblog) Tags() map[string]*domain.Tag { return m.tags }

// OutputDir is where a build with the named theme is written.
func (m *Mdblog) OutputDir(themeName string) string {
	return filepath.Join(m.root, domain.BuildsDir, themeName)
}

// Init scaffolds a new blog: posts/hello.md and config.toml.
func (m *Mdblog) Init() error {
	if _, err := os.Stat(m.root); err == nil {
		return fmt.Errorf("%s directory already existed: %w", m.root, domain.ErrAlreadyExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return domain.NewIOError("stat", m.root, err)
	}

	posts := filepath.Join(m.root, postsDir)
	if err := os.MkdirAll(posts, 0755); err != nil {
		return domain.NewIOError("mkdir", posts, err)
	}

	hello := filepath.Join(posts, "hello.md")
	if err := os.WriteFile(hello, []byte(helloPost), 0644); err != nil {
		return domain.NewIOError("write", hello, err)
	}

	if err := config.Write(m.root, config.Default()); err != nil {
		return err
	}

	log.Info().Str("root", m.root).Msg("blog initialized")
	return nil
}

// InitTheme copies the theme called from into _themes/name for customization.
func (m *Mdblog) InitTheme(from string, name string) error {
	if err := m.theme.Load(from); err != nil {
		return fmt.Errorf("failed to load theme %s: %w", from, err)
	}
	return m.theme.InitDir(name)
}

// Server prepares an http server for the output of the current theme.
// The caller starts it.
func (m *Mdblog) Server(port int) (*http.Server, error) {
	themeName := m.theme.Name()
	if themeName == "" {
		cfg, err := config.Load(m.root)
		if err != nil {
			return nil, err
		}
		themeName = cfg.Blog.Theme
	}

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	rest.NewStaticSite(router, m.OutputDir(themeName))

	log.Info().Msgf("server blog at localhost:%d", port)
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}, nil
}
