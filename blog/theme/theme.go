package theme

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/rs/zerolog/log"
)

const (
	// ThemesDir holds user themes under the blog root.
	ThemesDir = "_themes"
	// DefaultName is the theme that ships inside the binary.
	DefaultName = "simple"
)

//go:embed simple
var builtinFS embed.FS

// ErrThemeNotLoaded is returned when an unloaded theme is asked to write itself out.
var ErrThemeNotLoaded = errors.New("theme not loaded")

// bundle is the full set of files making up a theme.
type bundle struct {
	favicon []byte
	logo    []byte
	mainCSS []byte
	mainJS  []byte
	base    []byte
	index   []byte
	post    []byte
	tag     []byte
}

type bundleFile struct {
	path string
	data *[]byte
}

func (b *bundle) staticFiles() []bundleFile {
	return []bundleFile{
		{"static/favicon.png", &b.favicon},
		{"static/logo.png", &b.logo},
		{"static/main.css", &b.mainCSS},
		{"static/main.js", &b.mainJS},
	}
}

func (b *bundle) files() []bundleFile {
	return append(b.staticFiles(),
		bundleFile{"templates/base.tpl", &b.base},
		bundleFile{"templates/index.tpl", &b.index},
		bundleFile{"templates/post.tpl", &b.post},
		bundleFile{"templates/tag.tpl", &b.tag},
	)
}

// Theme is a named bundle of templates and static assets.
// It is either empty or fully loaded from a single source.
type Theme struct {
	root string
	name string
	bundle
}

// New returns an empty theme bound to the blog root.
func New(root string) *Theme {
	return &Theme{root: root}
}

// Name is empty until Load succeeds.
func (t *Theme) Name() string { return t.name }

func (t *Theme) Favicon() []byte { return t.favicon }
func (t *Theme) Logo() []byte { return t.logo }
func (t *Theme) MainCSS() []byte { return t.mainCSS }
func (t *Theme) MainJS() []byte { return t.mainJS }

func (t *Theme) BaseTemplate() []byte { return t.base }
func (t *Theme) IndexTemplate() []byte { return t.index }
func (t *Theme) PostTemplate() []byte { return t.post }
func (t *Theme) TagTemplate() []byte { return t.tag }

// Clear resets the theme to its empty state.
func (t *Theme) Clear() {
	t.name = ""
	t.bundle = bundle{}
}

// Dir is where a theme called name lives under the blog root.
func (t *Theme) Dir(name string) string {
	return filepath.Join(t.root, ThemesDir, name)
}

// Load replaces the theme with the one called name. A directory under
// _themes wins over the built-in bundle. On error the theme is left untouched.
func (t *Theme) Load(name string) error {
	log.Debug().Str("theme", name).Msg("loading theme")

	var (
		src    fs.FS
		origin string
	)
	dir := t.Dir(name)
	_, statErr := os.Stat(dir)
	switch {
	case statErr == nil:
		src, origin = os.DirFS(dir), dir
	case !errors.Is(statErr, fs.ErrNotExist):
		return domain.NewIOError("stat", dir, statErr)
	case name == DefaultName:
		sub, err := fs.Sub(builtinFS, DefaultName)
		if err != nil {
			return domain.NewIOError("open", "builtin:"+DefaultName, err)
		}
		src, origin = sub, "builtin:"+DefaultName
	default:
		return &domain.ThemeNotFoundError{Name: name}
	}

	loaded, err := readBundle(src, origin)
	if err != nil {
		return err
	}

	t.Clear()
	t.name = name
	t.bundle = *loaded
	return nil
}

func readBundle(src fs.FS, origin string) (*bundle, error) {
	b := &bundle{}
	for _, f := range b.files() {
		data, err := fs.ReadFile(src, f.path)
		if err != nil {
			return nil, domain.NewIOError("read", filepath.Join(origin, filepath.FromSlash(f.path)), err)
		}
		*f.data = data
	}
	return b, nil
}

// InitDir writes the loaded theme to _themes/name so it can be customized.
// An existing destination is left alone.
func (t *Theme) InitDir(name string) error {
	if t.name == "" {
		return ErrThemeNotLoaded
	}

	dest := t.Dir(name)
	if _, err := os.Stat(dest); err == nil {
		log.Info().Str("theme", name).Msg("theme already existed")
		return nil
	}
	log.Debug().Str("theme", name).Str("from", t.name).Msg("init theme")

	return writeFiles(dest, t.files())
}

// ExportStatic writes the static assets to dir/static. Templates are not exported.
func (t *Theme) ExportStatic(dir string) error {
	if t.name == "" {
		return ErrThemeNotLoaded
	}
	log.Debug().Str("theme", t.name).Str("dir", dir).Msg("exporting theme static")

	return writeFiles(dir, t.staticFiles())
}

func writeFiles(dir string, files []bundleFile) error {
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.path))
		if err := createFile(target, *f.data); err != nil {
			return err
		}
	}
	return nil
}

func createFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return domain.NewIOError("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.NewIOError("write", path, err)
	}
	return nil
}
