package application

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dfryer1193/mdblog/blog/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// postLinkTransformer points relative links at other posts to their rendered pages.
type postLinkTransformer struct{}

func (t *postLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(link.Destination)
		if isRelativeLink(dest) {
			link.Destination = []byte(markdownToHTML(dest))
		}

		return ast.WalkContinue, nil
	})
}

func isRelativeLink(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") {
		return false
	}

	return !strings.Contains(dest, ":")
}

// markdownToHTML swaps a trailing .md for .html, keeping any fragment or query.
func markdownToHTML(dest string) string {
	target, suffix := dest, ""
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		target, suffix = dest[:i], dest[i:]
	}

	trimmed, found := strings.CutSuffix(target, ".md")
	if !found {
		return dest
	}
	return trimmed + ".html" + suffix
}

type MarkdownRendererImpl struct {
	renderer goldmark.Markdown
}

// NewMarkdownRenderer returns a goldmark renderer with tables and the rest of GFM enabled.
func NewMarkdownRenderer() domain.MarkdownRenderer {
	renderer := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&postLinkTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &MarkdownRendererImpl{
		renderer: renderer,
	}
}

func (r *MarkdownRendererImpl) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := r.renderer.Convert(markdown, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	return buf.Bytes(), nil
}
