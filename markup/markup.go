// Package markup renders challenge free text to sanitized HTML.
//
// Text is processed as CommonMark (plus GitHub extensions in block mode) with
// an additional inline rule for challenge tokens such as {status-3}. Every
// result passes through an HTML sanitizer because free text is user-authored
// and documents are shared between users.
//
// A Renderer is built once and is safe for concurrent use:
//
//	r := markup.New()
//	html := r.Block("The ogre is {!slow} and {angry-2}.")
package markup

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Renderer converts free text to sanitized HTML.
type Renderer struct {
	block  goldmark.Markdown
	inline goldmark.Markdown
	policy *bluemonday.Policy
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	cfg := config{gfm: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rendererOpts := []renderer.Option{html.WithUnsafe()}
	if cfg.hardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	blockExt := []goldmark.Extender{Extension{}}
	inlineExt := []goldmark.Extender{Extension{}}
	if cfg.gfm {
		blockExt = append(blockExt, extension.GFM)
		inlineExt = append(inlineExt, extension.Strikethrough, extension.Linkify)
	}

	return &Renderer{
		block: goldmark.New(
			goldmark.WithParser(newBlockParser()),
			goldmark.WithExtensions(blockExt...),
			goldmark.WithRendererOptions(rendererOpts...),
		),
		inline: goldmark.New(
			goldmark.WithParser(newInlineParser()),
			goldmark.WithExtensions(inlineExt...),
			goldmark.WithRendererOptions(rendererOpts...),
		),
		policy: newPolicy(),
	}
}

// newBlockParser is goldmark's default parser without HTML blocks. Raw HTML
// is parsed inline instead, so a token sharing a line with a tag still
// renders; the sanitizer removes whatever HTML is unsafe.
func newBlockParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewSetextHeadingParser(), 100),
			util.Prioritized(parser.NewThematicBreakParser(), 200),
			util.Prioritized(parser.NewListParser(), 300),
			util.Prioritized(parser.NewListItemParser(), 400),
			util.Prioritized(parser.NewCodeBlockParser(), 500),
			util.Prioritized(parser.NewATXHeadingParser(), 600),
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewBlockquoteParser(), 800),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
}

// newInlineParser only knows paragraphs, so headings, lists and quotes stay
// literal text.
func newInlineParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
	)
}

// Block renders src as block markdown: paragraphs, lists, emphasis and so on.
func (r *Renderer) Block(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.block.Convert([]byte(src), &buf); err != nil {
		return r.fallback(src)
	}
	return r.policy.Sanitize(buf.String())
}

// Inline renders src without a wrapping paragraph, for single-line fields.
func (r *Renderer) Inline(src string) string {
	if src == "" {
		return ""
	}
	source := []byte(src)
	doc := r.inline.Parser().Parse(text.NewReader(source))
	var buf bytes.Buffer
	first := true
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		if err := r.renderChildren(&buf, source, block); err != nil {
			return r.fallback(src)
		}
	}
	return r.policy.Sanitize(buf.String())
}

func (r *Renderer) renderChildren(buf *bytes.Buffer, source []byte, parent ast.Node) error {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.inline.Renderer().Render(buf, source, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) fallback(src string) string {
	return r.policy.Sanitize(string(util.EscapeHTML([]byte(src))))
}

// Sanitize runs fragment through the renderer's sanitizer policy.
func (r *Renderer) Sanitize(fragment string) string {
	return r.policy.Sanitize(fragment)
}
