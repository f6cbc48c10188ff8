package markup

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"pkt.systems/challenge/token"
)

// KindToken is the AST node kind of an inline challenge token.
var KindToken = ast.NewNodeKind("ChallengeToken")

// Node is an inline AST node holding a parsed token.
type Node struct {
	ast.BaseInline
	Token token.Token
}

// Kind implements ast.Node.
func (n *Node) Kind() ast.NodeKind {
	return KindToken
}

// Dump implements ast.Node.
func (n *Node) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Kind":  n.Token.Kind.String(),
		"Name":  n.Token.Name,
		"Value": n.Token.Value,
	}, nil)
}

type tokenParser struct{}

// NewParser returns the goldmark inline parser for tokens. It triggers on
// '{' and leaves the brace to the text parser when no token follows.
func NewParser() parser.InlineParser {
	return tokenParser{}
}

func (tokenParser) Trigger() []byte {
	return []byte{'{'}
}

func (tokenParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	tok, n, ok := token.Match(line)
	if !ok {
		return nil
	}
	block.Advance(n)
	return &Node{Token: tok}
}

// HTMLRenderer renders token nodes as classed spans.
type HTMLRenderer struct{}

// NewHTMLRenderer returns the node renderer for token nodes.
func NewHTMLRenderer() renderer.NodeRenderer {
	return HTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindToken, r.renderToken)
}

func (HTMLRenderer) renderToken(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	node, ok := n.(*Node)
	if !ok {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(Span(node.Token))
	return ast.WalkSkipChildren, nil
}

// Span returns the HTML span for tok. The kind is carried by the class and
// the name and value by data attributes so styling never depends on the
// source text.
func Span(tok token.Token) string {
	name := esc(tok.Name)
	value := esc(tok.Value)
	switch tok.Kind {
	case token.KindWeakness:
		return `<span class="litm-weakness brumes-weakness" data-tag-name="` + name + `">` + name + `</span>`
	case token.KindStatus:
		label := name
		if tok.Value != "" {
			label = name + "-" + value
		}
		return `<span class="litm-status brumes-status" data-status-name="` + name + `" data-status-value="` + value + `">` + label + `</span>`
	case token.KindLimit:
		return `<span class="litm-limit brumes-limit" data-limit-name="` + name + `" data-limit-value="` + value + `">` + name + `</span>`
	default:
		return `<span class="litm-tag brumes-power" data-tag-name="` + name + `">` + name + `</span>`
	}
}

func esc(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

// Extension registers the token parser and renderer with a goldmark
// instance.
type Extension struct{}

// Extend implements goldmark.Extender.
func (Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewParser(), 90),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewHTMLRenderer(), 500),
	))
}
