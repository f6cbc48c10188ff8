// Package termui styles CLI output for terminals.
package termui

import (
	"sort"
	"strings"

	"pkt.systems/challenge/token"
)

const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	italic    = "\x1b[3m"
	underline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Paint wraps text in the style. An empty style leaves text untouched.
func (s Style) Paint(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + reset
}

// Styles groups the semantic styles used by the CLI.
type Styles struct {
	Text     Style
	Heading  Style
	Power    Style
	Weakness Style
	Status   Style
	Limit    Style
	Warning  Style
	Error    Style
	Muted    Style
}

// ForKind returns the style for a token kind.
func (s Styles) ForKind(k token.Kind) Style {
	switch k {
	case token.KindWeakness:
		return s.Weakness
	case token.KindStatus:
		return s.Status
	case token.KindLimit:
		return s.Limit
	default:
		return s.Power
	}
}

// Theme provides named styles for CLI output.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func fg(r, g, b uint8) string {
	return "\x1b[38;2;" + itoa(r) + ";" + itoa(g) + ";" + itoa(b) + "m"
}

func itoa(v uint8) string {
	if v == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = '0' + v%10
		v /= 10
	}
	return string(buf[i:])
}

type palette struct {
	text, heading, power, weakness, status, limit, warning, err, muted string
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text:     style(p.text),
		Heading:  style(bold, p.heading),
		Power:    style(p.power),
		Weakness: style(italic, p.weakness),
		Status:   style(bold, p.status),
		Limit:    style(underline, p.limit),
		Warning:  style(p.warning),
		Error:    style(bold, p.err),
		Muted:    style(p.muted),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette{
		heading:  "\x1b[36m",
		power:    "\x1b[32m",
		weakness: "\x1b[35m",
		status:   "\x1b[33m",
		limit:    "\x1b[34m",
		warning:  "\x1b[33m",
		err:      "\x1b[31m",
		muted:    "\x1b[90m",
	})},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette{
		text:     fg(235, 219, 178),
		heading:  fg(250, 189, 47),
		power:    fg(184, 187, 38),
		weakness: fg(211, 134, 155),
		status:   fg(254, 128, 25),
		limit:    fg(131, 165, 152),
		warning:  fg(250, 189, 47),
		err:      fg(251, 73, 52),
		muted:    fg(146, 131, 116),
	})},
	"nord": theme{name: "nord", styles: stylesFromPalette(palette{
		text:     fg(216, 222, 233),
		heading:  fg(136, 192, 208),
		power:    fg(163, 190, 140),
		weakness: fg(180, 142, 173),
		status:   fg(235, 203, 139),
		limit:    fg(129, 161, 193),
		warning:  fg(208, 135, 112),
		err:      fg(191, 97, 106),
		muted:    fg(76, 86, 106),
	})},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette{
		text:     fg(131, 148, 150),
		heading:  fg(38, 139, 210),
		power:    fg(133, 153, 0),
		weakness: fg(211, 54, 130),
		status:   fg(181, 137, 0),
		limit:    fg(42, 161, 152),
		warning:  fg(203, 75, 22),
		err:      fg(220, 50, 47),
		muted:    fg(88, 110, 117),
	})},
}

// BoringTheme returns a theme without any styling.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes)+1)
	for name := range builtinThemes {
		names = append(names, name)
	}
	names = append(names, "boring")
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "":
		return DefaultTheme(), true
	case "boring":
		return BoringTheme(), true
	}
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
