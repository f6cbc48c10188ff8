package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"pkt.systems/challenge"
	"pkt.systems/challenge/internal/termui"
	"pkt.systems/challenge/markup"
	"pkt.systems/challenge/token"
)

func newFlagSet(e *env, name, usage string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(e.stderr)
	flags.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: challenge %s\n", usage)
		flags.PrintDefaults()
	}
	return flags
}

// parse returns a non-negative exit code when the command must stop.
func parse(flags *pflag.FlagSet, args []string) int {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	return -1
}

func (e *env) warn(text string) {
	line := e.styles.Warning.Paint("warning:") + " " + termui.Highlight(text, e.styles)
	fmt.Fprintln(e.stderr, termui.Wrap(line, e.width, 2))
}

// fail prints err for input name, listing every issue of a validation error.
func (e *env) fail(name string, err error) {
	label := e.styles.Error.Paint("error:")
	var (
		ve *challenge.ValidationError
		se *challenge.SyntaxError
		ie *challenge.InputError
	)
	switch {
	case errors.As(err, &ve):
		fmt.Fprintf(e.stderr, "%s %s: %d issue(s)\n", label, name, len(ve.Issues))
		for _, issue := range ve.Issues {
			fmt.Fprintln(e.stderr, termui.Wrap(issue.Error(), e.width, 4))
		}
	case errors.As(err, &se):
		fmt.Fprintf(e.stderr, "%s %s:%d:%d: %v\n", label, name, se.Line, se.Column, se)
	case errors.As(err, &ie):
		fmt.Fprintf(e.stderr, "%s %s:%d:%d: %v\n", label, name, ie.Line, ie.Column, ie.Err)
	default:
		fmt.Fprintf(e.stderr, "%s %s: %v\n", label, name, err)
	}
}

func (e *env) importFrom(src source) (challenge.Result, error) {
	data, err := src.read()
	if err != nil {
		return challenge.Result{}, err
	}
	return challenge.Import(data, challenge.WithKnownRoles(e.roles))
}

func runCheck(e *env, args []string) int {
	flags := newFlagSet(e, "check", "check [FILE|URL|-]...")
	quiet := flags.BoolP("quiet", "q", false, "Only print failures")
	if code := parse(flags, args); code >= 0 {
		return code
	}
	srcs, err := sources(flags.Args(), e.stdin)
	if err != nil {
		fmt.Fprintf(e.stderr, "open input: %v\n", err)
		return 2
	}
	code := 0
	for _, src := range srcs {
		res, err := e.importFrom(src)
		if err != nil {
			e.fail(src.name, err)
			code = 1
			continue
		}
		c := res.Challenge
		statuses, tags := token.Split(c.TagsAndStatuses)
		e.log.Debug("imported document", "input", src.name, "name", c.Name, "statuses", len(statuses), "tags", len(tags), "warnings", len(res.Warnings))
		if *quiet {
			continue
		}
		fmt.Fprintf(e.stdout, "%s %s: %s (rating %d, %d status(es), %d tag(s))\n",
			e.styles.Heading.Paint("ok"), src.name, displayName(c), c.Rating, len(statuses), len(tags))
		if s, ok := c.Attribution(); ok {
			fmt.Fprintf(e.stdout, "  %s %s by %s\n", e.styles.Muted.Paint("source:"), s.Title, strings.Join(s.Authors, ", "))
		}
		for _, w := range res.Warnings {
			e.warn(w)
		}
	}
	return code
}

func displayName(c challenge.Challenge) string {
	if c.Name == "" {
		return "(unnamed)"
	}
	return c.Name
}

func runFmt(e *env, args []string) int {
	flags := newFlagSet(e, "fmt", "fmt [-o PATH | -w] [FILE|URL|-]")
	outPath := flags.StringP("output", "o", "", "Output file or directory instead of stdout")
	inPlace := flags.BoolP("write", "w", false, "Rewrite the input file in place")
	if code := parse(flags, args); code >= 0 {
		return code
	}
	rest := flags.Args()
	if len(rest) > 1 {
		flags.Usage()
		return 2
	}
	if *inPlace && *outPath != "" {
		fmt.Fprintln(e.stderr, "-w and -o are mutually exclusive")
		return 2
	}
	srcs, err := sources(rest, e.stdin)
	if err != nil {
		fmt.Fprintf(e.stderr, "open input: %v\n", err)
		return 2
	}
	src := srcs[0]
	if *inPlace && src.path == "" {
		fmt.Fprintln(e.stderr, "-w requires a local file")
		return 2
	}
	res, err := e.importFrom(src)
	if err != nil {
		e.fail(src.name, err)
		return 1
	}
	for _, w := range res.Warnings {
		e.warn(w)
	}
	data, err := challenge.Export(res.Challenge)
	if err != nil {
		e.fail(src.name, err)
		return 1
	}
	path := documentPath(*outPath, res.Challenge)
	if *inPlace {
		path = src.path
	}
	return e.write(path, data)
}

func (e *env) write(path string, data []byte) int {
	if err := writeOutput(path, data, e.stdout); err != nil {
		fmt.Fprintf(e.stderr, "write: %v\n", err)
		return 1
	}
	if path != "" {
		e.log.Debug("wrote document", "path", path, "bytes", len(data))
	}
	return 0
}

func runRender(e *env, args []string) int {
	flags := newFlagSet(e, "render", "render [--inline] [-e TEXT | FILE|URL|-...]")
	inline := flags.Bool("inline", false, "Use the inline renderer (no block syntax)")
	expr := flags.StringP("expr", "e", "", "Render TEXT instead of reading inputs")
	hardWraps := flags.Bool("hard-wraps", false, "Render newlines as <br>")
	frontMatter := flags.Bool("front-matter", true, "Strip a leading front matter block from inputs; its title becomes a heading in block mode")
	if code := parse(flags, args); code >= 0 {
		return code
	}
	src := *expr
	if !flags.Changed("expr") {
		srcs, err := sources(flags.Args(), e.stdin)
		if err != nil {
			fmt.Fprintf(e.stderr, "open input: %v\n", err)
			return 2
		}
		data, err := readSources(srcs)
		if err != nil {
			fmt.Fprintf(e.stderr, "read input: %v\n", err)
			return 1
		}
		if *frontMatter {
			data = e.frontMatterBody(data, !*inline)
		}
		src = string(data)
	}
	r := markup.New(markup.WithHardWraps(*hardWraps))
	var out string
	if *inline {
		out = r.Inline(src)
	} else {
		out = r.Block(src)
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, _ = io.WriteString(e.stdout, out)
	return 0
}

// frontMatterBody strips front matter from data. With heading set, a string
// title field becomes a level one heading.
func (e *env) frontMatterBody(data []byte, heading bool) []byte {
	body, delim, raw := splitFrontMatter(data)
	if delim == nil {
		return data
	}
	meta, err := decodeFrontMatter(delim, raw)
	if err != nil {
		e.log.Warn("ignoring front matter", "error", err)
		return body
	}
	title, _ := meta["title"].(string)
	e.log.Debug("front matter", "fields", len(meta), "title", title)
	if !heading || strings.TrimSpace(title) == "" {
		return body
	}
	return append([]byte("# "+strings.TrimSpace(title)+"\n\n"), body...)
}

func runToken(e *env, args []string) int {
	flags := newFlagSet(e, "token", "token [--as KIND [--value N]] [--compare] [RAW...]")
	as := flags.String("as", "", "Format input that is not a token as KIND (power|weakness|status|limit)")
	value := flags.String("value", "", "Value used with --as for statuses and limits")
	compare := flags.BoolP("compare", "c", false, "Compare exactly two tokens")
	if code := parse(flags, args); code >= 0 {
		return code
	}
	raws := flags.Args()
	if len(raws) == 0 {
		scanner := bufio.NewScanner(e.stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				raws = append(raws, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(e.stderr, "read input: %v\n", err)
			return 1
		}
	}

	if *compare {
		if len(raws) != 2 {
			fmt.Fprintln(e.stderr, "--compare needs exactly two tokens")
			return 2
		}
		c := token.Compare(raws[0], raws[1])
		e.log.Debug("compared tokens", "a", raws[0], "b", raws[1], "literal", c.Literal)
		verdict := "different"
		if c.Equal {
			verdict = "equal"
		}
		if c.Literal {
			verdict += " (literal text)"
		}
		fmt.Fprintln(e.stdout, verdict)
		if !c.Equal {
			return 1
		}
		return 0
	}

	if *as != "" {
		kind, ok := token.ParseKind(*as)
		if !ok {
			fmt.Fprintf(e.stderr, "unknown kind %q\n", *as)
			return 2
		}
		for _, raw := range raws {
			fmt.Fprintln(e.stdout, termui.Highlight(token.EnsureFormatted(raw, kind, *value), e.styles))
		}
		return 0
	}

	code := 0
	for _, raw := range raws {
		tok, ok := token.Parse(raw)
		if !ok {
			fmt.Fprintf(e.stdout, "%s %s\n", e.styles.Error.Paint(termui.Pad("invalid", 9)), raw)
			code = 1
			continue
		}
		style := e.styles.ForKind(tok.Kind)
		line := style.Paint(termui.Pad(tok.Kind.String(), 9)) + " " + termui.Pad(tok.Name, 24)
		if tok.HasValue() {
			line += " " + termui.Pad(tok.Value, 4)
		} else {
			line += " " + termui.Pad("", 4)
		}
		line += " " + style.Paint(tok.String())
		fmt.Fprintln(e.stdout, strings.TrimRight(line, " "))
	}
	return code
}

func runNew(e *env, args []string) int {
	flags := newFlagSet(e, "new", "new [-o PATH|DIR] [--rating N] [NAME...]")
	outPath := flags.StringP("output", "o", "", "Output file or directory instead of stdout")
	rating := flags.Int("rating", challenge.MinRating, "Initial rating")
	if code := parse(flags, args); code >= 0 {
		return code
	}
	c := challenge.New()
	c.Name = strings.Join(flags.Args(), " ")
	c.Rating = *rating
	c, err := challenge.Validate(c)
	if err != nil {
		e.fail("new", err)
		return 1
	}
	data, err := challenge.Export(c)
	if err != nil {
		e.fail("new", err)
		return 1
	}
	return e.write(documentPath(*outPath, c), data)
}

func runSources(e *env, args []string) int {
	flags := newFlagSet(e, "sources", "sources")
	if code := parse(flags, args); code >= 0 {
		return code
	}
	const idWidth, typeWidth = 40, 12
	indent := strings.Repeat(" ", idWidth+typeWidth+2)
	for _, s := range challenge.Sources() {
		title := termui.Truncate(s.Title, max(e.width-len(indent), 20))
		fmt.Fprintf(e.stdout, "%s %s %s\n", e.styles.Heading.Paint(termui.Pad(s.ID, idWidth)), termui.Pad(string(s.PublicationType), typeWidth), title)
		fmt.Fprintf(e.stdout, "%s%s\n", indent, e.styles.Muted.Paint(strings.Join(s.Authors, ", ")))
	}
	return 0
}
