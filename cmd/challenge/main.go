package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"pkt.systems/challenge"
	"pkt.systems/challenge/internal/config"
	"pkt.systems/challenge/internal/logging"
	"pkt.systems/challenge/internal/termui"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/challenge")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env carries everything a command needs from the global flags.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	styles termui.Styles
	width  int
	roles  []string
	log    *slog.Logger
}

type command struct {
	name    string
	summary string
	run     func(e *env, args []string) int
}

var commands = []command{
	{name: "check", summary: "Validate documents and print warnings", run: runCheck},
	{name: "fmt", summary: "Rewrite a document as canonical TOML", run: runFmt},
	{name: "render", summary: "Render markdown with tokens to sanitized HTML", run: runRender},
	{name: "token", summary: "Classify tokens", run: runToken},
	{name: "new", summary: "Print a new empty document", run: runNew},
	{name: "sources", summary: "List known source books", run: runSources},
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	var (
		themeName   string
		widthFlag   int
		boring      bool
		extraRoles  []string
		logLevel    string
		showVersion bool
	)
	flags := pflag.NewFlagSet("challenge", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&themeName, "theme", "t", cfg.Theme, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", cfg.Width, "Output width override (0 uses terminal width if available)")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.StringSliceVar(&extraRoles, "roles", nil, "Additional known roles (comma separated)")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(false)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: challenge [flags] <command> [args]\n")
		fmt.Fprintln(stderr, "\nCommands:")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %s %s\n", termui.Pad(c.name, 8), c.summary)
		}
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	logger, err := logging.New(stderr, logLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "logging: %v\n", err)
		return 2
	}
	slog.SetDefault(logger)

	theme, ok := termui.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
		for _, name := range termui.AvailableThemes() {
			fmt.Fprintln(stderr, name)
		}
		return 2
	}
	if boring || !isTerminal(stdout) {
		theme = termui.BoringTheme()
	}

	cfg.ExtraRoles = append(cfg.ExtraRoles, extraRoles...)
	e := &env{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		styles: theme.Styles(),
		width:  resolveWidth(widthFlag, stdout),
		roles:  cfg.Roles(challenge.KnownRoles),
		log:    logger,
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return 2
	}
	name := strings.ToLower(rest[0])
	for _, c := range commands {
		if c.name == name {
			return c.run(e, rest[1:])
		}
	}
	fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
	flags.Usage()
	return 2
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	f, _ := w.(*os.File)
	return termui.TerminalWidth(f, termui.DefaultWidth)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termui.IsTerminal(f)
}
