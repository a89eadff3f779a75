package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/filter"
	"github.com/Philipp01105/colog/logger"
	"github.com/Philipp01105/colog/paint"
	"github.com/Philipp01105/colog/style"
)

// EnvPrefix is the prefix of environment variables overriding flags,
// e.g. COLOG_STYLE for --style.
const EnvPrefix = "COLOG"

// app carries the configuration shared by all subcommands.
type app struct {
	v *viper.Viper
}

// NewRootCommand returns the colog command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "colog",
		Short: "Colored level-tagged log lines for terminals",
		Long: `colog renders log records as short colored level tokens followed by
the message, with continuation markers for multi-line messages.

Records are filtered with directives such as "info,db=trace", read from
the ` + filter.DefaultEnv + ` environment variable or the --filter flag.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("style", "s", style.NameDefault, "style to render with (see 'colog styles')")
	flags.StringP("filter", "f", "", "filter directives, overrides "+filter.DefaultEnv)
	flags.String("color", paint.ModeAuto.String(), "color output: auto, always or never")
	_ = a.v.BindPFlag("style", flags.Lookup("style"))
	_ = a.v.BindPFlag("filter", flags.Lookup("filter"))
	_ = a.v.BindPFlag("color", flags.Lookup("color"))

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newDemoCommand(a),
		newStylesCommand(a),
		newFormatCommand(a),
	)
	return root
}

// Execute runs the colog command.
func Execute() error {
	return NewRootCommand().Execute()
}

// colorMode returns the configured color mode.
func (a *app) colorMode() (paint.Mode, error) {
	return paint.ParseMode(a.v.GetString("color"))
}

// style looks up the style named by the configuration, or name when not empty.
func (a *app) style(name string) (style.Style, error) {
	if name == "" {
		name = a.v.GetString("style")
	}
	s, ok := style.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown style %q (available: %s)", name, strings.Join(style.Names(), ", "))
	}
	return s, nil
}

// builder returns a logger builder writing to w with base as the level
// for targets no directive names. Directives from --filter replace those
// of the environment.
func (a *app) builder(w io.Writer, s style.Style, base core.LevelFilter) (*logger.Builder, error) {
	mode, err := a.colorMode()
	if err != nil {
		return nil, err
	}

	b := logger.NewBuilder().
		WithWriter(w).
		WithStyle(s).
		WithColor(mode).
		WithLevel(base)
	if spec := a.v.GetString("filter"); spec != "" {
		b = b.ParseFilters(spec)
	} else {
		b = b.ParseEnv(filter.DefaultEnv)
	}
	return b, b.Err()
}

// heading renders title for w with the active color profile.
func heading(w io.Writer, title string) string {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(paint.Profile())
	return r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(paint.BrightBlue))).
		Render(title)
}
