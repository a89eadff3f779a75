package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/logger"
	"github.com/Philipp01105/colog/style"
)

// scenario is one demo program.
type scenario struct {
	name    string
	summary string
	style   string
	level   core.LevelFilter
	run     func(log *logger.Logger)
}

var scenarios = []scenario{
	{
		name:    "simple",
		summary: "default style, Info and above, multi-line messages",
		style:   style.NameDefault,
		level:   core.InfoFilter,
		run: func(log *logger.Logger) {
			logEveryLevel(log)
			log.Info("multi line demonstration\nhere")
			log.Info("more\nmulti\nline\nhere\nhere")
		},
	},
	{
		name:    "levels",
		summary: "default style, Warn and above",
		style:   style.NameDefault,
		level:   core.WarnFilter,
		run:     logEveryLevel,
	},
	{
		name:    "tokens",
		summary: "three-letter level tokens",
		style:   style.NameTokens,
		level:   core.TraceFilter,
		run:     logEveryLevel,
	},
	{
		name:    "colors",
		summary: "bright white tokens on level-colored backgrounds",
		style:   style.NameColors,
		level:   core.TraceFilter,
		run:     logEveryLevel,
	},
	{
		name:    "prefix",
		summary: "arrow prefix instead of brackets",
		style:   style.NamePrefix,
		level:   core.TraceFilter,
		run:     logEveryLevel,
	},
	{
		name:    "stateful",
		summary: "every record numbered by the style",
		style:   style.NameSequenced,
		level:   core.TraceFilter,
		run:     logEveryLevel,
	},
}

func logEveryLevel(log *logger.Logger) {
	log.Error("error message")
	log.Errorf("error with fmt: %d", 42)
	log.Warn("warn message")
	log.Info("info message")
	log.Debug("debug message")
	log.Trace("trace message")
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios)+1)
	for _, sc := range scenarios {
		names = append(names, sc.name)
	}
	return append(names, "all")
}

func newDemoCommand(a *app) *cobra.Command {
	var b strings.Builder
	for _, sc := range scenarios {
		fmt.Fprintf(&b, "  %-9s %s\n", sc.name, sc.summary)
	}

	return &cobra.Command{
		Use:   "demo [scenario]",
		Short: "Replay the example programs",
		Long: `Replay one of the example programs, or all of them in turn.

Scenarios:
` + b.String() + `
The scenario picks its own style. Filter directives apply on top of the
scenario's level.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: scenarioNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "all"
			if len(args) == 1 {
				name = args[0]
			}
			return a.runDemo(cmd, name)
		},
	}
}

func (a *app) runDemo(cmd *cobra.Command, name string) error {
	if name != "all" {
		for _, sc := range scenarios {
			if sc.name == name {
				return a.runScenario(cmd, sc, false)
			}
		}
		return fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(scenarioNames(), ", "))
	}

	w := cmd.ErrOrStderr()
	for i, sc := range scenarios {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := a.runScenario(cmd, sc, true); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runScenario(cmd *cobra.Command, sc scenario, withHeading bool) error {
	s, err := a.style(sc.style)
	if err != nil {
		return err
	}
	w := cmd.ErrOrStderr()
	b, err := a.builder(w, s, sc.level)
	if err != nil {
		return err
	}
	log := b.Build()
	defer log.Close()

	// Build has applied the color mode, the heading follows it.
	if withHeading {
		fmt.Fprintln(w, heading(w, sc.name+": "+sc.summary))
	}
	sc.run(log)
	return nil
}
