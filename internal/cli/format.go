package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
)

func newFormatCommand(a *app) *cobra.Command {
	var levelName string

	cmd := &cobra.Command{
		Use:   "format MESSAGE...",
		Short: "Format a single record with the selected style",
		Long: `Format a single record and write it to stdout. The arguments are
joined with spaces; "\n" sequences in them start continuation lines.

Example:
  colog format --level warn --style tokens 'disk almost full\nfree: 3%'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := core.ParseLevel(levelName)
			if err != nil {
				return err
			}
			mode, err := a.colorMode()
			if err != nil {
				return err
			}
			s, err := a.style("")
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			paint.Apply(mode, w)
			msg := strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")
			return s.Format(w, &core.Record{Level: level, Message: msg})
		},
	}
	cmd.Flags().StringVarP(&levelName, "level", "l", "info", "record level: error, warn, info, debug or trace")
	return cmd
}
