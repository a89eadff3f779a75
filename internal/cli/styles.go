package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
	"github.com/Philipp01105/colog/style"
)

func newStylesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the registered styles with a sample line each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.colorMode()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			paint.Apply(mode, w)

			fmt.Fprintln(w, heading(w, "Available styles:"))
			for _, name := range style.Names() {
				s, _ := style.Lookup(name)
				fmt.Fprintf(w, "  %-10s %s", name, style.Sprint(s, core.InfoLevel, "info message"))
			}
			return nil
		},
	}
}
