package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/ansifmt"
)

func (c *CLI) colorsCommand() *cobra.Command {
	var bold, background bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print a sample of every color name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reset := ansifmt.DefaultStyle.Escape()
			for _, color := range ansifmt.Colors() {
				s := ansifmt.Style{Foreground: color, Background: ansifmt.Default, Bold: bold}
				if background {
					s = ansifmt.Style{Foreground: ansifmt.Default, Background: color, Bold: bold}
				}
				if _, err := fmt.Fprintf(c.out, "%s%-8s%s %q\n", s.Escape(), color, reset, s.Escape()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&bold, "bold", false, "render samples in bold")
	cmd.Flags().BoolVar(&background, "background", false, "color the background instead of the text")

	return cmd
}
