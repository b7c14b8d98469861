package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/ansifmt"
)

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config>",
		Short: "Compile a config file and report what it defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ansifmt.LoadConfig(args[0])
			if err != nil {
				return err
			}
			codec, err := ansifmt.New(cfg)
			if err != nil {
				return fmt.Errorf("compile config: %w", err)
			}

			subs := 0
			for _, f := range cfg.Fields {
				subs += len(f.Highlighters)
			}
			c.Logger.Debug("config compiled", "path", args[0])

			_, err = fmt.Fprintf(c.out, "%s: ok\n  columns:      %d\n  indent:       %d\n  fields:       %d\n  line rules:   %d\n  field rules:  %d\n",
				args[0], codec.Columns(), len(codec.Indent())-1, len(cfg.Fields), len(cfg.Highlighters), subs)
			return err
		},
	}
}
