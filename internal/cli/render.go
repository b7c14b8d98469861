package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/ansifmt"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config  string   // config file path; empty uses the built-in defaults
	columns int      // line width; 0 keeps the config value
	indent  int      // continuation indent; negative keeps the config value
	fields  []string // field names replacing the configured fields
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{indent: -1}

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render JSON lines records as colored, wrapped lines",
		Long: `Render reads one JSON object per line from the given files, or from
stdin when no file is given, and writes one colored line per record.
Lines that are not valid JSON objects are logged and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "config file (.yaml, .yml, .toml or .json)")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "line width (default: config value, then terminal width)")
	cmd.Flags().IntVar(&opts.indent, "indent", -1, "continuation line indent (default: config value)")
	cmd.Flags().StringArrayVar(&opts.fields, "field", nil, "field to render, repeatable (replaces configured fields)")

	return cmd
}

// buildConfig loads the config file, if any, and applies flag overrides.
func (o renderOpts) buildConfig() (ansifmt.Config, error) {
	cfg := ansifmt.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = ansifmt.LoadConfig(o.config); err != nil {
			return ansifmt.Config{}, err
		}
	}
	if o.columns > 0 {
		cfg.Columns = o.columns
	}
	if o.indent >= 0 {
		cfg.Indent = o.indent
	}
	if len(o.fields) > 0 {
		cfg.Fields = make([]ansifmt.FieldSpec, len(o.fields))
		for i, f := range o.fields {
			cfg.Fields[i] = ansifmt.FieldSpec{Field: f}
		}
	}
	return cfg, nil
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts, args []string) error {
	cfg, err := opts.buildConfig()
	if err != nil {
		return err
	}
	codec, err := ansifmt.New(cfg)
	if err != nil {
		return fmt.Errorf("compile config: %w", err)
	}
	c.Logger.Debug("codec ready", "columns", codec.Columns(), "fields", len(cfg.Fields), "highlighters", len(cfg.Highlighters))

	if len(args) == 0 {
		return c.renderInput(ctx, codec, c.in, "stdin")
	}
	for _, path := range args {
		if err := c.renderFile(ctx, codec, path); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) renderFile(ctx context.Context, codec *ansifmt.Codec, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return c.renderInput(ctx, codec, f, path)
}

func (c *CLI) renderInput(ctx context.Context, codec *ansifmt.Codec, r io.Reader, name string) error {
	p := newProgress(c.Logger)
	rendered, skipped := 0, 0
	for rec, err := range ansifmt.ReadRecords(r) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, ansifmt.ErrMalformedRecord) {
			c.Logger.Warn("skipping record", "input", name, "err", err)
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := codec.Write(c.out, rec); err != nil {
			return err
		}
		rendered++
	}
	p.done("rendered input", "input", name, "records", rendered, "skipped", skipped)
	return nil
}
