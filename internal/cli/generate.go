package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"netsketch/pkg/diagram"
	"netsketch/pkg/errors"
	"netsketch/pkg/export"
	"netsketch/pkg/theme"
)

const (
	variantDT  = "dt"
	variantIT  = "it"
	variantAll = "all"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true, "dot": true}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string // output file (single variant) or directory (all variants)
	variant  string // "dt", "it", or "all"
	format   string // "svg", "pdf", "png", "dot"
	theme    string // optional TOML theme file
	nodeLink bool   // render the Graphviz node-link view instead of the laid-out scene
}

// newGenerateCmd creates the generate command.
//
// Defaults: both variants as PDF under out/diagrams/, matching the original
// standalone behavior.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		variant: variantAll,
		format:  "pdf",
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose and write the architecture diagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVariant(opts.variant); err != nil {
				return err
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single variant) or directory (all variants)")
	cmd.Flags().StringVar(&opts.variant, "variant", opts.variant, "diagram variant: dt, it, or all")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, pdf, png, dot")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file overriding colors and spacing")
	cmd.Flags().BoolVar(&opts.nodeLink, "nodelink", false, "render the schematic Graphviz node-link view")

	return cmd
}

// validateVariant checks that the variant is dt, it, or all.
func validateVariant(v string) error {
	switch v {
	case variantDT, variantIT, variantAll:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidVariant, "invalid variant: %s (must be 'dt', 'it', or 'all')", v)
	}
}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'pdf', 'png', or 'dot')", f)
	}
	return nil
}

// runGenerate composes the selected variants and writes one file each.
// A failing variant does not abort the remaining ones; the first error is
// reported after all variants were attempted.
func runGenerate(ctx context.Context, cmd *cobra.Command, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := theme.Load(opts.theme)
	if err != nil {
		return err
	}
	if opts.theme != "" {
		logger.Debugf("Applied theme %s", opts.theme)
	}

	variants := selectVariants(opts.variant)
	var writeOpts []export.Option
	if opts.nodeLink {
		writeOpts = append(writeOpts, export.WithNodeLink())
	}

	p := newProgress(logger)
	var firstErr error
	written := 0
	for _, v := range variants {
		path := outputPath(opts, v, len(variants) > 1)
		logger.Debugf("Composing %s -> %s", v.Title, path)

		got, err := export.Write(cfg, v, path, writeOpts...)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorLine(v.Title, err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), successLine(got))
		written++
	}
	p.done(fmt.Sprintf("Generated %d diagram(s)", written))

	return firstErr
}

// selectVariants resolves the --variant flag into concrete parameters.
func selectVariants(v string) []diagram.Params {
	switch v {
	case variantDT:
		return []diagram.Params{diagram.DTNet()}
	case variantIT:
		return []diagram.Params{diagram.ITNet()}
	default:
		return diagram.Variants()
	}
}

// outputPath derives the output file for one variant. With multiple
// variants, --output names a directory; with one, it names the file
// (gaining the format extension when it has none).
func outputPath(opts *generateOpts, p diagram.Params, multi bool) string {
	ext := "." + opts.format
	defaultFile := strings.TrimSuffix(p.DefaultFile, filepath.Ext(p.DefaultFile)) + ext

	if opts.output == "" {
		return filepath.Join(export.DefaultDir, defaultFile)
	}
	if multi {
		return filepath.Join(opts.output, defaultFile)
	}
	if filepath.Ext(opts.output) == "" {
		return opts.output + ext
	}
	return opts.output
}
