package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"optgen/internal/codegen"
	"optgen/internal/config"
	"optgen/internal/diagnostic"
	"optgen/internal/pipeline"
)

// resolvedPackage is the YAML document printed by "resolve".
type resolvedPackage struct {
	Package    string                  `yaml:"package,omitempty"`
	Containers []codegen.ContainerView `yaml:"containers"`
}

func (a *app) newResolveCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "resolve [packages...]",
		Short: "Print resolved containers as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.load(args)
			if err != nil {
				return err
			}

			results, err := a.resolveAll(cmd.Context(), sources)
			if err != nil {
				return err
			}

			for i, result := range results {
				printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)

				doc := resolvedPackage{Package: sources[i].pkgName, Containers: result.Views()}

				if dump {
					spew.Fdump(cmd.OutOrStdout(), doc)
					continue
				}

				if err := writeYAML(cmd.OutOrStdout(), doc); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump Go values instead of YAML")

	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages...]",
		Short: "Report directive errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.load(args)
			if err != nil {
				return err
			}

			results, err := a.resolveAll(cmd.Context(), sources)
			if err != nil {
				return err
			}

			if err := reportFailures(cmd.ErrOrStderr(), results); err != nil {
				return err
			}

			var n int
			for _, r := range results {
				n += len(r.Containers)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d containers\n", n)

			return nil
		},
	}
}

func (a *app) newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate parser functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.load(args)
			if err != nil {
				return err
			}

			results, err := a.resolveAll(cmd.Context(), sources)
			if err != nil {
				return err
			}

			if err := reportFailures(cmd.ErrOrStderr(), results); err != nil {
				return err
			}

			p := pipeline.New(a.cfg.Workers, a.logger)

			for i, result := range results {
				genCfg := codegen.DefaultGeneratorConfig()
				genCfg.OutputDir = sources[i].dir
				if a.cfg.Output != "" {
					genCfg.OutputDir = a.cfg.Output
				}

				if sources[i].pkgName != "" {
					genCfg.PackageName = sources[i].pkgName
				}

				if a.cfg.Package != "" {
					genCfg.PackageName = a.cfg.Package
				}

				files, err := p.Generate(result, genCfg)
				if err != nil {
					return err
				}

				if err := p.Write(files, genCfg.OutputDir); err != nil {
					return err
				}

				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f.Filename)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("package", "", "generated package name (default: the containers' package)")
	cmd.Flags().StringP("output", "o", "", "output directory (default: next to the containers)")
	a.bindFlag(cmd.Flags(), config.KeyPackage, "package")
	a.bindFlag(cmd.Flags(), config.KeyOutput, "output")

	return cmd
}

// reportFailures prints the diagnostics of every result as one sorted list.
func reportFailures(w io.Writer, results []*pipeline.Result) error {
	var all diagnostic.Diagnostics
	for _, r := range results {
		all.Merge(r.Diagnostics)
	}

	all.Sort()
	printDiagnostics(w, all)

	if all.HasErrors() {
		return errHasDiagnostics
	}

	return nil
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return enc.Close()
}
