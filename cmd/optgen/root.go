package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"optgen/internal/analyze"
	"optgen/internal/config"
	"optgen/internal/logging"
	"optgen/internal/options"
	"optgen/internal/pipeline"
	"optgen/internal/schema"
)

var errHasDiagnostics = errors.New("directive errors found")

// app carries state shared by all subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	schemaFile string

	cfg    *config.Config
	logger *zap.Logger
}

// source is one batch of containers and where its generated code goes.
type source struct {
	pkgName string
	dir     string
	inputs  []options.ContainerInput
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "optgen",
		Short: "Resolve option directives and generate parsers",
		Long: `optgen reads containers annotated with //optgen: comments and opt:"..."
struct tags (or declared in a YAML schema), resolves their directives,
and generates a Parse<Container>(map[string]any) function for each.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./.optgen.yaml)")
	flags.StringVar(&a.schemaFile, "schema", "", "read containers from a YAML schema instead of Go packages")
	flags.String("tag", "", "struct tag key holding field directives (default \"opt\")")
	flags.String("prefix", "", "comment prefix marking containers (default \"optgen:\")")
	flags.Int("workers", 0, "containers resolved concurrently (default GOMAXPROCS)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")

	a.bindFlag(flags, config.KeyTag, "tag")
	a.bindFlag(flags, config.KeyPrefix, "prefix")
	a.bindFlag(flags, config.KeyWorkers, "workers")
	a.bindFlag(flags, config.KeyLogLevel, "log-level")
	a.bindFlag(flags, config.KeyLogFormat, "log-format")

	root.AddCommand(a.newResolveCmd(), a.newCheckCmd(), a.newGenCmd())

	return root
}

// bindFlag binds a flag to a config key. Unset flags do not override
// lower-precedence sources.
func (a *app) bindFlag(flags *pflag.FlagSet, key, name string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
	}
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if cfg.ConfigFile != "" {
		logger.Debug("Using config file", zap.String("path", cfg.ConfigFile))
	}

	return nil
}

// load reads containers from the schema file or the given package patterns.
func (a *app) load(args []string) ([]source, error) {
	if a.schemaFile != "" {
		if len(args) > 0 {
			return nil, errors.New("package patterns cannot be combined with --schema")
		}

		f, err := schema.LoadFile(a.schemaFile)
		if err != nil {
			return nil, err
		}

		return []source{{
			pkgName: f.Package,
			dir:     filepath.Dir(a.schemaFile),
			inputs:  f.Inputs(),
		}}, nil
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	analyzer := analyze.NewAnalyzer(analyze.Config{Tag: a.cfg.Tag, Prefix: a.cfg.Prefix})

	pkgs, err := analyzer.LoadPackages(args...)
	if err != nil {
		return nil, err
	}

	sources := make([]source, 0, len(pkgs))
	for _, pkg := range pkgs {
		a.logger.Debug("Loaded package",
			zap.String("package", pkg.Path),
			zap.Int("containers", len(pkg.Containers)))

		sources = append(sources, source{pkgName: pkg.Name, dir: pkg.Dir, inputs: pkg.Containers})
	}

	return sources, nil
}

// resolveAll resolves and checks every source, keeping results aligned with
// sources.
func (a *app) resolveAll(ctx context.Context, sources []source) ([]*pipeline.Result, error) {
	p := pipeline.New(a.cfg.Workers, a.logger)

	results := make([]*pipeline.Result, len(sources))
	for i, src := range sources {
		result, err := p.Resolve(ctx, src.inputs)
		if err != nil {
			return nil, err
		}

		p.Check(result)
		results[i] = result
	}

	return results, nil
}
