package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"optgen/internal/codegen"
	"optgen/internal/diagnostic"
	"optgen/internal/options"
)

// Pipeline resolves containers and generates code for them.
type Pipeline struct {
	workers int
	logger  *zap.Logger
}

// New creates a Pipeline resolving at most workers containers at once.
// A nil logger discards output.
func New(workers int, logger *zap.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{workers: workers, logger: logger}
}

// Result is the outcome of resolving a batch.
type Result struct {
	// Containers holds the containers that resolved cleanly, in input order.
	Containers []*options.Container
	// Diagnostics holds every failure, ordered by input then field.
	Diagnostics diagnostic.Diagnostics
}

// Views projects every resolved container.
func (r *Result) Views() []codegen.ContainerView {
	views := make([]codegen.ContainerView, len(r.Containers))
	for i, c := range r.Containers {
		views[i] = codegen.NewContainerView(c)
	}

	return views
}

// Err returns the combined error diagnostics, or nil.
func (r *Result) Err() error {
	return r.Diagnostics.Error()
}

type outcome struct {
	container *options.Container
	err       error
}

// Resolve resolves every input. Container and field failures are reported
// as diagnostics, not as the returned error, which is only set when ctx is
// done before all containers were resolved.
func (p *Pipeline) Resolve(ctx context.Context, inputs []options.ContainerInput) (*Result, error) {
	outcomes := make([]outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := range inputs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c, err := options.ResolveContainer(inputs[i])
			outcomes[i] = outcome{container: c, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving containers: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolving containers: %w", err)
	}

	result := &Result{}

	for i, o := range outcomes {
		in := inputs[i]

		if o.err != nil {
			diags := diagnose(in, o.err)
			for _, d := range diags {
				result.Diagnostics.Add(d)
			}

			p.logger.Debug("Container failed",
				zap.String("container", in.Name),
				zap.Int("errors", len(diags)))

			continue
		}

		result.Containers = append(result.Containers, o.container)

		p.logger.Debug("Container resolved",
			zap.String("container", in.Name),
			zap.String("source", in.Source),
			zap.Int("fields", len(o.container.Fields())))
	}

	p.logger.Info("Resolution finished",
		zap.Int("containers", len(inputs)),
		zap.Int("resolved", len(result.Containers)),
		zap.Int("errors", len(result.Diagnostics.Errors)))

	return result, nil
}

// Check adds an invalid_path diagnostic for every function path of the
// resolved containers that generated code cannot spell.
func (p *Pipeline) Check(result *Result) {
	for _, c := range result.Containers {
		for _, err := range codegen.CheckView(codegen.NewContainerView(c)) {
			result.Diagnostics.Add(pathDiagnostic(c, err))

			p.logger.Debug("Container not generatable",
				zap.String("container", c.Name()),
				zap.Error(err))
		}
	}
}

// Generate projects the resolved containers and renders one file each.
// It fails without rendering when Check would report anything.
func (p *Pipeline) Generate(result *Result, config codegen.GeneratorConfig) ([]codegen.GeneratedFile, error) {
	files, err := codegen.NewGenerator(config).Generate(result.Views())
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		p.logger.Debug("Generated file", zap.String("file", f.Filename), zap.Int("bytes", len(f.Content)))
	}

	return files, nil
}

// Write writes generated files into dir.
func (p *Pipeline) Write(files []codegen.GeneratedFile, dir string) error {
	if err := codegen.WriteFiles(files, dir); err != nil {
		return err
	}

	p.logger.Info("Wrote files", zap.String("dir", dir), zap.Int("count", len(files)))

	return nil
}
