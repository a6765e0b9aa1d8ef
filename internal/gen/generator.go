package gen

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"matprop-generator/internal/description"
)

// GeneratedFile represents one generated artifact.
type GeneratedFile struct {
	// Filename is the path relative to the output directory
	// (e.g., "include/UO2_YoungModulus-cxx.hxx").
	Filename string
	// Content is the artifact text.
	Content []byte
}

// Generator turns material property descriptions into header and source
// artifacts for one interface configuration.
type Generator struct {
	config InterfaceConfig
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-artifact debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config InterfaceConfig, opts ...Option) *Generator {
	g := &Generator{config: config, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Config returns the interface configuration of g.
func (g *Generator) Config() InterfaceConfig {
	return g.config
}

// Generate validates the configuration and the description, then emits the
// header followed by the source. An invalid description wraps
// diagnostic.ErrInvalid, a signature or type the interface cannot express
// wraps ErrConfiguration. On error no file is returned.
func (g *Generator) Generate(mp *description.MaterialProperty, fd description.FileDescription) ([]GeneratedFile, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	mp = description.WithDefaults(mp)

	if _, err := planFor(mp, g.config); err != nil {
		return nil, err
	}

	header, err := EmitDeclaration(mp, fd, g.config)
	if err != nil {
		return nil, fmt.Errorf("generating declaration of %s: %w", g.config.FunctionName(mp), err)
	}

	source, err := EmitDefinition(mp, fd, g.config)
	if err != nil {
		return nil, fmt.Errorf("generating definition of %s: %w", g.config.FunctionName(mp), err)
	}

	if ce := g.logger.Check(zap.DebugLevel, "generated material property"); ce != nil {
		plan, _ := planFor(mp, g.config)
		ce.Write(
			zap.String("interface", g.config.Name),
			zap.String("symbol", g.config.FunctionName(mp)),
			zap.Int("functions", len(plan.Callable())),
			zap.Int("check_bounds", len(plan.CheckBounds)),
			zap.Int("fragments", len(CompileInputBounds(mp.Inputs))),
		)
	}

	return []GeneratedFile{
		{Filename: g.config.HeaderPath(mp), Content: []byte(header)},
		{Filename: g.config.SourcePath(mp), Content: []byte(source)},
	}, nil
}

// GenerateAll generates every document with at most jobs concurrent
// generations (unlimited when jobs <= 0). Files are returned in document
// order. The first error cancels the remaining work.
func (g *Generator) GenerateAll(ctx context.Context, docs []*description.Document, jobs int) ([]GeneratedFile, error) {
	results := make([][]GeneratedFile, len(docs))

	eg, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}

	for i, doc := range docs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files, err := g.Generate(&doc.MaterialProperty, doc.File)
			if err != nil {
				if doc.File.Source != "" {
					return fmt.Errorf("%s: %w", doc.File.Source, err)
				}

				return err
			}

			results[i] = files

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var files []GeneratedFile
	for _, r := range results {
		files = append(files, r...)
	}

	return files, nil
}
