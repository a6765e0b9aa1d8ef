// Package main provides the CLI entrypoint for matprop-generator.
//
// matprop-generator reads material property descriptions (YAML or HCL) and
// emits C/C++ headers and sources exposing each law through flat entry
// points, a check-bounds function and introspection symbols.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"matprop-generator/internal/description"
	"matprop-generator/internal/diagnostic"
	"matprop-generator/internal/gen"
	"matprop-generator/internal/stamp"
	"matprop-generator/internal/watch"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "matprop-generator",
		Short:   "Generate C/C++ material property libraries from declarative descriptions",
		Version: stamp.VersionNumber,
		Long: `matprop-generator turns material property descriptions into C or C++
sources. Each law gets one entry point per floating point representation,
optional unit-checked overloads, a check-bounds function and a block of
introspection symbols.

Descriptions are YAML (.yaml, .yml) or HCL (.hcl) files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newGenerateCmd(),
		a.newWatchCmd(),
		a.newCheckCmd(),
		a.newSymbolsCmd(),
		a.newInterfacesCmd(),
	)

	return root
}

// interfaceFlags are the flags selecting and tuning an interface.
type interfaceFlags struct {
	name              string
	representations   []string
	quantityOverloads bool
	forceCheckBounds  bool
}

func (f *interfaceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "interface", "i", "c++",
		"target interface ("+strings.Join(gen.InterfaceNames(), ", ")+")")
	cmd.Flags().StringSliceVar(&f.representations, "representations", nil,
		"floating point representations to instantiate (default: the interface's)")
	cmd.Flags().BoolVar(&f.quantityOverloads, "quantity-overloads", false,
		"generate unit-checked overloads (default: the interface's)")
	cmd.Flags().BoolVar(&f.forceCheckBounds, "force-check-bounds", false,
		"emit check-bounds functions even for laws without bounds")
}

// config resolves the interface and applies the flags the user set.
func (f *interfaceFlags) config(cmd *cobra.Command) (gen.InterfaceConfig, error) {
	cfg, err := gen.LookupInterface(f.name)
	if err != nil {
		return gen.InterfaceConfig{}, err
	}

	if cmd.Flags().Changed("representations") {
		cfg.Representations = f.representations
	}

	if cmd.Flags().Changed("quantity-overloads") {
		cfg.QuantityOverloads = f.quantityOverloads
	}

	if f.forceCheckBounds {
		cfg.ForceCheckBounds = true
	}

	return cfg, cfg.Validate()
}

// generateFlags are the flags shared by generate and watch.
type generateFlags struct {
	iface   interfaceFlags
	output  string
	jobs    int
	dryRun  bool
	buildID string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	f.iface.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", ".", "output directory")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "maximum number of concurrent generations")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "list the files without writing them")
	cmd.Flags().StringVar(&f.buildID, "build-id", "",
		`build identifier for descriptions without one ("uuid" draws a random one)`)
}

// generate loads, generates and writes the descriptions at paths.
func (a *app) generate(cmd *cobra.Command, g *gen.Generator, f *generateFlags, paths []string) error {
	docs, err := loadAll(paths)
	if err != nil {
		return err
	}

	if f.buildID != "" {
		id := f.buildID
		if id == "uuid" {
			id = uuid.NewString()
		}

		for _, doc := range docs {
			if doc.BuildIdentifier == "" {
				doc.BuildIdentifier = id
			}
		}
	}

	files, err := g.GenerateAll(cmd.Context(), docs, f.jobs)
	if err != nil {
		return err
	}

	if !f.dryRun {
		if err := gen.WriteFiles(files, f.output); err != nil {
			return err
		}
	}

	for _, file := range files {
		fmt.Fprintln(cmd.OutOrStdout(), file.Filename)
	}

	a.logger.Info("generation done",
		zap.String("interface", g.Config().Name),
		zap.Strings("representations", g.Config().Representations),
		zap.Int("descriptions", len(docs)),
		zap.Int("files", len(files)),
		zap.Bool("dry_run", f.dryRun))

	return nil
}

func (a *app) newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [file...]",
		Short: "Generate header and source files for each description",
		Example: `  matprop-generator generate -i c -o build UO2_YoungModulus.yaml
  matprop-generator generate --representations double,float laws/*.hcl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.iface.config(cmd)
			if err != nil {
				return err
			}

			return a.generate(cmd, gen.NewGenerator(cfg, gen.WithLogger(a.logger)), &flags, args)
		},
	}

	flags.register(cmd)

	return cmd
}

func (a *app) newWatchCmd() *cobra.Command {
	var (
		flags    generateFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [file...]",
		Short: "Generate, then regenerate each description when it changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.iface.config(cmd)
			if err != nil {
				return err
			}

			g := gen.NewGenerator(cfg, gen.WithLogger(a.logger))

			if err := a.generate(cmd, g, &flags, args); err != nil {
				a.logger.Error("initial generation failed", zap.Error(err))
			}

			w, err := watch.New(args, debounce, a.logger, func(_ context.Context, paths []string) error {
				return a.generate(cmd, g, &flags, paths)
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return w.Run(ctx)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before regenerating")

	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate descriptions and print diagnostics without generating",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			for _, path := range args {
				doc, err := description.LoadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					failed++

					continue
				}

				res := description.Validate(&doc.MaterialProperty)
				for _, d := range res.All() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s\n", path, severity(cmd.OutOrStdout(), d.Severity), d)
				}

				if res.HasErrors() {
					failed++
					continue
				}

				a.logger.Debug("description is valid", zap.String("path", path))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d descriptions are invalid", failed, len(args))
			}

			return nil
		},
	}
}

func (a *app) newSymbolsCmd() *cobra.Command {
	var (
		iface    interfaceFlags
		variable string
	)

	cmd := &cobra.Command{
		Use:   "symbols [file]",
		Short: "Print the exported names and metadata symbols of a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := iface.config(cmd)
			if err != nil {
				return err
			}

			doc, err := description.LoadFile(args[0])
			if err != nil {
				return err
			}

			mp := &doc.MaterialProperty
			out := cmd.OutOrStdout()

			if variable != "" {
				pos, err := description.ResolveDeclarationPosition(mp, variable)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s %d\n", variable, pos)

				return nil
			}

			fmt.Fprintf(out, "function     %s\n", cfg.FunctionName(mp))
			fmt.Fprintf(out, "check-bounds %s\n", cfg.CheckBoundsFunctionName(mp))
			fmt.Fprintf(out, "header       %s\n", cfg.HeaderPath(mp))
			fmt.Fprintf(out, "source       %s\n", cfg.SourcePath(mp))

			for _, s := range gen.MetadataSymbols(cfg, mp, doc.File) {
				fmt.Fprintf(out, "symbol       %s\n", s.Name)
			}

			return nil
		},
	}

	iface.register(cmd)
	cmd.Flags().StringVar(&variable, "variable", "", "print the 1-based declaration position of this input instead")

	return cmd
}

func (a *app) newInterfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces",
		Short: "List the available interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gen.InterfaceNames() {
				cfg, err := gen.LookupInterface(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%-4s representations=%s overloads=%t extern_c=%t\n",
					name, strings.Join(cfg.Representations, ","), cfg.QuantityOverloads, cfg.ExternC)
			}

			return nil
		},
	}
}

var severityStyles = map[diagnostic.DiagnosticSeverity]lipgloss.Style{
	diagnostic.DiagnosticError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	diagnostic.DiagnosticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	diagnostic.DiagnosticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// severity renders s, colored when w is a terminal.
func severity(w io.Writer, s diagnostic.DiagnosticSeverity) string {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return s.String()
	}

	return severityStyles[s].Render(s.String())
}

func loadAll(paths []string) ([]*description.Document, error) {
	docs := make([]*description.Document, 0, len(paths))

	for _, p := range paths {
		doc, err := description.LoadFile(p)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return docs, nil
}
