// Package main provides the skosdoc binary entry point.
// Skosdoc renders a SKOS vocabulary in Turtle as a static HTML page.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/skosdoc/config"
	"github.com/c360studio/skosdoc/export"
	"github.com/c360studio/skosdoc/generator"
	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/patch"
	"github.com/c360studio/skosdoc/watch"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "skosdoc"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(exitUsage)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// app carries the state shared by the root command and its subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	configPath string
	logLevel   string
	logFile    string

	logger  *slog.Logger
	closeFn func() error
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, getenv: os.Getenv}
	defer a.close()

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", oneLine(err))
		return exitCode(err)
	}
	return exitOK
}

func (a *app) rootCmd() *cobra.Command {
	var (
		templatePath string
		strategy     string
		markdownPath string
		metricsFile  string
		watchMode    bool
	)

	cmd := &cobra.Command{
		Use:   "skosdoc [input] [output]",
		Short: "Generate an HTML documentation page from a SKOS vocabulary",
		Long: `Skosdoc loads a SKOS vocabulary written in Turtle, extracts its concept
scheme, classes and concepts, and renders them as a single static HTML page.

Input and output default to the values in skosdoc.yaml, or eLTER_DRF.ttl and
docs/index.html when no config file is present.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(func(cfg *config.Config) {
				if len(args) > 0 {
					cfg.Input = args[0]
				}
				if len(args) > 1 {
					cfg.Output = args[1]
				}
				if cmd.Flags().Changed("template") {
					cfg.Template = templatePath
				}
				if cmd.Flags().Changed("strategy") {
					cfg.ClassStrategy = strategy
				}
				if cmd.Flags().Changed("markdown") {
					cfg.MarkdownOutput = markdownPath
				}
				if cmd.Flags().Changed("metrics-file") {
					cfg.MetricsFile = metricsFile
				}
			})
			if err != nil {
				return err
			}
			return a.generate(cmd.Context(), cfg, watchMode)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Page template (html/template syntax)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Class strategy (collection, top-concept)")
	cmd.Flags().StringVar(&markdownPath, "markdown", "", "Also write a Markdown rendition of the page")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write run metrics in Prometheus textfile format")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Regenerate when the vocabulary or template changes")

	cmd.AddCommand(
		a.versionCmd(),
		a.dumpCmd(),
		a.patchCmd(),
		a.initConfigCmd(),
	)

	return cmd
}

// generate runs the pipeline once, then keeps regenerating in watch mode.
func (a *app) generate(ctx context.Context, cfg *config.Config, watchMode bool) error {
	gen := generator.New(cfg, a.logger)

	runOnce := func(ctx context.Context) error {
		result, err := gen.Run(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("Generated documentation",
			"output", result.Output,
			"classes", result.Stats.Classes,
			"concepts", result.Stats.Concepts,
			"duration", result.Stats.Duration)
		fmt.Fprintf(a.stdout, "HTML written to %s\n", result.Output)
		return nil
	}

	if !watchMode {
		return runOnce(ctx)
	}

	w, err := watch.New(cfg.Watch,
		[]string{cfg.Input, cfg.Template},
		[]string{cfg.Output, cfg.MarkdownOutput, cfg.MetricsFile},
		a.logger)
	if err != nil {
		return err
	}
	if err := runOnce(ctx); err != nil {
		a.logger.Error("Generation failed", "error", err)
	}
	return w.Run(ctx, runOnce)
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump [input]",
		Short: "Print the loaded triples in document order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(func(cfg *config.Config) {
				if len(args) > 0 {
					cfg.Input = args[0]
				}
			})
			if err != nil {
				return err
			}

			if _, ok := export.GetFormatInfo(export.Format(format)); !ok {
				return usageErrorf("unknown format %q", format)
			}

			store, err := graph.Load(cfg.Input)
			if err != nil {
				return err
			}

			exporter := export.NewExporter()
			for _, ns := range cfg.Namespaces {
				exporter.SetPrefix(ns.Prefix, ns.IRI)
			}
			out, err := exporter.Export(store, export.Format(format))
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatNTriples), "Output format (turtle, ntriples, jsonld)")
	return cmd
}

func (a *app) patchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch-prefixes",
		Short: "Insert the puv:uom declaration into ./$FILE_NAME.ttl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := patch.PathFromEnv(a.getenv)
			if err != nil {
				return usageError{err}
			}
			outcome, err := patch.File(path, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s: %s\n", path, outcome)
			return nil
		},
	}
}

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration to ./" + config.ProjectConfigFile,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.NewLoader(a.logger).WriteProjectConfig(".")
			if err != nil {
				return usageError{err}
			}
			fmt.Fprintf(a.stdout, "Config written to %s\n", path)
			return nil
		},
	}
}

// loadConfig loads the layered configuration, applies command-line
// overrides and validates the result.
func (a *app) loadConfig(override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.NewLoader(a.logger).Load(a.configPath)
	if err != nil {
		return nil, usageErrorf("load config: %w", err)
	}
	override(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, usageErrorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
