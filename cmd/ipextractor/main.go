package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/ipextractor/internal/adapters/fs"
	"github.com/bft-labs/ipextractor/internal/adapters/metrics"
	"github.com/bft-labs/ipextractor/internal/cliconfig"
	"github.com/bft-labs/ipextractor/pkg/ipextractor"
	"github.com/bft-labs/ipextractor/pkg/log"
)

const helpBanner = `
 ___ ____    _____      _                  _             
|_ _|  _ \  | ____|_  _| |_ _ __ __ _  ___| |_ ___  _ __ 
 | || |_) | |  _| \ \/ / __| '__/ _' |/ __| __/ _ \| '__|
 | ||  __/  | |___ >  <| |_| | | (_| | (__| || (_) | |   
|___|_|     |_____/_/\_\\__|_|  \__,_|\___|\__\___/|_|   
`

const helpDescription = `
Find the public IPv4 addresses mentioned in a PDF document.

Highlights:
  - Reads the text of every page and matches dotted-quad addresses.
  - Drops private, loopback, link-local, multicast and reserved ranges.
  - Writes <name>_ips.txt, plus CSV and JSON on request, sorted by octet.
  - Watches a directory and processes new or changed PDFs.
`

const infoText = `
IP Extractor scans the text layer of a PDF for IPv4 literals. Every
candidate is validated (four octets, 0-255 each) and classified; only
globally routable addresses are kept. Duplicates are removed and the
result is sorted numerically, so 9.9.9.9 comes before 10.0.0.1.

Output files are written next to the source document unless
--output-dir is set:
  <name>_ips.txt   one address per line
  <name>_ips.csv   header "IPv4 Address", one address per row (--csv)
  <name>_ips.json  {"ips": [...]} with 4-space indent (--json)

Scanned PDFs without a text layer yield no addresses.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  ipextractor -e report.pdf
  ipextractor -e report.pdf --csv --json --output-dir ./out
  ipextractor watch ./inbox --json --metrics-file /var/lib/node_exporter/ipextractor.prom
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// changedFlags returns the names of flags set on the command line.
func changedFlags(cmd *cobra.Command) map[string]bool {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}

// loadConfig applies the config file and environment on top of flags.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	if cfgPath == "" {
		cfgPath = cliconfig.DefaultConfigPath()
	}
	if err := cliconfig.Load(cfg, cfgPath, changedFlags(cmd)); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// newExtractor builds the library instance shared by both commands.
func newExtractor(cfg cliconfig.Config, zl zerolog.Logger, m *metrics.PrometheusMetrics) *ipextractor.Extractor {
	return ipextractor.New(
		ipextractor.WithLogger(log.NewZerologAdapterWithLogger(zl)),
		ipextractor.WithMetrics(m),
		ipextractor.WithCSV(cfg.CSV),
		ipextractor.WithJSON(cfg.JSON),
		ipextractor.WithOutputDir(cfg.OutputDir),
		ipextractor.WithWorkers(cfg.Workers),
		ipextractor.WithDebounce(cfg.Debounce),
	)
}

func writeMetrics(cfg cliconfig.Config, m *metrics.PrometheusMetrics, zl zerolog.Logger) {
	if cfg.MetricsFile == "" {
		return
	}
	if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
		zl.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("failed to write metrics")
	}
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var showInfo bool

	logger, _ := log.NewConsole(os.Stderr, cfg.LogLevel)

	// setup finishes configuration and returns the configured logger and metrics.
	setup := func(cmd *cobra.Command) (zerolog.Logger, *metrics.PrometheusMetrics, error) {
		if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
			return logger, nil, err
		}
		if err := cfg.Validate(); err != nil {
			return logger, nil, err
		}
		zl, err := log.NewConsole(os.Stderr, cfg.LogLevel)
		if err != nil {
			return logger, nil, err
		}
		logger = zl
		m, err := metrics.New()
		if err != nil {
			return zl, nil, fmt.Errorf("create metrics: %w", err)
		}
		return zl, m, nil
	}

	root := &cobra.Command{
		Use:           "ipextractor",
		Short:         "Find the public IPv4 addresses mentioned in a PDF document",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showInfo {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(helpBanner))
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(infoText))
				return nil
			}
			if cfg.Extract == "" && len(args) == 0 {
				return cmd.Help()
			}
			if cfg.Extract == "" {
				cfg.Extract = args[0]
			}

			zl, m, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateExtract(); err != nil {
				return err
			}
			defer writeMetrics(cfg, m, zl)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := newExtractor(cfg, zl, m).ExtractFile(ctx, cfg.Extract)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !report.Found() {
				fmt.Fprintln(out, "no public IP addresses found")
				return nil
			}
			for _, f := range report.Files {
				fmt.Fprintf(out, "saved %s\n", f)
			}
			fmt.Fprintf(out, "found %d unique public IP addresses\n", report.Count())
			return nil
		},
	}
	root.Args = cobra.MaximumNArgs(1)

	watch := &cobra.Command{
		Use:   "watch DIR",
		Short: "Process every PDF in a directory and watch it for new or changed documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zl, m, err := setup(cmd)
			if err != nil {
				return err
			}
			defer writeMetrics(cfg, m, zl)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			zl.Info().Str("dir", args[0]).Msg("watching for documents")
			err = newExtractor(cfg, zl, m).Watch(ctx, args[0], cfg.StateFile)
			if errors.Is(err, context.Canceled) {
				zl.Info().Msg("received signal, stopping...")
				return nil
			}
			return err
		},
	}

	// Flags shared by both commands
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.ipextractor/config.toml)")
	pf.BoolVarP(&cfg.CSV, "csv", "c", cfg.CSV, "also write <name>_ips.csv")
	pf.BoolVarP(&cfg.JSON, "json", "j", cfg.JSON, "also write <name>_ips.json")
	pf.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for output files (defaults to the source directory)")
	pf.IntVar(&cfg.Workers, "workers", cfg.Workers, "pages scanned concurrently")
	pf.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this textfile on exit")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.Flags().StringVarP(&cfg.Extract, "extract", "e", cfg.Extract, "PDF document to scan")
	root.Flags().BoolVarP(&showInfo, "info", "i", false, "show information about the tool")

	watch.Flags().StringVar(&cfg.StateFile, "state-file", cfg.StateFile, "processed-document state file (defaults to DIR/"+fs.DefaultStateFileName+")")
	watch.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after the last write before a document is processed")

	root.AddCommand(watch)

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("ipextractor")
		os.Exit(1)
	}
}
