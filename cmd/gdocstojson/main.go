// Command gdocstojson converts a published Google Sheets document into a
// JSON (or YAML) array of records, once, on an interval, or behind an HTTP
// endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/sheetfeed/config"
	"github.com/kbukum/sheetfeed/httpclient"
	"github.com/kbukum/sheetfeed/logger"
	"github.com/kbukum/sheetfeed/observability"
	"github.com/kbukum/sheetfeed/server"
	"github.com/kbukum/sheetfeed/sheets"
	"github.com/kbukum/sheetfeed/validation"
	"github.com/kbukum/sheetfeed/version"
)

const serviceName = "gdocstojson"

const usage = `gdocstojson - convert a published Google Sheets document to JSON

Usage:	gdocstojson [flags] URL
	gdocstojson --serve [flags]

Example:

   $ gdocstojson https://docs.google.com/spreadsheets/d/1AbC/pubhtml
   [
    {
     "name": "alice",
     "age": "30"
    }
   ]

Flags:
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// flagKeys maps flags to the config keys they override.
var flagKeys = map[string]string{
	"format":    "output.format",
	"indent":    "output.indent",
	"watch":     "output.watch",
	"log-level": "logging.level",
	"timeout":   "http.timeout",
	"port":      "server.port",
}

// newGetter wraps the HTTP client used by the fetcher.
var newGetter = func(c *httpclient.Client) sheets.Getter { return c }

type options struct {
	configFile  string
	serve       bool
	showVersion bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newFlagSet(stderr io.Writer, o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&o.configFile, "config", "", "path to a YAML config file")
	fs.BoolVar(&o.serve, "serve", false, "serve GET /feed instead of converting a single document")
	fs.BoolVar(&o.showVersion, "version", false, "print the version and exit")
	fs.String("format", config.FormatJSON, "output format: json or yaml")
	fs.Int("indent", config.DefaultIndent, "spaces per JSON nesting level, 0 for compact output")
	fs.Duration("watch", 0, "re-fetch and print the document on this interval")
	fs.String("log-level", "", "log level: trace, debug, info, warn or error")
	fs.Duration("timeout", 0, "timeout for each HTTP exchange (default 30s)")
	fs.Int("port", 0, "listen port for --serve (default 8080)")
	return fs
}

// run is the whole program; it returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet(stderr, &o)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if o.showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	v := validation.New()
	if o.serve {
		v.Custom(fs.NArg() == 0, "url", "must not be given with --serve")
	} else {
		v.Custom(fs.NArg() == 1, "url", "exactly one document URL is required")
	}
	if err := v.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
		fs.Usage()
		return exitUsage
	}

	loadOpts := []config.LoaderOption{config.WithFlags(fs, flagKeys)}
	if o.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(o.configFile))
	}
	cfg, err := config.Load(serviceName, loadOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
		return exitUsage
	}

	log := logger.NewWithWriter(&cfg.Logging, serviceName, stderr)
	logger.SetGlobalLogger(log)

	shutdown, err := observability.Init(ctx, cfg.Observability)
	if err != nil {
		log.Error("observability setup failed", logger.ErrorFields("observability.init", err))
		return exitError
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Warn("telemetry flush failed", logger.ErrorFields("observability.shutdown", err))
		}
	}()

	fetcher, err := newFetcher(cfg, log)
	if err != nil {
		log.Error("client setup failed", logger.ErrorFields("httpclient.new", err))
		return exitError
	}

	if o.serve {
		return serve(ctx, cfg, log, fetcher)
	}

	docURL := fs.Arg(0)
	if cfg.Output.Watch > 0 {
		return watch(ctx, cfg, log, fetcher, docURL, stdout)
	}

	records, err := fetcher.FetchFeed(ctx, docURL)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
		return exitError
	}
	if err := writeRecords(stdout, records, cfg.Output); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
		return exitError
	}
	return exitOK
}

func newFetcher(cfg *config.Config, log *logger.Logger) (*sheets.Fetcher, error) {
	metrics, err := observability.NewMetrics(observability.Meter())
	if err != nil {
		return nil, err
	}
	client, err := httpclient.New(cfg.HTTP, httpclient.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return sheets.NewFetcher(newGetter(client),
		sheets.WithLogger(log),
		sheets.WithMetrics(metrics),
	), nil
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, fetcher *sheets.Fetcher) int {
	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(serviceName)
	srv.RegisterFeedRoutes(fetcher)

	if err := srv.Start(ctx); err != nil {
		log.Error("server start failed", logger.ErrorFields("server.start", err))
		return exitError
	}
	<-ctx.Done()

	if err := srv.Stop(context.Background()); err != nil {
		return exitError
	}
	return exitOK
}

// watch prints every successful fetch; failed ticks are logged and the
// loop keeps going until ctx is done.
func watch(ctx context.Context, cfg *config.Config, log *logger.Logger, fetcher *sheets.Fetcher, docURL string, stdout io.Writer) int {
	err := sheets.Watch(ctx, fetcher, docURL, cfg.Output.Watch, func(records []sheets.Record, err error) {
		if err != nil {
			log.WithError(err).Error("fetch failed", logger.Fields(logger.FieldURL, docURL))
			return
		}
		if err := writeRecords(stdout, records, cfg.Output); err != nil {
			log.Error("write failed", logger.ErrorFields("output.write", err))
		}
	})
	if ctx.Err() != nil {
		return exitOK
	}
	log.Error("watch stopped", logger.ErrorFields("sheets.watch", err))
	return exitError
}
