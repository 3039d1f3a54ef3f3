package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/report"
	"sublimation-calc/pkg/api"
	"sublimation-calc/pkg/logger"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

// assignments collects repeated key=value flags.
type assignments []assignment

type assignment struct {
	key   string
	value float64
}

func (a *assignments) String() string {
	parts := make([]string, 0, len(*a))
	for _, v := range *a {
		parts = append(parts, v.key+"="+strconv.FormatFloat(v.value, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(s string) error {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid number for %s: %w", key, err)
	}
	*a = append(*a, assignment{key: strings.TrimSpace(key), value: v})
	return nil
}

type options struct {
	inputFile string
	mode      string
	sets      assignments
	scenario  assignments
	server    string
	token     string
	format    string
	outDir    string
	lang      string
	percent   float64
	timeout   time.Duration
	logLevel  string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log, err := logger.New(opts.logLevel, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	in, scenario, err := buildInputs(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var files map[string][]byte
	if opts.server != "" {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		files, err = remoteReport(ctx, api.NewClient(opts.server, opts.token, log), opts, in, scenario)
	} else {
		files, err = localReport(opts, in, scenario)
	}
	if err != nil {
		return err
	}

	for _, name := range slices.Sorted(maps.Keys(files)) {
		data := files[name]
		path := filepath.Join(opts.outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug("Report written", zap.String("path", path), zap.Int("bytes", len(data)))
		fmt.Fprintln(stdout, path)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sublireport", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.inputFile, "in", "", "JSON file with inputs; missing fields keep their defaults")
	fs.StringVar(&opts.mode, "mode", "", "downtime mode: adjusted or nominal")
	fs.Var(&opts.sets, "set", "override one field, e.g. -set sell_price=5 (repeatable)")
	fs.Var(&opts.scenario, "scenario", "scenario override, e.g. -scenario shifts=2 (repeatable)")
	fs.StringVar(&opts.server, "server", "", "evaluate on a remote API instead of locally")
	fs.StringVar(&opts.token, "token", "", "bearer token for -server")
	fs.StringVar(&opts.format, "format", formatXLSX, "output format: csv or xlsx")
	fs.StringVar(&opts.outDir, "out", ".", "output directory")
	fs.StringVar(&opts.lang, "lang", "", "label language: pt, en or es (identifiers when empty)")
	fs.Float64Var(&opts.percent, "percent", engine.DefaultSensitivityPercent, "sensitivity variation in percent")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for -server requests")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.format = strings.ToLower(opts.format)
	if opts.format != formatCSV && opts.format != formatXLSX {
		return opts, fmt.Errorf("unsupported format %q", opts.format)
	}
	if opts.lang != "" {
		if _, ok := i18n.Parse(opts.lang); !ok {
			return opts, fmt.Errorf("unsupported language %q", opts.lang)
		}
	}
	if err := engine.ValidateSensitivityPercent(opts.percent); err != nil {
		return opts, err
	}
	return opts, nil
}

// buildInputs layers defaults, the input file and -set overrides, then
// validates the result. The scenario is nil unless -scenario was given.
func buildInputs(opts options) (engine.Inputs, *engine.ScenarioInputs, error) {
	in := engine.DefaultInputs()

	if opts.inputFile != "" {
		data, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return in, nil, fmt.Errorf("read inputs: %w", err)
		}
		if err := json.Unmarshal(data, &in); err != nil {
			return in, nil, fmt.Errorf("decode inputs: %w", err)
		}
	}

	if opts.mode != "" {
		mode, ok := engine.ParseDowntimeMode(opts.mode)
		if !ok {
			return in, nil, fmt.Errorf("unsupported downtime mode %q", opts.mode)
		}
		in.Production.DowntimeMode = mode
	}

	for _, a := range opts.sets {
		var err error
		if in, err = engine.SetField(in, a.key, a.value); err != nil {
			return in, nil, err
		}
	}
	if err := engine.Validate(in); err != nil {
		return in, nil, err
	}

	if len(opts.scenario) == 0 {
		return in, nil, nil
	}

	alt := engine.ScenarioFromInputs(in)
	for _, a := range opts.scenario {
		var err error
		if alt, err = engine.SetScenarioField(alt, a.key, a.value); err != nil {
			return in, nil, err
		}
	}
	if err := engine.ValidateScenario(alt); err != nil {
		return in, nil, err
	}
	return in, &alt, nil
}

func localReport(opts options, in engine.Inputs, scenario *engine.ScenarioInputs) (map[string][]byte, error) {
	ro := report.Options{SensitivityPercent: opts.percent, Scenario: scenario}
	if opts.lang != "" {
		ro.Labeler = i18n.For(opts.lang)
	}
	tables := report.Build(engine.Evaluate(in), ro)

	files := make(map[string][]byte)

	if opts.format == formatXLSX {
		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, tables); err != nil {
			return nil, err
		}
		files["sublimation_report.xlsx"] = buf.Bytes()
		return files, nil
	}

	for _, t := range tables {
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, t); err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		files[report.FileName(t, formatCSV)] = buf.Bytes()
	}
	return files, nil
}

func remoteReport(ctx context.Context, c *api.Client, opts options, in engine.Inputs, scenario *engine.ScenarioInputs) (map[string][]byte, error) {
	req := api.ReportRequest{
		Format:   opts.format,
		Lang:     opts.lang,
		Percent:  &opts.percent,
		Scenario: scenario,
	}

	files := make(map[string][]byte)

	if opts.format == formatXLSX {
		data, err := c.Report(ctx, in, req)
		if err != nil {
			return nil, err
		}
		files["sublimation_report.xlsx"] = data
		return files, nil
	}

	for _, name := range report.TableNames(scenario != nil) {
		req.Table = name
		data, err := c.Report(ctx, in, req)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		files[report.FileName(report.Table{Name: name}, formatCSV)] = data
	}
	return files, nil
}
