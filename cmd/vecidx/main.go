// Command vecidx runs the element access conformance suites.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"rvec/config"
	"rvec/conformance"
	"rvec/trace"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	suiteDir := flag.String("suite", "", "Directory of YAML suites (default: search conformance/testdata)")
	run := flag.String("run", "", "Only run tests whose file:name contains this string")
	parallel := flag.Int("parallel", 0, "Suite files to run at once (0 runs serially)")
	listOnly := flag.Bool("list", false, "List the selected tests without running them")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Enable access tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob over ops, e.g., 'subset*')")

	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags that were set win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "suite":
			cfg.SuiteDir = *suiteDir
		case "run":
			cfg.Run = *run
		case "parallel":
			cfg.Parallel = *parallel
		case "log-level":
			cfg.LogLevel = *logLevel
		case "trace":
			cfg.Trace.Enabled = *traceEnabled
		case "trace-filter":
			cfg.Trace.Filters = trace.ParseFilters(*traceFilter)
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.Trace.Enabled {
		trace.Init(true, cfg.Trace.Filters, os.Stderr)
		logger.Info("tracing enabled", "filters", cfg.Trace.Filters)
	} else {
		trace.Init(false, nil, nil)
	}

	tests, err := load(cfg.SuiteDir)
	if err != nil {
		log.Fatalf("Failed to load tests: %v", err)
	}
	tests = selectTests(tests, cfg.Run)
	logger.Info("loaded tests", "count", len(tests))

	if *listOnly {
		for _, test := range tests {
			fmt.Printf("%s:%s\t%s\n", test.File, test.Test.Name, test.Test.Call())
		}
		return
	}

	runner := conformance.NewRunner(conformance.WithLogger(logger))
	var results []conformance.TestResult
	if cfg.Parallel > 0 {
		results, err = runner.RunParallel(context.Background(), tests, cfg.Parallel)
		if err != nil {
			log.Fatalf("Run failed: %v", err)
		}
	} else {
		results = runner.RunAll(tests)
	}

	for _, r := range results {
		if !r.Passed && !r.Skipped {
			fmt.Printf("FAIL %s:%s %s: %v\n", r.Test.File, r.Test.Test.Name, r.Test.Test.Call(), r.Error)
		}
	}
	stats := conformance.ComputeStats(results)
	fmt.Println(conformance.FormatStats(stats))
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func load(dir string) ([]conformance.LoadedTest, error) {
	if dir == "" {
		return conformance.LoadAllTests()
	}
	return conformance.LoadTests(dir)
}

// selectTests keeps the tests whose file:name contains pattern
func selectTests(tests []conformance.LoadedTest, pattern string) []conformance.LoadedTest {
	if pattern == "" {
		return tests
	}
	var selected []conformance.LoadedTest
	for _, test := range tests {
		if strings.Contains(test.File+":"+test.Test.Name, pattern) {
			selected = append(selected, test)
		}
	}
	return selected
}
