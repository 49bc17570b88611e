package conformance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"rvec/access"
	"rvec/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests
type Runner struct {
	logger *slog.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger makes the runner log every test outcome at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a new test runner
func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	result := r.run(test)
	switch {
	case result.Skipped:
		r.logger.Debug("test skipped", "file", test.File, "test", test.Test.Name, "reason", result.SkipReason)
	case result.Passed:
		r.logger.Debug("test passed", "file", test.File, "test", test.Test.Name)
	default:
		r.logger.Debug("test failed", "file", test.File, "test", test.Test.Name, "error", result.Error)
	}
	return result
}

func (r *Runner) run(test LoadedTest) TestResult {
	tc := test.Test
	if skipped, reason := tc.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}
	fail := func(err error) TestResult {
		return TestResult{Test: test, Passed: false, Error: err}
	}

	target, err := tc.Target.Build()
	if err != nil {
		return fail(fmt.Errorf("target: %w", err))
	}
	positions := make([]types.Value, len(tc.Positions))
	for i, spec := range tc.Positions {
		if positions[i], err = spec.Build(); err != nil {
			return fail(fmt.Errorf("position %d: %w", i+1, err))
		}
	}
	if tc.Shared {
		vec := types.AsVector(target)
		if vec == nil {
			return fail(fmt.Errorf("shared: target %s is not a vector", target))
		}
		vec.IncRef().IncRef()
	}

	ctx := types.NewAccessContext(tc.Call())
	var got types.Value
	var callErr error
	switch tc.Op {
	case "extract":
		got, callErr = access.Extract(ctx, target, positions, tc.extractOptions())
	case "replace":
		value, err := tc.Value.Build()
		if err != nil {
			return fail(fmt.Errorf("value: %w", err))
		}
		got, callErr = access.Replace(ctx, target, positions, value, access.ReplaceOptions{Subscript: tc.Subscript})
	default:
		return fail(fmt.Errorf("unknown op %q", tc.Op))
	}

	if err := checkExpectation(tc, ctx, got, callErr); err != nil {
		return fail(err)
	}
	if tc.Shared {
		// a shared target must come through any write untouched
		orig, _ := tc.Target.Build()
		if !orig.Equal(target) {
			return fail(fmt.Errorf("shared target modified: %s", target))
		}
	}
	return TestResult{Test: test, Passed: true}
}

func (tc *TestCase) extractOptions() access.ExtractOptions {
	opts := access.SubsetOptions()
	if tc.Subscript {
		opts = access.SubscriptOptions()
	}
	if tc.Exact != nil {
		opts.Exact = *tc.Exact
	}
	if tc.Drop != nil {
		opts.Drop = *tc.Drop
	}
	return opts
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// RunParallel executes the tests of each suite file on its own goroutine,
// at most limit files at a time (limit < 1 means no limit). Results keep the
// order of tests. Cancelling ctx stops files that have not started.
func (r *Runner) RunParallel(ctx context.Context, tests []LoadedTest, limit int) ([]TestResult, error) {
	byFile := make(map[string][]int)
	var files []string
	for i, test := range tests {
		if _, seen := byFile[test.File]; !seen {
			files = append(files, test.File)
		}
		byFile[test.File] = append(byFile[test.File], i)
	}

	results := make([]TestResult, len(tests))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, file := range files {
		indices := byFile[file]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, i := range indices {
				results[i] = r.Run(tests[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks if the outcome of a call matches the expected one
func checkExpectation(tc TestCase, ctx *types.AccessContext, got types.Value, callErr error) error {
	expect := tc.Expect

	// Check for expected error
	if expect.Error != "" {
		expectedErr, ok := types.ErrorFromString(expect.Error)
		if !ok {
			return fmt.Errorf("unknown error code: %s", expect.Error)
		}
		if callErr == nil {
			return fmt.Errorf("expected error %s, got value: %s", expect.Error, got)
		}
		var e *types.Error
		if !errors.As(callErr, &e) {
			return fmt.Errorf("expected error %s, got %v", expect.Error, callErr)
		}
		if e.Code != expectedErr {
			return fmt.Errorf("expected error %s, got %s (%v)", expect.Error, e.Code, callErr)
		}
		if expect.Message != "" && !strings.Contains(callErr.Error(), expect.Message) {
			return fmt.Errorf("expected message containing %q, got %q", expect.Message, callErr.Error())
		}
		return nil
	}

	// Check for normal result
	if callErr != nil {
		return fmt.Errorf("unexpected error: %v", callErr)
	}
	expected, err := expect.Value.Build()
	if err != nil {
		return fmt.Errorf("failed to convert expected value: %w", err)
	}
	if got == nil || !expected.Equal(got) {
		return fmt.Errorf("expected %s, got %v", expected, got)
	}

	if expect.Warning != "" {
		code, ok := types.ErrorFromString(expect.Warning)
		if !ok {
			return fmt.Errorf("unknown warning code: %s", expect.Warning)
		}
		if !ctx.HasWarning(code) {
			return fmt.Errorf("expected warning %s, got %v", expect.Warning, ctx.Warnings)
		}
	} else if len(ctx.Warnings) > 0 {
		return fmt.Errorf("unexpected warning: %v", ctx.Warnings[0])
	}
	return nil
}
