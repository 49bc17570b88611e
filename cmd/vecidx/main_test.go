package main

import (
	"testing"

	"rvec/conformance"
)

func TestSelectTests(t *testing.T) {
	tests := []conformance.LoadedTest{
		{File: "matrix.yaml", Test: conformance.TestCase{Name: "drop_row"}},
		{File: "matrix.yaml", Test: conformance.TestCase{Name: "keep_dims"}},
		{File: "names.yaml", Test: conformance.TestCase{Name: "drop_names"}},
	}
	cases := []struct {
		pattern string
		want    int
	}{
		{"", 3},
		{"matrix", 2},
		{"drop", 2},
		{"matrix.yaml:drop", 1},
		{"absent", 0},
	}
	for _, c := range cases {
		if got := selectTests(tests, c.pattern); len(got) != c.want {
			t.Errorf("selectTests(%q) kept %d tests, want %d", c.pattern, len(got), c.want)
		}
	}
}
