package conformance

import (
	"fmt"
	"strings"
)

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single access call and its expected outcome
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Op          string      `yaml:"op"`             // extract|replace
	Subscript   bool        `yaml:"subscript,omitempty"`
	Exact       *bool       `yaml:"exact,omitempty"`  // extract only, default true
	Drop        *bool       `yaml:"drop,omitempty"`   // extract only, default true
	Shared      bool        `yaml:"shared,omitempty"` // target has a second owner
	Target      ValueSpec   `yaml:"target"`
	Positions   []ValueSpec `yaml:"positions,omitempty"`
	Value       *ValueSpec  `yaml:"value,omitempty"` // replace only
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test
type Expectation struct {
	Value   *ValueSpec `yaml:"value,omitempty"`   // exact match
	Error   string     `yaml:"error,omitempty"`   // E_SUBSCRIPT_BOUNDS, etc.
	Message string     `yaml:"message,omitempty"` // substring of the error text
	Warning string     `yaml:"warning,omitempty"` // warning raised on success
}

// ValueSpec describes a value in YAML. A null entry in values or names is NA.
type ValueSpec struct {
	Type     string        `yaml:"type"` // NULL|missing|logical|integer|double|character|raw|list
	Values   []interface{} `yaml:"values,omitempty"`
	Elements []ValueSpec   `yaml:"elements,omitempty"`
	Names    []interface{} `yaml:"names,omitempty"`
	Dim      []int         `yaml:"dim,omitempty"`
	DimNames [][]string    `yaml:"dimnames,omitempty"`
	Labels   []string      `yaml:"labels,omitempty"`
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}

// Call renders the access the way the host would print the call site
func (tc *TestCase) Call() string {
	args := make([]string, len(tc.Positions))
	for i, p := range tc.Positions {
		if p.Type == "missing" {
			continue
		}
		args[i] = fmt.Sprintf("i%d", i+1)
	}
	lb, rb := "[", "]"
	if tc.Subscript {
		lb, rb = "[[", "]]"
	}
	call := "x" + lb + strings.Join(args, ", ") + rb
	if tc.Op == "replace" {
		call += " <- value"
	}
	return call
}

// Validate checks the fields a runnable test needs
func (tc *TestCase) Validate() error {
	if tc.Name == "" {
		return fmt.Errorf("test has no name")
	}
	switch tc.Op {
	case "extract":
		if tc.Value != nil {
			return fmt.Errorf("%s: extract takes no value", tc.Name)
		}
	case "replace":
		if tc.Value == nil {
			return fmt.Errorf("%s: replace needs a value", tc.Name)
		}
		if tc.Exact != nil || tc.Drop != nil {
			return fmt.Errorf("%s: exact and drop only apply to extract", tc.Name)
		}
	default:
		return fmt.Errorf("%s: unknown op %q", tc.Name, tc.Op)
	}
	if tc.Expect.Value == nil && tc.Expect.Error == "" {
		return fmt.Errorf("%s: no expectation", tc.Name)
	}
	if tc.Expect.Value != nil && tc.Expect.Error != "" {
		return fmt.Errorf("%s: expects both a value and an error", tc.Name)
	}
	return nil
}
