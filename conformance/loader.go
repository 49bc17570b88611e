package conformance

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the conformance suites (relative to conformance/)
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests finds the suite directory and loads every test case in it
func LoadAllTests() ([]LoadedTest, error) {
	// Tests run from conformance/, the CLI usually from the repository root
	candidates := []string{
		TestPath,
		filepath.Join("conformance", TestPath),
		filepath.Join("..", "conformance", TestPath),
	}

	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return LoadTests(abs)
		}
	}
	return nil, fmt.Errorf("could not find conformance test directory (tried %v)", candidates)
}

// LoadTests walks dir and loads the test cases of every .yaml file in it
func LoadTests(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		relPath, _ := filepath.Rel(dir, path)
		suite, err := loadTestFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", relPath, err)
		}
		for _, test := range suite.Tests {
			loaded = append(loaded, LoadedTest{
				File:  filepath.ToSlash(relPath),
				Suite: *suite,
				Test:  test,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadTestFile parses a single YAML file. Unknown keys are rejected so a
// misspelt field cannot silently drop an expectation.
func loadTestFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var suite TestSuite
	if err := dec.Decode(&suite); err != nil {
		return nil, err
	}
	for i := range suite.Tests {
		if err := suite.Tests[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &suite, nil
}
