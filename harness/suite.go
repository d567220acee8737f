package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-numkernel/exports"
)

// ErrInvalidSuite is returned when a suite file is malformed or refers to
// exports and values that do not exist.
var ErrInvalidSuite = errors.New("harness: invalid suite")

// Suite is a named list of cases.
type Suite struct {
	// Name identifies the suite in reports.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description,omitempty"`

	// Cases run in any order but are reported in file order.
	Cases []Case `yaml:"cases"`
}

// Case is one export invocation with its expected result.
type Case struct {
	Name string `yaml:"name"`

	// Export is the export name, e.g. "loopedArithmeticI64Benchmark".
	Export string `yaml:"export"`

	// Args are parsed with exports.ParseValue using the export's parameter types.
	Args []string `yaml:"args"`

	// Want is parsed with the export's result type.
	Want string `yaml:"want"`

	// Tolerance is the allowed relative error for float results.
	// Zero requires identical bits. Integer cases must leave it zero.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// check is a validated case ready to run.
type check struct {
	Case
	export exports.Export
	args   []exports.Value
	want   exports.Value
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	s, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSuite decodes and validates a suite. Unknown YAML fields are rejected.
func ParseSuite(data []byte) (*Suite, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}
	if _, err := s.compile(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem in the suite, joined into one error.
func (s *Suite) Validate() error {
	_, err := s.compile()
	return err
}

func (s *Suite) compile() ([]check, error) {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("suite name is required"))
	}
	if len(s.Cases) == 0 {
		errs = append(errs, errors.New("suite has no cases"))
	}

	seen := make(map[string]bool, len(s.Cases))
	checks := make([]check, 0, len(s.Cases))
	for i, c := range s.Cases {
		chk, err := compileCase(c)
		if err != nil {
			errs = append(errs, fmt.Errorf("case %d (%q): %w", i, c.Name, err))
			continue
		}
		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("case %d (%q): duplicate name", i, c.Name))
			continue
		}
		seen[c.Name] = true
		checks = append(checks, chk)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSuite, errors.Join(errs...))
	}
	return checks, nil
}

func compileCase(c Case) (check, error) {
	if c.Name == "" {
		return check{}, errors.New("name is required")
	}
	e, ok := exports.Lookup(c.Export)
	if !ok {
		return check{}, fmt.Errorf("%w: %q", exports.ErrUnknownExport, c.Export)
	}
	args, err := e.ParseArgs(c.Args)
	if err != nil {
		return check{}, err
	}
	want, err := exports.ParseValue(e.Sig.Result, c.Want)
	if err != nil {
		return check{}, fmt.Errorf("want: %w", err)
	}
	if c.Tolerance < 0 {
		return check{}, fmt.Errorf("tolerance %g is negative", c.Tolerance)
	}
	if c.Tolerance != 0 && e.Sig.Result == exports.I64 {
		return check{}, errors.New("tolerance is only allowed for float results")
	}
	return check{Case: c, export: e, args: args, want: want}, nil
}
