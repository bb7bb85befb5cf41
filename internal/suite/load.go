package suite

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// suiteFile is the YAML shape of a cases file:
//
//	cases:
//	  - name: six-times-seven
//	    a: 6
//	    b: 7
//	    want: 42
type suiteFile struct {
	Cases []fileCase `yaml:"cases"`
}

// fileCase uses a pointer for want so that an omitted expectation is
// distinguishable from an expected product of zero.
type fileCase struct {
	Name string `yaml:"name"`
	A    int    `yaml:"a"`
	B    int    `yaml:"b"`
	Want *int   `yaml:"want"`
}

// Load parses a YAML suite file and returns its cases in file order.
// Every case must carry a non-empty name, unique within the file, and
// an explicit want value.
func Load(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f suiteFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing suite file: %w", err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("suite file defines no cases")
	}

	seen := make(map[string]bool, len(f.Cases))
	cases := make([]Case, 0, len(f.Cases))
	for i, fc := range f.Cases {
		if fc.Name == "" {
			return nil, fmt.Errorf("case %d: missing name", i+1)
		}
		if seen[fc.Name] {
			return nil, fmt.Errorf("case %d: duplicate name %q", i+1, fc.Name)
		}
		seen[fc.Name] = true
		if fc.Want == nil {
			return nil, fmt.Errorf("case %q: missing want", fc.Name)
		}
		cases = append(cases, Case{
			Name: fc.Name,
			A:    fc.A,
			B:    fc.B,
			Want: *fc.Want,
		})
	}

	return cases, nil
}

// LoadFile opens path and loads the suite it contains.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening suite file: %w", err)
	}
	defer f.Close()

	cases, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
