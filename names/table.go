package names

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Table resolves names with user overrides consulted before the built-in
// defaults. A nil *Table is valid and resolves to the defaults alone.
type Table struct {
	libraries map[int]string
	sections  map[int]string
}

// tomlNames is the on-disk shape. TOML keys are strings, so the numeric
// identifiers arrive quoted and are converted after decoding.
type tomlNames struct {
	Libraries map[string]string `toml:"libraries"`
	Sections  map[string]string `toml:"sections"`
}

// Load reads name overrides from a TOML file with optional [libraries] and
// [sections] tables keyed by the numeric identifier:
//
//	[sections]
//	452 = "nu-bar (total)"
func Load(path string) (*Table, error) {
	var cfg tomlNames
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	t := &Table{}
	var err error
	if t.libraries, err = intKeyed(cfg.Libraries); err != nil {
		return nil, fmt.Errorf("%s: [libraries]: %w", path, err)
	}
	if t.sections, err = intKeyed(cfg.Sections); err != nil {
		return nil, fmt.Errorf("%s: [sections]: %w", path, err)
	}
	return t, nil
}

func intKeyed(in map[string]string) (map[int]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[int]string, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("key %q is not an integer", k)
		}
		out[n] = v
	}
	return out, nil
}

// Library resolves a library identifier, preferring overrides.
func (t *Table) Library(nlib int) string {
	if t != nil {
		if name, ok := t.libraries[nlib]; ok {
			return name
		}
	}
	return Library(nlib)
}

// MT resolves a section number, preferring overrides.
func (t *Table) MT(mt int) string {
	if t != nil {
		if name, ok := t.sections[mt]; ok {
			return name
		}
	}
	return MT(mt)
}
