package config

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/ini.v1"
)

// iniParser adapts gopkg.in/ini.v1 to the koanf.Parser interface. Sections
// become nested maps; keys outside any section stay at the top level.
type iniParser struct{}

// INIParser returns a koanf parser for INI documents.
func INIParser() *iniParser {
	return &iniParser{}
}

func (p *iniParser) Unmarshal(b []byte) (map[string]any, error) {
	f, err := ini.Load(b)
	if err != nil {
		return nil, fmt.Errorf("parsing ini: %w", err)
	}

	out := make(map[string]any)

	for _, section := range f.Sections() {
		values := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			values[key.Name()] = key.Value()
		}

		if section.Name() == ini.DefaultSection {
			for k, v := range values {
				out[k] = v
			}

			continue
		}

		out[section.Name()] = values
	}

	return out, nil
}

func (p *iniParser) Marshal(m map[string]any) ([]byte, error) {
	f := ini.Empty()

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		values, ok := m[name].(map[string]any)
		if !ok {
			if _, err := f.Section(ini.DefaultSection).NewKey(name, fmt.Sprint(m[name])); err != nil {
				return nil, err
			}

			continue
		}

		section, err := f.NewSection(name)
		if err != nil {
			return nil, err
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			if _, err := section.NewKey(k, fmt.Sprint(values[k])); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
