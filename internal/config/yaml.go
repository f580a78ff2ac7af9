package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads a YAML document of ParserOptions's shape from r.
// Reading the bytes off disk (or wherever) is the caller's concern; this
// only parses bytes already in hand.
func LoadOptions(r io.Reader) (ParserOptions, error) {
	opts := DefaultParserOptions()

	data, err := io.ReadAll(r)
	if err != nil {
		return opts, fmt.Errorf("read options: %w", err)
	}
	if len(data) == 0 {
		return opts, nil
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return ParserOptions{}, fmt.Errorf("parse options yaml: %w", err)
	}

	return opts, nil
}
