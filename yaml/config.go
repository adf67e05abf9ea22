// Package yaml loads command-line configuration from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Loader is a kong.ConfigurationLoader reading a flat YAML mapping of flag
// names to values. Keys may use dashes or underscores.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok && v != nil {
				return fmt.Sprint(v), nil
			}
		}
		return nil, nil
	}), nil
}
