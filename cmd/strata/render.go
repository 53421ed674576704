package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/strataconf/strata"
)

var (
	flagOutput string
	flagSet    []string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Resolve and print the merged configuration",
	Long: `Resolve the configuration the same way an application would and print
the merged tree.

Precedence, lowest to highest: file (with includes expanded), environment
variables under --env-prefix, then --set overrides.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "yaml", "output format: yaml or json")
	renderCmd.Flags().StringArrayVar(&flagSet, "set", nil, "override a value, e.g. --set server.port=8080 (repeatable)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	args, err := overrides(flagSet)
	if err != nil {
		return err
	}

	r := strata.New()
	raw, err := r.Resolve(strata.Options{
		Path:         flagConfig,
		EnvPrefix:    flagEnvPrefix,
		EnvSeparator: flagSeparator,
	}, args)
	if err != nil {
		return err
	}
	slog.Debug("configuration resolved", "keys", len(raw))

	out, err := render(raw, flagOutput)
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}

func render(raw strata.RawMapping, output string) (string, error) {
	switch strings.ToLower(output) {
	case "yaml":
		b, err := yaml.Marshal(raw)
		if err != nil {
			return "", fmt.Errorf("render yaml: %w", err)
		}
		return string(b), nil
	case "json":
		b, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			return "", fmt.Errorf("render json: %w", err)
		}
		return string(b) + "\n", nil
	default:
		return "", fmt.Errorf("unknown output format %q", output)
	}
}

// overrides turns repeated --set path=value pairs into the argument layer.
// Values are parsed as YAML scalars, so --set debug=true yields a boolean.
func overrides(pairs []string) (strata.RawMapping, error) {
	root := strata.RawMapping{}
	for _, pair := range pairs {
		path, value, ok := strings.Cut(pair, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid --set %q, expected path=value", pair)
		}
		var parsed any
		if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		addr := strata.Address(strings.Split(strings.ToLower(path), "."))
		for _, seg := range addr {
			if seg == "" {
				return nil, fmt.Errorf("invalid --set path %q", path)
			}
		}
		if err := addr.Set(root, parsed); err != nil {
			return nil, fmt.Errorf("apply --set %q: %w", pair, err)
		}
	}
	return root, nil
}
