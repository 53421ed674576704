package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Create a starter configuration file interactively.

You will be prompted for:
  - File path and format
  - Environment variable prefix for overrides

An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	formatPrompt := promptui.Select{
		Label: "Configuration format",
		Items: []string{"yaml", "json", "toml"},
	}
	_, fileFormat, err := formatPrompt.Run()
	if err != nil {
		return err
	}

	pathPrompt := promptui.Prompt{
		Label:   "File path",
		Default: "config." + fileFormat,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("path must not be empty")
			}
			return nil
		},
	}
	path, err := pathPrompt.Run()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	prefixPrompt := promptui.Prompt{
		Label:   "Environment variable prefix",
		Default: "APP",
		Validate: func(s string) error {
			if strings.ContainsAny(s, " \t=") {
				return errors.New("prefix must not contain whitespace or '='")
			}
			return nil
		},
	}
	prefix, err := prefixPrompt.Run()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(starter(fileFormat)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Printf("Override any value with %s-prefixed variables, e.g. %s__LOG__LEVEL=debug\n",
		strings.ToUpper(prefix), strings.ToUpper(prefix))
	fmt.Printf("Preview the merged tree with: strata render --config %s --env-prefix %s\n", path, prefix)
	return nil
}

func starter(fileFormat string) string {
	switch fileFormat {
	case "json":
		return `{
  "server": {
    "host": "127.0.0.1",
    "port": 8080
  },
  "log": {
    "level": "info",
    "format": "text"
  }
}
`
	case "toml":
		return `[server]
host = "127.0.0.1"
port = 8080

[log]
level = "info"
format = "text"
`
	default:
		return `server:
  host: 127.0.0.1
  port: 8080

log:
  level: info
  format: text

# Split settings across files if you like:
# extra:
#   $include: "conf.d/*.yaml"
`
	}
}
