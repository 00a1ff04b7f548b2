package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/wicker"
	"github.com/aretw0/wicker/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template to stdout",
	Long:  `Resolves all directives in the named template against a context file (YAML or JSON) and prints the resulting markup.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		contextPath, _ := cmd.Flags().GetString("context")
		outPath, _ := cmd.Flags().GetString("output")
		verbose, _ := cmd.Flags().GetBool("verbose")

		data := map[string]any{}
		if contextPath != "" {
			var err error
			data, err = loadContext(contextPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		eng, err := wicker.New(dir, wicker.WithLogger(logging.New(level)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing wicker: %v\n", err)
			os.Exit(1)
		}

		markup, err := eng.RenderHTML(context.Background(), args[0], data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(markup), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				os.Exit(1)
			}
			return
		}
		fmt.Println(markup)
	},
}

// loadContext reads a render context from a YAML or JSON file by extension.
func loadContext(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}

	data := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse context JSON: %w", err)
		}
		return data, nil
	}
	// Default to YAML
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse context YAML: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("context", "c", "", "Path to a YAML or JSON context file")
	renderCmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
	renderCmd.Flags().BoolP("verbose", "v", false, "Log render diagnostics")
}
