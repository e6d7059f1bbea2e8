package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gopkg.in/yaml.v3"
)

var dataPath string

var renderCmd = &cobra.Command{
	Use:   "render [name]",
	Short: "Render a view with data from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := renderer()
		if err != nil {
			return err
		}
		data, err := loadData(dataPath)
		if err != nil {
			return err
		}
		out, err := r.Render(cmd.Context(), args[0], data)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVarP(&dataPath, "data", "d", "", "YAML or JSON file with template data")
	rootCmd.AddCommand(renderCmd)
}

// loadData reads a YAML (or JSON) mapping; an empty path yields an empty map.
func loadData(path string) (map[string]any, error) {
	data := map[string]any{}
	if path == "" {
		return data, nil
	}
	raw, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse data %s: %w", path, err)
	}
	return data, nil
}
