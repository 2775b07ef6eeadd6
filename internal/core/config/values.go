package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadValuesFiles reads YAML values files and merges them in declaration
// order. Later files override earlier files for the same keys.
func loadValuesFiles(configDir string, files []string) (map[string]string, error) {
	merged := make(map[string]string)

	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(configDir, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read values file %q: %w", file, err)
		}

		var values map[string]string
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parse values file %q: %w", file, err)
		}

		maps.Copy(merged, values)
	}

	return merged, nil
}

// mergeValues overlays inline config values on values loaded from files.
func mergeValues(inline, files map[string]string) map[string]string {
	result := make(map[string]string, len(inline)+len(files))
	maps.Copy(result, files)
	maps.Copy(result, inline)
	return result
}
