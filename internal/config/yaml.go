package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a pluthon.yaml override file: every
// field optional, snake_case keys matching HelpText's keys and the Python
// original's ARGPARSE_ARGS flag names.
type fileConfig struct {
	CompressPatterns        *bool `yaml:"compress_patterns,omitempty"`
	IterativeUnfoldPatterns *bool `yaml:"iterative_unfold_patterns,omitempty"`
	ConstantIndexAccessList *bool `yaml:"constant_index_access_list,omitempty"`
	RemoveTrace             *bool `yaml:"remove_trace,omitempty"`
	UniqueVariableNames     *bool `yaml:"unique_variable_names,omitempty"`
}

func toFileConfig(c CompilationConfig) fileConfig {
	return fileConfig{
		CompressPatterns:        c.CompressPatterns,
		IterativeUnfoldPatterns: c.IterativeUnfoldPatterns,
		ConstantIndexAccessList: c.ConstantIndexAccessList,
		RemoveTrace:             c.RemoveTrace,
		UniqueVariableNames:     c.UniqueVariableNames,
	}
}

func (f fileConfig) toConfig() CompilationConfig {
	return CompilationConfig{
		CompressPatterns:        f.CompressPatterns,
		IterativeUnfoldPatterns: f.IterativeUnfoldPatterns,
		ConstantIndexAccessList: f.ConstantIndexAccessList,
		RemoveTrace:             f.RemoveTrace,
		UniqueVariableNames:     f.UniqueVariableNames,
	}
}

// Load reads a CompilationConfig override from a YAML file. Fields absent
// from the file stay nil, so callers layer the result onto a level with
// Update.
func Load(path string) (CompilationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CompilationConfig{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return CompilationConfig{}, err
	}
	return fc.toConfig(), nil
}

// Save writes c to path as YAML, omitting unset fields.
func Save(path string, c CompilationConfig) error {
	data, err := yaml.Marshal(toFileConfig(c))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
