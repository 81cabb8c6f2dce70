package main

import (
	"os"

	"sigs.k8s.io/yaml"

	"github.com/borissey/flatcc/flatjson"
)

// loadConfig reads a flatjson.Options from a YAML file. YAML is accepted
// (rather than requiring callers to hand-write JSON) via sigs.k8s.io/yaml,
// which converts to JSON first and then decodes with the standard
// encoding/json field-name rules.
func loadConfig(path string) (flatjson.Options, error) {
	var opts flatjson.Options
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
