package ui

import (
	"io"

	"gopkg.in/yaml.v3"
)

func printYAML(w io.Writer, reports []Report) error {
	if reports == nil {
		reports = []Report{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}
