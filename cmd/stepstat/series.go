package main

import (
	"fmt"
	"os"

	"github.com/blaisecz/step-tracker/internal/domain"
	"gopkg.in/yaml.v3"
)

// loadSeries reads a mapping of day to count. JSON files parse as YAML.
// Keys are taken verbatim so unquoted dates are not turned into timestamps.
func loadSeries(path string) (domain.StepSeries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	return parseSeries(data)
}

func parseSeries(data []byte) (domain.StepSeries, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse series: %w", err)
	}

	series := domain.StepSeries{}
	if len(doc.Content) == 0 {
		return series, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse series: line %d: want a mapping of YYYY-MM-DD to count", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		var count int
		if err := value.Decode(&count); err != nil {
			return nil, fmt.Errorf("parse series: line %d: count for %s: %w", value.Line, key.Value, err)
		}
		if _, dup := series[key.Value]; dup {
			return nil, fmt.Errorf("parse series: line %d: duplicate day %s", key.Line, key.Value)
		}
		series[key.Value] = count
	}
	return series, nil
}
