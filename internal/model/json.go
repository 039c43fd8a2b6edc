package model

import (
	"encoding/json"
	"fmt"
)

// envelope carries the type tag used to pick the concrete model shape.
type envelope struct {
	Type string `json:"type"`
}

// FromJSON decodes a model from its tagged json representation.
// The type tag is matched case-insensitively.
func FromJSON(b []byte) (Model, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("could not read model type: %w", err)
	}
	switch ParseType(env.Type) {
	case NaiveBayes:
		var m NaiveBayesModel
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("could not unmarshal naive bayes model: %w", err)
		}
		return m, nil
	case NearestCentroid:
		var m CentroidModel
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("could not unmarshal nearest centroid model: %w", err)
		}
		return m, nil
	case DensePerceptron, SparsePerceptron:
		var m PerceptronModel
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("could not unmarshal perceptron model: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown model type '%s': %w", env.Type, InvalidErr)
	}
}

// ToJSON encodes a model together with its type tag.
func ToJSON(m Model) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("could not marshal model: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("could not expand model: %w", err)
	}
	fields["type"] = string(m.Type())
	return json.Marshal(fields)
}
