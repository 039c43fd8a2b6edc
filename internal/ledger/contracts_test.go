package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupArtifact(t *testing.T) {

	type test struct {
		modelType string
		name      string
		err       bool
	}

	tests := map[string]test{
		"exact":            {modelType: "naive bayes", name: "NaiveBayesClassifier"},
		"case-insensitive": {modelType: "Sparse Perceptron", name: "SparsePerceptron"},
		"padded":           {modelType: " dense perceptron ", name: "Perceptron"},
		"centroid":         {modelType: "nearest centroid classifier", name: "NearestCentroidClassifier"},
		"unknown":          {modelType: "decision tree", err: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			artifact, err := LookupArtifact(tt.modelType)
			if tt.err {
				assert.Error(t, err)
				assert.ErrorIs(t, err, UnknownModelErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.name, artifact.Name)
			assert.NotEmpty(t, artifact.Bytecode)
		})
	}
}
