package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Artifact bundles the opaque contract definition for one model family.
type Artifact struct {
	Name string
	// ABI is the interface descriptor of the contract.
	ABI json.RawMessage
	// Bytecode is the deployable code, hex encoded.
	Bytecode string
}

// the artifacts are opaque build outputs of the model contracts,
// keyed by the canonical (lower case) model type tag.
var artifacts = map[string]Artifact{
	"naive bayes": {
		Name:     "NaiveBayesClassifier",
		ABI:      json.RawMessage(`[{"type":"constructor"},{"type":"function","name":"addClass"},{"type":"function","name":"initializeCounts"}]`),
		Bytecode: "0x608060405260006007556e4e61697665426179657300000000",
	},
	"nearest centroid classifier": {
		Name:     "NearestCentroidClassifier",
		ABI:      json.RawMessage(`[{"type":"constructor"},{"type":"function","name":"addClass"},{"type":"function","name":"extendCentroid"}]`),
		Bytecode: "0x60806040526000600755704e65617265737443656e74726f6964000000",
	},
	"dense perceptron": {
		Name:     "Perceptron",
		ABI:      json.RawMessage(`[{"type":"constructor"},{"type":"function","name":"initializeWeights"}]`),
		Bytecode: "0x608060405260006007556a50657263657074726f6e0000000000",
	},
	"sparse perceptron": {
		Name:     "SparsePerceptron",
		ABI:      json.RawMessage(`[{"type":"constructor"},{"type":"function","name":"initializeSparseWeights"},{"type":"function","name":"addFeatureIndices"}]`),
		Bytecode: "0x608060405260006007557053706172736550657263657074726f6e00",
	},
}

// LookupArtifact resolves the contract artifact for the given model type tag.
// The tag is matched case-insensitively.
func LookupArtifact(modelType string) (Artifact, error) {
	artifact, ok := artifacts[strings.ToLower(strings.TrimSpace(modelType))]
	if !ok {
		return Artifact{}, fmt.Errorf("no contract artifact for '%s': %w", modelType, UnknownModelErr)
	}
	return artifact, nil
}
