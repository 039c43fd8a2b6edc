// Package model defines the deployable classifier families and their preconditions.
package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Type tags a model with the family it belongs to.
// The tag selects both the deployment strategy and the target contract artifact.
type Type string

const (
	NaiveBayes       Type = "naive bayes"
	NearestCentroid  Type = "nearest centroid classifier"
	DensePerceptron  Type = "dense perceptron"
	SparsePerceptron Type = "sparse perceptron"
)

const (
	// DefaultSmoothing is the naive bayes smoothing factor applied when none is set.
	DefaultSmoothing = 1.0
	// DefaultLearningRate is the perceptron learning rate applied when none is set.
	DefaultLearningRate = 0.5
)

// InvalidErr marks model data that fails its preconditions.
// Validation runs before any network operation is issued.
var InvalidErr = errors.New("invalid model")

// Model is implemented by every deployable model family.
type Model interface {
	// Type returns the family tag for the model.
	Type() Type
	// Validate checks the model preconditions, wrapping InvalidErr on violation.
	Validate() error
}

// NaiveBayesModel carries the parameters of a trained naive bayes classifier.
// FeatureCounts holds one counts vector per class, all of equal length.
type NaiveBayesModel struct {
	Classifications []string    `json:"classifications"`
	ClassCounts     []int       `json:"class_counts"`
	FeatureCounts   [][]float64 `json:"feature_counts"`
	Smoothing       float64     `json:"smoothing_factor,omitempty"`
}

func (m NaiveBayesModel) Type() Type {
	return NaiveBayes
}

// TotalFeatures returns the shared length of the per-class feature count vectors.
func (m NaiveBayesModel) TotalFeatures() int {
	if len(m.FeatureCounts) == 0 {
		return 0
	}
	return len(m.FeatureCounts[0])
}

// SmoothingFactor returns the configured smoothing factor, or the default.
func (m NaiveBayesModel) SmoothingFactor() float64 {
	if m.Smoothing == 0 {
		return DefaultSmoothing
	}
	return m.Smoothing
}

func (m NaiveBayesModel) Validate() error {
	if len(m.Classifications) == 0 {
		return fmt.Errorf("no classifications: %w", InvalidErr)
	}
	if len(m.ClassCounts) != len(m.Classifications) || len(m.FeatureCounts) != len(m.Classifications) {
		return fmt.Errorf("misaligned classes [ %d | %d | %d ]: %w",
			len(m.Classifications), len(m.ClassCounts), len(m.FeatureCounts), InvalidErr)
	}
	features := m.TotalFeatures()
	if features == 0 {
		return fmt.Errorf("no feature counts: %w", InvalidErr)
	}
	for i, counts := range m.FeatureCounts {
		if len(counts) != features {
			return fmt.Errorf("feature counts for '%s' have length %d instead of %d: %w",
				m.Classifications[i], len(counts), features, InvalidErr)
		}
	}
	return nil
}

// Centroid carries the coordinates and sample count for one class of a nearest centroid classifier.
type Centroid struct {
	Centroid  []float64 `json:"centroid"`
	DataCount int       `json:"data_count"`
}

// CentroidModel carries the parameters of a trained nearest centroid classifier.
// All centroids must share the same dimensionality.
type CentroidModel struct {
	Centroids map[string]Centroid `json:"centroids"`
}

func (m CentroidModel) Type() Type {
	return NearestCentroid
}

// Classes returns the class labels in deterministic (sorted) order.
func (m CentroidModel) Classes() []string {
	classes := make([]string, 0, len(m.Centroids))
	for c := range m.Centroids {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// Dimensions returns the shared centroid dimensionality.
func (m CentroidModel) Dimensions() int {
	for _, c := range m.Centroids {
		return len(c.Centroid)
	}
	return 0
}

func (m CentroidModel) Validate() error {
	if len(m.Centroids) == 0 {
		return fmt.Errorf("no centroids: %w", InvalidErr)
	}
	classes := m.Classes()
	dim := len(m.Centroids[classes[0]].Centroid)
	if dim == 0 {
		return fmt.Errorf("centroid for '%s' has no dimensions: %w", classes[0], InvalidErr)
	}
	for _, class := range classes {
		if len(m.Centroids[class].Centroid) != dim {
			return fmt.Errorf("centroid for '%s' has %d dimensions instead of %d: %w",
				class, len(m.Centroids[class].Centroid), dim, InvalidErr)
		}
	}
	return nil
}

// PerceptronModel carries the parameters of a trained perceptron.
// When FeatureIndices is set the model is sparse: the weights correspond
// to the selected feature dimensions only.
type PerceptronModel struct {
	Classifications []string  `json:"classifications"`
	Weights         []float64 `json:"weights"`
	Intercept       float64   `json:"intercept"`
	LearningRate    float64   `json:"learning_rate,omitempty"`
	FeatureIndices  []int     `json:"feature_indices,omitempty"`
}

func (m PerceptronModel) Type() Type {
	if m.Sparse() {
		return SparsePerceptron
	}
	return DensePerceptron
}

// Sparse reports whether the model carries a sparse feature index list.
func (m PerceptronModel) Sparse() bool {
	return len(m.FeatureIndices) > 0
}

// Rate returns the configured learning rate, or the default.
func (m PerceptronModel) Rate() float64 {
	if m.LearningRate == 0 {
		return DefaultLearningRate
	}
	return m.LearningRate
}

func (m PerceptronModel) Validate() error {
	if len(m.Classifications) == 0 {
		return fmt.Errorf("no classifications: %w", InvalidErr)
	}
	if len(m.Weights) == 0 {
		return fmt.Errorf("no weights: %w", InvalidErr)
	}
	if m.Sparse() && len(m.FeatureIndices) != len(m.Weights) {
		return fmt.Errorf("feature indices length %d does not match weights length %d: %w",
			len(m.FeatureIndices), len(m.Weights), InvalidErr)
	}
	return nil
}

// ParseType normalises a raw model type tag.
func ParseType(raw string) Type {
	return Type(strings.ToLower(strings.TrimSpace(raw)))
}
