package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainlearn/chainlearn/internal/model"
)

func TestReadCSV(t *testing.T) {
	dir, err := ioutil.TempDir("", "train")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "data.csv")
	err = ioutil.WriteFile(file, []byte("1,2,a\n3,4,b\n"), 0644)
	assert.NoError(t, err)

	data, labels, err := readCSV(file)
	assert.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, data)
	assert.Equal(t, []string{"a", "b"}, labels)
}

func TestReadCSV_BadCell(t *testing.T) {
	dir, err := ioutil.TempDir("", "train")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "data.csv")
	err = ioutil.WriteFile(file, []byte("1,x,a\n"), 0644)
	assert.NoError(t, err)

	_, _, err = readCSV(file)
	assert.Error(t, err)
}

func TestTrainPerceptron(t *testing.T) {
	// linearly separable on the first dimension
	data := [][]float64{{-1, 1}, {-2, 1}, {1, 1}, {2, 1}}
	labels := []string{"neg", "neg", "pos", "pos"}

	m, err := trainPerceptron(data, labels, 20)
	assert.NoError(t, err)

	perceptron, ok := m.(model.PerceptronModel)
	assert.True(t, ok)
	assert.Equal(t, []string{"neg", "pos"}, perceptron.Classifications)
	assert.NoError(t, perceptron.Validate())

	// the learned boundary separates the training set
	for i, x := range data {
		score := perceptron.Weights[0]*x[0] + perceptron.Weights[1]*x[1] + perceptron.Intercept
		if labels[i] == "pos" {
			assert.True(t, score > 0, "row %d", i)
		} else {
			assert.True(t, score <= 0, "row %d", i)
		}
	}
}

func TestTrainPerceptron_NotBinary(t *testing.T) {
	_, err := trainPerceptron([][]float64{{1}}, []string{"a"}, 1)
	assert.Error(t, err)
}

func TestTrainNaiveBayes(t *testing.T) {
	data := [][]float64{{1, 0}, {1, 1}, {0, 1}}
	labels := []string{"a", "a", "b"}

	m, err := trainNaiveBayes(data, labels)
	assert.NoError(t, err)

	bayes, ok := m.(model.NaiveBayesModel)
	assert.True(t, ok)
	assert.NoError(t, bayes.Validate())
	assert.Equal(t, []string{"a", "b"}, bayes.Classifications)
	assert.Equal(t, []int{2, 1}, bayes.ClassCounts)
	assert.Equal(t, [][]float64{{2, 1}, {0, 1}}, bayes.FeatureCounts)
}

func TestTrainNearestCentroid(t *testing.T) {
	// two well separated blobs
	data := [][]float64{{0, 0}, {0.1, 0}, {10, 10}, {10.1, 10}}

	m, err := trainNearestCentroid(data, 2)
	assert.NoError(t, err)

	centroid, ok := m.(model.CentroidModel)
	assert.True(t, ok)
	assert.NoError(t, centroid.Validate())
	assert.Len(t, centroid.Centroids, 2)
	total := 0
	for _, c := range centroid.Centroids {
		assert.Len(t, c.Centroid, 2)
		total += c.DataCount
	}
	assert.Equal(t, len(data), total)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, distinct([]string{"b", "a", "b", "a"}))
}
