package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/cdipaolo/goml/cluster"
	"gonum.org/v1/gonum/floats"

	"github.com/chainlearn/chainlearn/internal/model"
)

const kmeansIterations = 100

// readCSV loads a dataset of float features with a trailing label column.
/**
5.1,3.5,1.4,0.2,Iris-setosa
4.9,3.0,1.4,0.2,Iris-setosa
...
*/
func readCSV(file string) ([][]float64, []string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open file '%s': %w", file, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read csv: %w", err)
	}

	data := make([][]float64, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("row %d has %d columns", i, len(row))
		}
		features := make([]float64, len(row)-1)
		for j, cell := range row[:len(row)-1] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("could not parse cell [%d,%d] '%s': %w", i, j, cell, err)
			}
			features[j] = v
		}
		data = append(data, features)
		labels = append(labels, row[len(row)-1])
	}
	return data, labels, nil
}

// trainNearestCentroid clusters the data and derives one centroid per cluster.
func trainNearestCentroid(data [][]float64, clusters int) (model.Model, error) {
	if len(data) < clusters {
		return nil, fmt.Errorf("not enough data for %d clusters", clusters)
	}

	km := cluster.NewKMeans(clusters, kmeansIterations, data)
	if err := km.Learn(); err != nil {
		return nil, fmt.Errorf("could not train k-means: %w", err)
	}
	guesses := km.Guesses()
	if len(guesses) != len(data) {
		return nil, fmt.Errorf("could not align guesses with data [ %d | %d ]", len(guesses), len(data))
	}

	dim := len(data[0])
	sums := make(map[int][]float64)
	counts := make(map[int]int)
	for i, g := range guesses {
		if _, ok := sums[g]; !ok {
			sums[g] = make([]float64, dim)
		}
		floats.Add(sums[g], data[i])
		counts[g]++
	}

	centroids := make(map[string]model.Centroid)
	for g, sum := range sums {
		floats.Scale(1/float64(counts[g]), sum)
		centroids[fmt.Sprintf("cluster-%d", g)] = model.Centroid{
			Centroid:  sum,
			DataCount: counts[g],
		}
	}
	return model.CentroidModel{Centroids: centroids}, nil
}

// trainPerceptron fits a binary perceptron with the classic online update rule.
func trainPerceptron(data [][]float64, labels []string, epochs int) (model.Model, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no data")
	}
	classes := distinct(labels)
	if len(classes) != 2 {
		return nil, fmt.Errorf("perceptron needs exactly 2 classes, got %d", len(classes))
	}

	dim := len(data[0])
	weights := make([]float64, dim)
	intercept := 0.0
	rate := model.DefaultLearningRate

	for epoch := 0; epoch < epochs; epoch++ {
		for i, x := range data {
			target := 0.0
			if labels[i] == classes[1] {
				target = 1
			}
			prediction := 0.0
			if floats.Dot(weights, x)+intercept > 0 {
				prediction = 1
			}
			if step := rate * (target - prediction); step != 0 {
				floats.AddScaled(weights, step, x)
				intercept += step
			}
		}
	}

	return model.PerceptronModel{
		Classifications: classes,
		Weights:         weights,
		Intercept:       intercept,
		LearningRate:    rate,
	}, nil
}

// trainNaiveBayes counts binarized feature presence per class.
func trainNaiveBayes(data [][]float64, labels []string) (model.Model, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no data")
	}
	classes := distinct(labels)
	if len(classes) == 0 {
		return nil, fmt.Errorf("no classes in dataset")
	}

	dim := len(data[0])
	index := make(map[string]int, len(classes))
	for i, class := range classes {
		index[class] = i
	}

	classCounts := make([]int, len(classes))
	featureCounts := make([][]float64, len(classes))
	for i := range featureCounts {
		featureCounts[i] = make([]float64, dim)
	}
	for i, x := range data {
		c := index[labels[i]]
		classCounts[c]++
		for j, v := range x {
			if v > 0 {
				featureCounts[c][j]++
			}
		}
	}

	return model.NaiveBayesModel{
		Classifications: classes,
		ClassCounts:     classCounts,
		FeatureCounts:   featureCounts,
		Smoothing:       model.DefaultSmoothing,
	}, nil
}

func distinct(labels []string) []string {
	seen := make(map[string]struct{})
	classes := make([]string, 0)
	for _, label := range labels {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			classes = append(classes, label)
		}
	}
	sort.Strings(classes)
	return classes
}

func mkdirAll(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir '%s': %w", dir, err)
	}
	return nil
}
