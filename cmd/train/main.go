package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/internal/model"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// trains a demo model on a csv dataset and writes it out as deployable json.
func main() {

	family := flag.String("family", "centroid", "model family to train: bayes | centroid | perceptron")
	file := flag.String("file", "", "path to the csv dataset")
	out := flag.String("out", "models", "output directory for the model json")
	clusters := flag.Int("clusters", 2, "number of clusters for the centroid model")
	epochs := flag.Int("epochs", 10, "training epochs for the perceptron")
	flag.Parse()

	if *file == "" {
		panic("no dataset file given")
	}

	data, labels, err := readCSV(*file)
	if err != nil {
		panic(fmt.Sprintf("could not read dataset: %+v", err))
	}
	log.Info().Int("rows", len(data)).Str("file", *file).Msg("loaded dataset")

	var m model.Model
	switch *family {
	case "bayes":
		m, err = trainNaiveBayes(data, labels)
	case "centroid":
		m, err = trainNearestCentroid(data, *clusters)
	case "perceptron":
		m, err = trainPerceptron(data, labels, *epochs)
	default:
		panic(fmt.Sprintf("unknown model family '%s'", *family))
	}
	if err != nil {
		panic(fmt.Sprintf("could not train %s model: %+v", *family, err))
	}

	b, err := model.ToJSON(m)
	if err != nil {
		panic(fmt.Sprintf("could not encode model: %+v", err))
	}
	path := filepath.Join(*out, fmt.Sprintf("%s.json", *family))
	if err := writeFile(path, b); err != nil {
		panic(fmt.Sprintf("could not write model: %+v", err))
	}

	log.Info().Str("model", string(m.Type())).Str("path", path).Msg("model trained")
}

func writeFile(path string, b []byte) error {
	if err := mkdirAll(filepath.Dir(path)); err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}
