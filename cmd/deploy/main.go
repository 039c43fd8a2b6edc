package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/client/local"
	"github.com/chainlearn/chainlearn/infra/config"
	"github.com/chainlearn/chainlearn/internal/api"
	"github.com/chainlearn/chainlearn/internal/deploy"
	"github.com/chainlearn/chainlearn/internal/model"
	"github.com/chainlearn/chainlearn/internal/storage"
	jsonstore "github.com/chainlearn/chainlearn/internal/storage/file/json"
	userlocal "github.com/chainlearn/chainlearn/user/local"
	"github.com/chainlearn/chainlearn/user/telegram"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type deployConfig struct {
	Account string  `json:"account"`
	ToFloat float64 `json:"to_float"`
	User    string  `json:"user"`
}

func main() {

	modelFile := flag.String("model", "", "path to the model json file")
	flag.Parse()
	if *modelFile == "" {
		panic("no model file given")
	}

	cfg := deployConfig{}
	config.MustLoad("deploy", &cfg)

	b, err := ioutil.ReadFile(*modelFile)
	if err != nil {
		panic(fmt.Sprintf("could not read model file: %+v", err))
	}
	m, err := model.FromJSON(b)
	if err != nil {
		panic(fmt.Sprintf("could not parse model: %+v", err))
	}

	var user api.Reporter
	switch cfg.User {
	case "telegram":
		bot, err := telegram.NewBot()
		if err != nil {
			panic(fmt.Sprintf("could not set up telegram bot: %+v", err))
		}
		user = bot
	default:
		user = userlocal.NewReporter().WithStore(jsonstore.NewBlob(storage.DeploymentsDir))
	}

	// the local ledger simulates the chain, a node client would be plugged in here
	deployer := deploy.New(local.NewLedger())

	handle, err := deployer.Deploy(context.Background(), m, deploy.Config{
		Account: cfg.Account,
		ToFloat: cfg.ToFloat,
		User:    user,
	})
	if err != nil {
		log.Fatal().Err(err).Str("model", string(m.Type())).Msg("deployment failed")
	}

	log.Info().
		Str("model", string(handle.Type)).
		Str("address", handle.Address).
		Str("tx", handle.TxHash).
		Msg("model deployed")
}
