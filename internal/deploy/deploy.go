// Package deploy implements the chunked deployment of trained classifiers onto the ledger.
// Large parameter arrays are partitioned into windows bounded by the per-operation
// gas ceiling and submitted as a sequence of dependent writes.
package deploy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/internal/api"
	"github.com/chainlearn/chainlearn/internal/ledger"
	coinmath "github.com/chainlearn/chainlearn/internal/math"
	"github.com/chainlearn/chainlearn/internal/model"
)

// kinds under which transaction hashes and addresses are persisted through the reporter.
const (
	ModelKind = "model"
)

// Config defines the deployment configuration.
// Unset optional fields are filled with defaults, only the account is required.
type Config struct {
	// Account is the identity issuing the writes.
	Account string
	// ToFloat is the float to fixed-point scale factor for model parameters.
	ToFloat float64
	// User receives the operation lifecycle notifications.
	User api.Reporter
}

func (c Config) withDefaults() (Config, error) {
	if c.Account == "" {
		return c, fmt.Errorf("no account in deployment config: %w", model.InvalidErr)
	}
	if c.ToFloat == 0 {
		c.ToFloat = coinmath.DefaultScale
	}
	if c.User == nil {
		c.User = api.Void()
	}
	return c, nil
}

// Handle is the caller-facing reference to a deployed model instance.
// It is created once the genesis operation confirms, and anchors all follow-up writes.
type Handle struct {
	Type    model.Type `json:"type"`
	Address string     `json:"address"`
	TxHash  string     `json:"tx_hash"`
}

// Deployer issues model deployments through a ledger client.
type Deployer struct {
	client ledger.Client
}

// New creates a new deployer on top of the given ledger client.
func New(client ledger.Client) *Deployer {
	return &Deployer{client: client}
}

// Deploy pushes the model parameters onto the ledger and returns the deployed handle.
// Model preconditions are checked before any network operation is issued.
// Once the genesis operation confirms, a failure in a later phase leaves a
// partially deployed model on the ledger: the address has been persisted and the
// confirmed chunks remain, there is no rollback and no retry.
func (d *Deployer) Deploy(ctx context.Context, m model.Model, cfg Config) (Handle, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Handle{}, err
	}
	if err := m.Validate(); err != nil {
		return Handle{}, err
	}

	log.Info().Str("model", string(m.Type())).Str("account", cfg.Account).Msg("deploying model")

	switch m := m.(type) {
	case model.NaiveBayesModel:
		return d.deployNaiveBayes(ctx, m, cfg)
	case model.CentroidModel:
		return d.deployNearestCentroid(ctx, m, cfg)
	case model.PerceptronModel:
		return d.deployPerceptron(ctx, m, cfg)
	default:
		// all model families are enumerated above, this branch is defensive
		return Handle{}, fmt.Errorf("'%s': %w", m.Type(), ledger.UnknownModelErr)
	}
}
