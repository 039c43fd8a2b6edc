package deploy

import (
	"context"
	"fmt"

	"github.com/chainlearn/chainlearn/internal/buffer"
	"github.com/chainlearn/chainlearn/internal/ledger"
	coinmath "github.com/chainlearn/chainlearn/internal/math"
	"github.com/chainlearn/chainlearn/internal/model"
)

// chunk size for perceptron weights and feature indices.
// The genesis operation carries a full-size chunk for perceptrons.
const prcChunk = 450

// deployPerceptron deploys a dense or sparse perceptron.
// The contract accepts the full classification list at genesis, so there is no
// class registration phase: the remaining weight chunks are streamed in order,
// each tagged with its absolute offset, and for sparse models the feature index
// list is uploaded afterwards in the same chunk size.
func (d *Deployer) deployPerceptron(ctx context.Context, m model.PerceptronModel, cfg Config) (Handle, error) {
	artifact, err := ledger.LookupArtifact(string(m.Type()))
	if err != nil {
		return Handle{}, err
	}

	windows := buffer.Windows(len(m.Weights), prcChunk, prcChunk)
	first := windows[0]

	// phase A : genesis operation carrying all classifications and the first weights chunk
	genesis := operation{
		description: fmt.Sprintf("Deploy %s: weights %s", m.Type(), first),
		model:       string(m.Type()),
		phase:       phaseGenesis,
		recordHash:  true,
		submit: func(ctx context.Context) (<-chan ledger.Event, error) {
			args := []interface{}{
				m.Classifications,
				coinmath.FixedVector(m.Weights[first.Offset:first.End()], cfg.ToFloat),
				coinmath.Fixed(m.Intercept, cfg.ToFloat),
				coinmath.Fixed(m.Rate(), cfg.ToFloat),
			}
			return d.client.Deploy(ctx, cfg.Account, artifact, args, ledger.MaxOperationGas)
		},
	}
	event, err := d.run(ctx, genesis, cfg.User)
	if err != nil {
		return Handle{}, err
	}
	handle := Handle{Type: m.Type(), Address: event.Address, TxHash: event.ID}
	cfg.User.SaveAddress(ModelKind, handle.Address)

	// phase C : stream the remaining weight chunks, tagged with their absolute offset.
	// Sparse uploads go through a dedicated method, so the contract can place
	// the continuation against the feature index mapping.
	method := "initializeWeights"
	if m.Sparse() {
		method = "initializeSparseWeights"
	}
	for _, w := range windows[1:] {
		w := w
		extend := operation{
			description: fmt.Sprintf("Extend %s weights %s", m.Type(), w),
			model:       string(m.Type()),
			phase:       phaseExtend,
			submit: func(ctx context.Context) (<-chan ledger.Event, error) {
				args := []interface{}{
					int64(w.Offset),
					coinmath.FixedVector(m.Weights[w.Offset:w.End()], cfg.ToFloat),
				}
				return d.client.Invoke(ctx, cfg.Account, handle.Address, method, args, ledger.MaxOperationGas)
			},
		}
		if _, err := d.run(ctx, extend, cfg.User); err != nil {
			return Handle{}, err
		}
	}

	// sparse models upload the feature index list once the weights are complete
	if m.Sparse() {
		for _, w := range buffer.Windows(len(m.FeatureIndices), prcChunk, prcChunk) {
			w := w
			indices := operation{
				description: fmt.Sprintf("Add %s feature indices %s", m.Type(), w),
				model:       string(m.Type()),
				phase:       phaseExtend,
				submit: func(ctx context.Context) (<-chan ledger.Event, error) {
					args := []interface{}{
						coinmath.IntVector(m.FeatureIndices[w.Offset:w.End()]),
					}
					return d.client.Invoke(ctx, cfg.Account, handle.Address, "addFeatureIndices", args, ledger.MaxOperationGas)
				},
			}
			if _, err := d.run(ctx, indices, cfg.User); err != nil {
				return Handle{}, err
			}
		}
	}

	return handle, nil
}
