package deploy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/chainlearn/chainlearn/internal/buffer"
	"github.com/chainlearn/chainlearn/internal/ledger"
	coinmath "github.com/chainlearn/chainlearn/internal/math"
	"github.com/chainlearn/chainlearn/internal/model"
)

// chunk sizes for naive bayes feature counts.
// The initial chunk rides on the contract-creating operation and has to be smaller.
const (
	nbInitialChunk = 150
	nbChunk        = 350
)

// deployNaiveBayes deploys a naive bayes classifier in three phases:
// genesis with the first class and its first counts chunk, parallel registration
// of the remaining classes, and sequential extension of the per-class counts.
// Class statistics are fixed at registration, only the counts vectors are extended.
func (d *Deployer) deployNaiveBayes(ctx context.Context, m model.NaiveBayesModel, cfg Config) (Handle, error) {
	artifact, err := ledger.LookupArtifact(string(m.Type()))
	if err != nil {
		return Handle{}, err
	}

	windows := buffer.Windows(m.TotalFeatures(), nbInitialChunk, nbChunk)
	first := windows[0]

	// phase A : genesis operation carrying the first class and its first chunk
	genesis := operation{
		description: fmt.Sprintf("Deploy naive bayes classifier: class '%s' counts %s", m.Classifications[0], first),
		model:       string(m.Type()),
		phase:       phaseGenesis,
		recordHash:  true,
		submit: func(ctx context.Context) (<-chan ledger.Event, error) {
			args := []interface{}{
				[]string{m.Classifications[0]},
				[]int64{int64(m.ClassCounts[0])},
				coinmath.RoundVector(m.FeatureCounts[0][first.Offset:first.End()]),
				int64(m.TotalFeatures()),
				coinmath.Fixed(m.SmoothingFactor(), cfg.ToFloat),
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

	// phase B : register the remaining classes, independent of one another
	var group errgroup.Group
	for i := 1; i < len(m.Classifications); i++ {
		i := i
		group.Go(func() error {
			register := operation{
				description: fmt.Sprintf("Add class '%s' counts %s", m.Classifications[i], first),
				model:       string(m.Type()),
				phase:       phaseRegister,
				submit: func(ctx context.Context) (<-chan ledger.Event, error) {
					args := []interface{}{
						int64(m.ClassCounts[i]),
						coinmath.RoundVector(m.FeatureCounts[i][first.Offset:first.End()]),
						m.Classifications[i],
					}
					return d.client.Invoke(ctx, cfg.Account, handle.Address, "addClass", args, ledger.MaxOperationGas)
				},
			}
			_, err := d.run(ctx, register, cfg.User)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return Handle{}, err
	}

	// phase C : stream the remaining counts chunks, in order per class
	for i := range m.Classifications {
		for _, w := range windows[1:] {
			w := w
			i := i
			extend := operation{
				description: fmt.Sprintf("Extend class '%s' counts %s", m.Classifications[i], w),
				model:       string(m.Type()),
				phase:       phaseExtend,
				submit: func(ctx context.Context) (<-chan ledger.Event, error) {
					args := []interface{}{
						coinmath.RoundVector(m.FeatureCounts[i][w.Offset:w.End()]),
						int64(i),
					}
					return d.client.Invoke(ctx, cfg.Account, handle.Address, "initializeCounts", args, ledger.MaxOperationGas)
				},
			}
			if _, err := d.run(ctx, extend, cfg.User); err != nil {
				return Handle{}, err
			}
		}
	}

	return handle, nil
}
