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

// chunk sizes for centroid coordinate vectors.
const (
	ncInitialChunk = 200
	ncChunk        = 250
)

// deployNearestCentroid deploys a nearest centroid classifier.
// Classes are processed in sorted label order, so that the operation sequence
// is deterministic. Labels and data counts are fixed at registration, only the
// centroid coordinate vectors are extended in phase C.
func (d *Deployer) deployNearestCentroid(ctx context.Context, m model.CentroidModel, cfg Config) (Handle, error) {
	artifact, err := ledger.LookupArtifact(string(m.Type()))
	if err != nil {
		return Handle{}, err
	}

	classes := m.Classes()
	windows := buffer.Windows(m.Dimensions(), ncInitialChunk, ncChunk)
	first := windows[0]

	// phase A : genesis operation carrying the first class and its first centroid chunk
	genesis := operation{
		description: fmt.Sprintf("Deploy nearest centroid classifier: class '%s' centroid %s", classes[0], first),
		model:       string(m.Type()),
		phase:       phaseGenesis,
		recordHash:  true,
		submit: func(ctx context.Context) (<-chan ledger.Event, error) {
			centroid := m.Centroids[classes[0]]
			args := []interface{}{
				[]string{classes[0]},
				coinmath.FixedVector(centroid.Centroid[first.Offset:first.End()], cfg.ToFloat),
				[]int64{int64(centroid.DataCount)},
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
	for i := 1; i < len(classes); i++ {
		class := classes[i]
		group.Go(func() error {
			register := operation{
				description: fmt.Sprintf("Add class '%s' centroid %s", class, first),
				model:       string(m.Type()),
				phase:       phaseRegister,
				submit: func(ctx context.Context) (<-chan ledger.Event, error) {
					centroid := m.Centroids[class]
					args := []interface{}{
						coinmath.FixedVector(centroid.Centroid[first.Offset:first.End()], cfg.ToFloat),
						class,
						int64(centroid.DataCount),
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

	// phase C : stream the remaining centroid chunks, in order per class
	for i, class := range classes {
		for _, w := range windows[1:] {
			w := w
			i := i
			class := class
			extend := operation{
				description: fmt.Sprintf("Extend class '%s' centroid %s", class, w),
				model:       string(m.Type()),
				phase:       phaseExtend,
				submit: func(ctx context.Context) (<-chan ledger.Event, error) {
					args := []interface{}{
						coinmath.FixedVector(m.Centroids[class].Centroid[w.Offset:w.End()], cfg.ToFloat),
						int64(i),
					}
					return d.client.Invoke(ctx, cfg.Account, handle.Address, "extendCentroid", args, ledger.MaxOperationGas)
				},
			}
			if _, err := d.run(ctx, extend, cfg.User); err != nil {
				return Handle{}, err
			}
		}
	}

	return handle, nil
}
