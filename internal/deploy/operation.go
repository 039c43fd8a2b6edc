package deploy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/internal/api"
	"github.com/chainlearn/chainlearn/internal/ledger"
	"github.com/chainlearn/chainlearn/internal/metrics"
)

// phases of a deployment, used for logging and metrics.
const (
	phaseGenesis  = "genesis"
	phaseRegister = "register"
	phaseExtend   = "extend"
)

// operation is one ledger write together with its notification lifecycle.
// It resolves to success or failure exactly once.
type operation struct {
	// description is the human readable summary shared with the user.
	description string
	// model and phase label the operation for logging and metrics.
	model string
	phase string
	// recordHash persists the transaction hash through the reporter on submission.
	// Only the genesis operation records the hash for the model as a whole.
	recordHash bool
	// submit performs the write and returns its event stream.
	submit func(ctx context.Context) (<-chan ledger.Event, error)
}

// run executes the operation through the standard notification protocol:
// announce the pending operation, dismiss the announcement once the write is
// submitted, and on failure dismiss, report and propagate the cause.
// There is exactly one dismiss per notify, and failures are never swallowed.
func (d *Deployer) run(ctx context.Context, op operation, user api.Reporter) (ledger.Event, error) {
	key := user.Notify(api.NewMessage(op.description))
	dismissed := false
	dismiss := func() {
		if !dismissed {
			user.Dismiss(key)
			dismissed = true
		}
	}
	fail := func(cause error) (ledger.Event, error) {
		dismiss()
		user.Notify(api.NewMessage(fmt.Sprintf("error: %s: %s", op.description, cause)).WithLevel(api.Error))
		metrics.Observer.Increment(op.model, op.phase, "failed")
		log.Error().Err(cause).Str("operation", op.description).Msg("operation failed")
		return ledger.Event{}, fmt.Errorf("%s: %w", op.description, cause)
	}

	events, err := op.submit(ctx)
	if err != nil {
		return fail(err)
	}

	for event := range events {
		switch event.Type {
		case ledger.Submitted:
			dismiss()
			if op.recordHash {
				user.SaveTransactionHash(ModelKind, event.ID)
			}
			log.Info().Str("operation", op.description).Str("tx", event.ID).Msg("submitted")
		case ledger.Confirmed:
			metrics.Observer.Increment(op.model, op.phase, "confirmed")
			log.Info().Str("operation", op.description).Str("tx", event.ID).Msg("confirmed")
			return event, nil
		case ledger.Failed:
			return fail(event.Err)
		}
	}
	// the ledger client closed the stream without a terminal event
	return fail(ledger.RejectedErr)
}
