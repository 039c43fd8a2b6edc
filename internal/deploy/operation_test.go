package deploy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainlearn/chainlearn/internal/api"
	"github.com/chainlearn/chainlearn/internal/ledger"
)

// countingReporter tracks the notify/dismiss balance of the operation wrapper.
type countingReporter struct {
	notified  []api.Message
	dismissed []api.Key
	hashes    map[string]string
}

func newCountingReporter() *countingReporter {
	return &countingReporter{hashes: make(map[string]string)}
}

func (c *countingReporter) Notify(message *api.Message) api.Key {
	c.notified = append(c.notified, *message)
	return api.Key(fmt.Sprintf("key-%d", len(c.notified)))
}

func (c *countingReporter) Dismiss(key api.Key) {
	c.dismissed = append(c.dismissed, key)
}

func (c *countingReporter) SaveTransactionHash(kind string, hash string) {
	c.hashes[kind] = hash
}

func (c *countingReporter) SaveAddress(kind string, address string) {
}

func stream(events ...ledger.Event) func(ctx context.Context) (<-chan ledger.Event, error) {
	return func(ctx context.Context) (<-chan ledger.Event, error) {
		ch := make(chan ledger.Event, len(events))
		for _, ev := range events {
			ch <- ev
		}
		close(ch)
		return ch, nil
	}
}

func TestRun_Confirmed(t *testing.T) {
	user := newCountingReporter()
	op := operation{
		description: "deploy",
		model:       "test",
		phase:       phaseGenesis,
		recordHash:  true,
		submit: stream(
			ledger.Event{Type: ledger.Submitted, ID: "0x1"},
			ledger.Event{Type: ledger.Confirmed, ID: "0x1", Address: "0xa"},
		),
	}

	event, err := (&Deployer{}).run(context.Background(), op, user)
	assert.NoError(t, err)
	assert.Equal(t, "0xa", event.Address)
	assert.Len(t, user.notified, 1)
	assert.Len(t, user.dismissed, 1)
	assert.Equal(t, "0x1", user.hashes[ModelKind])
}

func TestRun_FailedAfterSubmission(t *testing.T) {
	user := newCountingReporter()
	cause := fmt.Errorf("declined: %w", ledger.RejectedErr)
	op := operation{
		description: "deploy",
		model:       "test",
		phase:       phaseGenesis,
		submit: stream(
			ledger.Event{Type: ledger.Submitted, ID: "0x1"},
			ledger.Event{Type: ledger.Failed, ID: "0x1", Err: cause},
		),
	}

	_, err := (&Deployer{}).run(context.Background(), op, user)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ledger.RejectedErr)
	// the failure is reported, but the pending notification is dismissed exactly once
	assert.Len(t, user.notified, 2)
	assert.Equal(t, api.Error, user.notified[1].Level)
	assert.Len(t, user.dismissed, 1)
}

func TestRun_FailedBeforeSubmission(t *testing.T) {
	user := newCountingReporter()
	op := operation{
		description: "deploy",
		model:       "test",
		phase:       phaseGenesis,
		submit: func(ctx context.Context) (<-chan ledger.Event, error) {
			return nil, fmt.Errorf("no connection: %w", ledger.RejectedErr)
		},
	}

	_, err := (&Deployer{}).run(context.Background(), op, user)
	assert.Error(t, err)
	assert.Len(t, user.dismissed, 1)
}

func TestRun_StreamClosedWithoutTerminalEvent(t *testing.T) {
	user := newCountingReporter()
	op := operation{
		description: "deploy",
		model:       "test",
		phase:       phaseGenesis,
		submit:      stream(ledger.Event{Type: ledger.Submitted, ID: "0x1"}),
	}

	_, err := (&Deployer{}).run(context.Background(), op, user)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ledger.RejectedErr)
	assert.Len(t, user.dismissed, 1)
}

func TestRun_NoHashRecordedForFollowUps(t *testing.T) {
	user := newCountingReporter()
	op := operation{
		description: "extend",
		model:       "test",
		phase:       phaseExtend,
		submit: stream(
			ledger.Event{Type: ledger.Submitted, ID: "0x2"},
			ledger.Event{Type: ledger.Confirmed, ID: "0x2"},
		),
	}

	_, err := (&Deployer{}).run(context.Background(), op, user)
	assert.NoError(t, err)
	assert.Empty(t, user.hashes)
}
