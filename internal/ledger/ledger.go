// Package ledger defines the interface boundary to the transactional ledger.
package ledger

import (
	"context"
	"errors"
)

// MaxOperationGas is the computation budget a single write may consume,
// fixed by the execution environment. Chunk sizes are chosen conservatively,
// so that a chunk payload plus fixed overhead always fits.
const MaxOperationGas uint64 = 8_900_000

var (
	// RejectedErr marks a write the ledger reported as failed.
	RejectedErr = errors.New("operation rejected")
	// UnknownModelErr marks a model type with no registered contract artifact.
	UnknownModelErr = errors.New("unrecognised model type")
)

// EventType enumerates the lifecycle signals of a single write.
type EventType string

const (
	// Submitted signals the write was accepted by the ledger and assigned a transaction hash.
	Submitted EventType = "submitted"
	// Confirmed is the terminal success signal for a write.
	Confirmed EventType = "confirmed"
	// Failed is the terminal failure signal for a write.
	Failed EventType = "failed"
)

// Event is one lifecycle signal for a write.
// Every write emits exactly one Submitted event followed by exactly one of Confirmed or Failed.
type Event struct {
	Type EventType
	// ID is the transaction hash assigned on submission.
	ID string
	// Address is the contract address assigned to a deployment, set on confirmation.
	Address string
	// Err carries the cause for Failed events.
	Err error
}

// Client exposes the low level interface for issuing writes to the ledger.
// Writes are not cancelable: once issued they run to completion.
// The returned channel delivers the lifecycle events for the write and is
// closed after the terminal event.
type Client interface {
	// Deploy creates a new contract instance from the artifact.
	Deploy(ctx context.Context, account string, artifact Artifact, args []interface{}, gas uint64) (<-chan Event, error)
	// Invoke calls a method on an already deployed contract.
	Invoke(ctx context.Context, account string, address string, method string, args []interface{}, gas uint64) (<-chan Event, error)
}
