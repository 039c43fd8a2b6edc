// Package local provides an in-memory ledger implementation.
// It mocks the ledger behaviour in terms of submissions, confirmations and addresses,
// and can be used as a simulation environment for testing deployments and business logic.
package local

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/internal/ledger"
)

// DeployMethod is the method name the simulator records for contract-creating writes.
const DeployMethod = "deploy"

// Call records one write accepted by the simulated ledger.
type Call struct {
	Address string
	Method  string
	Args    []interface{}
	Gas     uint64
}

// Contract tracks the accumulated state of one deployed contract instance.
type Contract struct {
	Address  string
	Artifact ledger.Artifact
	Calls    []Call
}

// Ledger is an in-memory ledger.Client implementation.
// Failures can be scripted per method with FailOn, to simulate rejected writes.
type Ledger struct {
	lock      *sync.Mutex
	contracts map[string]*Contract
	calls     []Call
	failures  map[string]int
	seen      map[string]int
}

// NewLedger creates a new in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		lock:      new(sync.Mutex),
		contracts: make(map[string]*Contract),
		failures:  make(map[string]int),
		seen:      make(map[string]int),
	}
}

// FailOn makes the n-th write for the given method fail (1-based).
// Use DeployMethod to fail the contract-creating write.
func (l *Ledger) FailOn(method string, n int) *Ledger {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.failures[strings.ToLower(method)] = n
	return l
}

// Deploy creates a new simulated contract instance.
func (l *Ledger) Deploy(ctx context.Context, account string, artifact ledger.Artifact, args []interface{}, gas uint64) (<-chan ledger.Event, error) {
	if account == "" {
		return nil, fmt.Errorf("no account: %w", ledger.RejectedErr)
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	address := fmt.Sprintf("0x%s", strings.ReplaceAll(uuid.New().String(), "-", ""))
	call := Call{Address: address, Method: DeployMethod, Args: args, Gas: gas}

	if err := l.accept(call); err != nil {
		return l.emit(call, "", err), nil
	}

	l.contracts[address] = &Contract{
		Address:  address,
		Artifact: artifact,
		Calls:    []Call{call},
	}
	l.calls = append(l.calls, call)
	log.Debug().Str("contract", artifact.Name).Str("address", address).Msg("deployed contract")
	return l.emit(call, address, nil), nil
}

// Invoke appends a method call to an existing simulated contract.
func (l *Ledger) Invoke(ctx context.Context, account string, address string, method string, args []interface{}, gas uint64) (<-chan ledger.Event, error) {
	if account == "" {
		return nil, fmt.Errorf("no account: %w", ledger.RejectedErr)
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	call := Call{Address: address, Method: method, Args: args, Gas: gas}

	contract, ok := l.contracts[address]
	if !ok {
		return l.emit(call, "", fmt.Errorf("no contract at '%s': %w", address, ledger.RejectedErr)), nil
	}
	if err := l.accept(call); err != nil {
		return l.emit(call, "", err), nil
	}

	contract.Calls = append(contract.Calls, call)
	l.calls = append(l.calls, call)
	return l.emit(call, "", nil), nil
}

// accept applies the gas ceiling and the scripted failures. Callers hold the lock.
func (l *Ledger) accept(call Call) error {
	if call.Gas > ledger.MaxOperationGas {
		return fmt.Errorf("gas %d exceeds ceiling %d: %w", call.Gas, ledger.MaxOperationGas, ledger.RejectedErr)
	}
	method := strings.ToLower(call.Method)
	l.seen[method]++
	if n, ok := l.failures[method]; ok && l.seen[method] == n {
		return fmt.Errorf("scripted failure for '%s' call %d: %w", call.Method, n, ledger.RejectedErr)
	}
	return nil
}

// emit produces the lifecycle event stream for one write.
// A failed write is still submitted first: rejection happens at confirmation time.
func (l *Ledger) emit(call Call, address string, cause error) <-chan ledger.Event {
	events := make(chan ledger.Event, 2)
	id := fmt.Sprintf("0x%s", strings.ReplaceAll(uuid.New().String(), "-", ""))
	events <- ledger.Event{Type: ledger.Submitted, ID: id}
	if cause != nil {
		events <- ledger.Event{Type: ledger.Failed, ID: id, Err: cause}
	} else {
		events <- ledger.Event{Type: ledger.Confirmed, ID: id, Address: address}
	}
	close(events)
	return events
}

// Contract returns the recorded state for the given address.
func (l *Ledger) Contract(address string) (*Contract, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	contract, ok := l.contracts[address]
	return contract, ok
}

// Calls returns all accepted writes in submission order.
func (l *Ledger) Calls() []Call {
	l.lock.Lock()
	defer l.lock.Unlock()
	calls := make([]Call, len(l.calls))
	copy(calls, l.calls)
	return calls
}

// CallsFor returns the accepted writes for the given method, in submission order.
func (l *Ledger) CallsFor(method string) []Call {
	l.lock.Lock()
	defer l.lock.Unlock()
	calls := make([]Call, 0)
	for _, call := range l.calls {
		if strings.EqualFold(call.Method, method) {
			calls = append(calls, call)
		}
	}
	return calls
}
