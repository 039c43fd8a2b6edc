// Package local provides a local api.Reporter implementation.
// It logs the deployment progress and retains all records in memory,
// which makes it suitable both for command line use and for assertions in tests.
package local

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chainlearn/chainlearn/internal/api"
	"github.com/chainlearn/chainlearn/internal/storage"
)

// Notification is one retained user message.
type Notification struct {
	Key       api.Key
	Message   api.Message
	Dismissed bool
}

// Reporter is the local implementation of the api.Reporter.
type Reporter struct {
	lock          *sync.Mutex
	store         storage.Persistence
	notifications []*Notification
	index         map[api.Key]*Notification
	hashes        map[string]string
	addresses     map[string]string
}

// NewReporter creates a new local reporter without persistence.
func NewReporter() *Reporter {
	return &Reporter{
		lock:      new(sync.Mutex),
		store:     storage.NewVoidStorage(),
		index:     make(map[api.Key]*Notification),
		hashes:    make(map[string]string),
		addresses: make(map[string]string),
	}
}

// WithStore persists saved hashes and addresses through the given storage.
func (r *Reporter) WithStore(store storage.Persistence) *Reporter {
	r.store = store
	return r
}

func (r *Reporter) Notify(message *api.Message) api.Key {
	r.lock.Lock()
	defer r.lock.Unlock()

	key := api.Key(uuid.New().String())
	notification := &Notification{Key: key, Message: *message}
	r.notifications = append(r.notifications, notification)
	r.index[key] = notification

	switch message.Level {
	case api.Error:
		log.Error().Str("key", string(key)).Msg(message.Text)
	default:
		log.Info().Str("key", string(key)).Msg(message.Text)
	}
	return key
}

func (r *Reporter) Dismiss(key api.Key) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if notification, ok := r.index[key]; ok {
		notification.Dismissed = true
	}
}

func (r *Reporter) SaveTransactionHash(kind string, hash string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.hashes[kind] = hash
	if err := r.store.Store(storage.Key{Kind: kind, Label: "tx"}, hash); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("could not persist transaction hash")
	}
}

func (r *Reporter) SaveAddress(kind string, address string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.addresses[kind] = address
	if err := r.store.Store(storage.Key{Kind: kind, Label: "address"}, address); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("could not persist address")
	}
}

// Notifications returns all retained notifications in order.
func (r *Reporter) Notifications() []Notification {
	r.lock.Lock()
	defer r.lock.Unlock()

	notifications := make([]Notification, len(r.notifications))
	for i, n := range r.notifications {
		notifications[i] = *n
	}
	return notifications
}

// Active returns the number of notifications that have not been dismissed.
// Error notifications are not dismissable and do not count.
func (r *Reporter) Active() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	active := 0
	for _, n := range r.notifications {
		if !n.Dismissed && n.Message.Level != api.Error {
			active++
		}
	}
	return active
}

// Address returns the saved address for the given kind.
func (r *Reporter) Address(kind string) (string, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	address, ok := r.addresses[kind]
	return address, ok
}

// TransactionHash returns the saved transaction hash for the given kind.
func (r *Reporter) TransactionHash(kind string) (string, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	hash, ok := r.hashes[kind]
	return hash, ok
}
