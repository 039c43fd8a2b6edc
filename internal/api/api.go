package api

// Level defines the severity of a message shared with the user.
type Level string

const (
	// Info is the default severity for progress messages.
	Info Level = "info"
	// Error marks messages that report a failed operation.
	Error Level = "error"
)

// Key identifies a notification, so that it can be dismissed later on.
type Key string

// NoKey is returned by reporters that do not track their notifications.
const NoKey Key = ""

// Reporter defines the external interface for sharing deployment progress with the user(s).
// Notify returns a key for the message, so that the caller can dismiss it
// once the operation it refers to has moved on.
type Reporter interface {
	// Notify shares a message with the user and returns its key.
	Notify(message *Message) Key
	// Dismiss removes a previously shared message.
	Dismiss(key Key)
	// SaveTransactionHash persists the transaction hash for the given kind of operation.
	SaveTransactionHash(kind string, hash string)
	// SaveAddress persists the on-ledger address for the given kind of entity.
	SaveAddress(kind string, address string)
}

type void struct {
}

// Void returns a no-op Reporter, used when no user interface is configured.
func Void() Reporter {
	return void{}
}

func (v void) Notify(message *Message) Key {
	return NoKey
}

func (v void) Dismiss(key Key) {
}

func (v void) SaveTransactionHash(kind string, hash string) {
}

func (v void) SaveAddress(kind string, address string) {
}
