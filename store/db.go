package store

// Keys under which clockout keeps its state.
const (
	KeyLoginTime      = "loginTime"
	KeyBreakStartTime = "breakStartTime"
	KeyBreakRecords   = "breakRecords"
	KeyWeekdayHours   = "weekdayHours"
	KeyWeekendHours   = "weekendHours"
	KeyTheme          = "theme"
	KeySessionHistory = "sessionHistory"
	// KeySessionHistoryBackup keeps an unreadable history when a new
	// session is archived over it.
	KeySessionHistoryBackup = "sessionHistoryBackup"
)

// KV is the flat key-value storage interface.
type KV interface {
	// Get returns the value stored under key. The boolean is false when the
	// key is absent.
	Get(key string) (string, bool, error)
	// Set creates or overwrites the value stored under key
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error
	Remove(key string) error
	// Close ends the database connection
	Close() error
}

// Batcher is implemented by stores that can apply several writes
// atomically.
type Batcher interface {
	Apply(ops ...Op) error
}

// Op is a single write in a batch. A nil Value removes the key.
type Op struct {
	Value *string
	Key   string
}

// Put returns an Op that sets key to value.
func Put(key, value string) Op {
	return Op{Key: key, Value: &value}
}

// Delete returns an Op that removes key.
func Delete(key string) Op {
	return Op{Key: key}
}

// Apply writes ops to kv, in a single transaction when kv supports it.
// Otherwise the ops are applied in order and the first failure is
// returned.
func Apply(kv KV, ops ...Op) error {
	if b, ok := kv.(Batcher); ok {
		return b.Apply(ops...)
	}

	for _, op := range ops {
		var err error
		if op.Value == nil {
			err = kv.Remove(op.Key)
		} else {
			err = kv.Set(op.Key, *op.Value)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
