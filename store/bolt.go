package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const kvBucket = "kv"

// BoltClient is a BoltDB database client.
type BoltClient struct {
	*bolt.DB
}

func (c *BoltClient) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(kvBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// bytes returned by bolt are only valid for the life of the
		// transaction
		value, found = string(v), true

		return nil
	})

	return value, found, err
}

func (c *BoltClient) Set(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Put([]byte(key), []byte(value))
	})
}

func (c *BoltClient) Remove(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Delete([]byte(key))
	})
}

// Apply writes all the ops in one transaction. Nothing is written if any op
// fails.
func (c *BoltClient) Apply(ops ...Op) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kvBucket))

		for _, op := range ops {
			var err error
			if op.Value == nil {
				err = b.Delete([]byte(op.Key))
			} else {
				err = b.Put([]byte(op.Key), []byte(*op.Value))
			}

			if err != nil {
				return err
			}
		}

		return nil
	})
}

// openBolt creates or opens a database and locks it.
func openBolt(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errClockoutRunning
		}

		return nil, err
	}

	return db, nil
}

// NewBoltClient returns a wrapper to a BoltDB connection.
func NewBoltClient(dbPath string) (*BoltClient, error) {
	db, err := openBolt(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(kvBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltClient{
		db,
	}, nil
}
