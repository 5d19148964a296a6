package host

import (
	"go.etcd.io/bbolt"
	"golang.org/x/xerrors"
)

// boltStore adapts bbolt to the Store interface. One file holds the whole
// local ledger: a data and a TTL bucket per storage tier plus a meta
// bucket for the ledger sequence.
type boltStore struct {
	bolt *bbolt.DB
}

// NewBoltStore opens (or creates) the ledger file at path.
func NewBoltStore(path string) (Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{})
	if err != nil {
		return nil, xerrors.Errorf("failed to open ledger db: %v", err)
	}

	return boltStore{bolt: db}, nil
}

// View implements Store. Missing buckets read as empty instead of failing,
// so a fresh ledger behaves like an empty chain.
func (s boltStore) View(bucket []byte, fn func(Bucket) error) error {
	return s.bolt.View(func(txn *bbolt.Tx) error {
		b := txn.Bucket(bucket)
		if b == nil {
			return fn(emptyBucket{})
		}
		return fn(boltBucket{bucket: b})
	})
}

// Update implements Store.
func (s boltStore) Update(bucket []byte, fn func(Bucket) error) error {
	return s.bolt.Update(func(txn *bbolt.Tx) error {
		b, err := txn.CreateBucketIfNotExists(bucket)
		if err != nil {
			return xerrors.Errorf("failed to create bucket: %v", err)
		}
		return fn(boltBucket{bucket: b})
	})
}

// Close implements Store.
func (s boltStore) Close() error {
	return s.bolt.Close()
}

type boltBucket struct {
	bucket *bbolt.Bucket
}

func (b boltBucket) Get(key []byte) []byte {
	return b.bucket.Get(key)
}

func (b boltBucket) Set(key, value []byte) error {
	return b.bucket.Put(key, value)
}

func (b boltBucket) Delete(key []byte) error {
	return b.bucket.Delete(key)
}

func (b boltBucket) ForEach(fn func(k, v []byte) error) error {
	return b.bucket.ForEach(fn)
}

// emptyBucket backs reads on buckets that were never written.
type emptyBucket struct{}

func (emptyBucket) Get([]byte) []byte                     { return nil }
func (emptyBucket) Set([]byte, []byte) error              { return xerrors.New("read-only bucket") }
func (emptyBucket) Delete([]byte) error                   { return xerrors.New("read-only bucket") }
func (emptyBucket) ForEach(func(k, v []byte) error) error { return nil }
