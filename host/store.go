// Package host runs stonegate contracts natively: it implements sdk.Host
// on top of a local key-value ledger so the CLI and integration tests can
// invoke the contract without a chain.
package host

// Store abstracts the ledger KV so the runtime can run on bbolt or on an
// in-memory map.
type Store interface {
	// View opens a read-only transaction on the bucket. The callback
	// receives an empty bucket if it does not exist yet.
	View(bucket []byte, fn func(Bucket) error) error

	// Update opens a read-write transaction, creating the bucket if
	// needed.
	Update(bucket []byte, fn func(Bucket) error) error

	// Close releases the underlying resources.
	Close() error
}

// Bucket is a flat namespace of keys inside a store transaction.
type Bucket interface {
	Get(key []byte) []byte
	Set(key, value []byte) error
	Delete(key []byte) error
	ForEach(fn func(k, v []byte) error) error
}
