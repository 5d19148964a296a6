package host

import "sync"

// memStore is a map-backed Store for tests and throwaway runs.
type memStore struct {
	sync.Mutex
	buckets map[string]map[string][]byte
}

// NewMemStore returns an empty in-memory ledger store.
func NewMemStore() Store {
	return &memStore{buckets: map[string]map[string][]byte{}}
}

func (s *memStore) bucket(name []byte) map[string][]byte {
	b, ok := s.buckets[string(name)]
	if !ok {
		b = map[string][]byte{}
		s.buckets[string(name)] = b
	}
	return b
}

// View implements Store.
func (s *memStore) View(bucket []byte, fn func(Bucket) error) error {
	s.Lock()
	defer s.Unlock()

	return fn(memBucket{data: s.bucket(bucket)})
}

// Update implements Store.
func (s *memStore) Update(bucket []byte, fn func(Bucket) error) error {
	s.Lock()
	defer s.Unlock()

	return fn(memBucket{data: s.bucket(bucket)})
}

// Close implements Store.
func (s *memStore) Close() error {
	return nil
}

type memBucket struct {
	data map[string][]byte
}

func (b memBucket) Get(key []byte) []byte {
	v, ok := b.data[string(key)]
	if !ok {
		return nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp
}

func (b memBucket) Set(key, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	b.data[string(key)] = cp
	return nil
}

func (b memBucket) Delete(key []byte) error {
	delete(b.data, string(key))
	return nil
}

func (b memBucket) ForEach(fn func(k, v []byte) error) error {
	for k, v := range b.data {
		if err := fn([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}
