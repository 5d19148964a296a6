package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer store.Close()

	bucket := []byte("data:persistent")

	err = store.Update(bucket, func(b Bucket) error {
		return b.Set([]byte("k"), []byte("v"))
	})
	require.NoError(t, err)

	var got []byte
	err = store.View(bucket, func(b Bucket) error {
		got = b.Get([]byte("k"))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	err = store.Update(bucket, func(b Bucket) error {
		return b.Delete([]byte("k"))
	})
	require.NoError(t, err)

	err = store.View(bucket, func(b Bucket) error {
		require.Nil(t, b.Get([]byte("k")))
		return nil
	})
	require.NoError(t, err)
}

func TestBoltStoreMissingBucket(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer store.Close()

	// A bucket that was never written reads as empty.
	err = store.View([]byte("ghost"), func(b Bucket) error {
		require.Nil(t, b.Get([]byte("k")))
		return b.ForEach(func(k, v []byte) error {
			t.Fatal("empty bucket yielded an entry")
			return nil
		})
	})
	require.NoError(t, err)
}

func TestBoltStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	bucket := []byte("meta")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	err = store.Update(bucket, func(b Bucket) error {
		return b.Set([]byte("k"), []byte("v"))
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	err = store.View(bucket, func(b Bucket) error {
		require.Equal(t, []byte("v"), b.Get([]byte("k")))
		return nil
	})
	require.NoError(t, err)
}

func TestBoltStoreForEach(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer store.Close()

	bucket := []byte("data:instance")
	err = store.Update(bucket, func(b Bucket) error {
		if err := b.Set([]byte("a"), []byte("1")); err != nil {
			return err
		}
		return b.Set([]byte("b"), []byte("2"))
	})
	require.NoError(t, err)

	seen := map[string]string{}
	err = store.View(bucket, func(b Bucket) error {
		return b.ForEach(func(k, v []byte) error {
			seen[string(k)] = string(v)
			return nil
		})
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, seen)
}
