package host

import (
	"encoding/binary"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"stonegate/sdk"
)

var logout = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// Logger is the default runtime logger.
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

var (
	metaBucket  = []byte("meta")
	sequenceKey = []byte("sequence")
)

// Lifetimes (in ledgers) granted to entries written without an explicit
// TTL extension. Temporary entries are short-lived by design.
const (
	defaultTTL   = 4096
	temporaryTTL = 64
)

// Runtime implements sdk.Host over a local store. It executes one
// invocation at a time, fully sequentially, mirroring the chain's
// serialized execution model. Begin starts an invocation, the contract
// runs against the Host methods, Finish records the outcome.
type Runtime struct {
	store   Store
	logger  zerolog.Logger
	metrics *Metrics
	env     sdk.Env
	auths   map[sdk.Address]struct{}
	events  []sdk.Event
}

// NewRuntime wraps a store with the default logger and no metrics.
func NewRuntime(store Store) *Runtime {
	return &Runtime{
		store:  store,
		logger: Logger,
		auths:  map[sdk.Address]struct{}{},
	}
}

// WithLogger replaces the runtime logger.
func (r *Runtime) WithLogger(logger zerolog.Logger) *Runtime {
	r.logger = logger
	return r
}

// WithMetrics attaches prometheus collectors.
func (r *Runtime) WithMetrics(m *Metrics) *Runtime {
	r.metrics = m
	return r
}

// Begin opens a new invocation: it advances the persisted ledger
// sequence, assigns a fresh transaction id, and fixes the environment
// snapshot the contract will see. A zero timestamp means wall clock.
func (r *Runtime) Begin(sender sdk.Address, auths []sdk.Address, timestamp uint64) error {
	seq, err := r.bumpSequence()
	if err != nil {
		return xerrors.Errorf("failed to advance ledger sequence: %v", err)
	}

	if timestamp == 0 {
		timestamp = uint64(time.Now().Unix())
	}

	r.env = sdk.Env{
		TxID:      xid.New().String(),
		Timestamp: timestamp,
		Sequence:  seq,
		Sender: sdk.Sender{
			Address:       sender,
			RequiredAuths: auths,
		},
	}
	r.auths = map[sdk.Address]struct{}{}
	for _, a := range auths {
		r.auths[a] = struct{}{}
	}
	r.events = nil

	if r.metrics != nil {
		r.metrics.Sequence.Set(float64(seq))
	}

	r.logger.Debug().
		Str("tx", r.env.TxID).
		Uint64("seq", seq).
		Str("sender", sender.String()).
		Msg("invocation started")

	return nil
}

// Finish records the invocation outcome in the logs and metrics.
func (r *Runtime) Finish(method string, callErr error) {
	outcome := "ok"
	if callErr != nil {
		outcome = "rejected"
	}
	if r.metrics != nil {
		r.metrics.Invocations.WithLabelValues(method, outcome).Inc()
		if coded, ok := sdk.AsError(callErr); ok {
			r.metrics.Rejections.WithLabelValues(coded.Symbol).Inc()
		}
	}

	if callErr != nil {
		r.logger.Warn().
			Str("tx", r.env.TxID).
			Str("method", method).
			Err(callErr).
			Msg("invocation rejected")
		return
	}

	r.logger.Info().
		Str("tx", r.env.TxID).
		Str("method", method).
		Msg("invocation committed")
}

// Events returns the events published during the current invocation.
func (r *Runtime) Events() []sdk.Event {
	return r.events
}

// must aborts the invocation on a store failure. The local ledger going
// bad mid-invocation has no recovery path any guard could take.
func (r *Runtime) must(err error, op string) {
	if err != nil {
		r.logger.Panic().Err(err).Msg(op)
	}
}

func dataBucket(tier sdk.Tier) []byte {
	return []byte("data:" + tier.String())
}

func ttlBucket(tier sdk.Tier) []byte {
	return []byte("ttl:" + tier.String())
}

func encodeSeq(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func decodeSeq(raw []byte) uint64 {
	if len(raw) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

func (r *Runtime) bumpSequence() (uint64, error) {
	var seq uint64
	err := r.store.Update(metaBucket, func(b Bucket) error {
		seq = decodeSeq(b.Get(sequenceKey)) + 1
		return b.Set(sequenceKey, encodeSeq(seq))
	})
	return seq, err
}

func (r *Runtime) liveUntil(tier sdk.Tier, key string) uint64 {
	var until uint64
	err := r.store.View(ttlBucket(tier), func(b Bucket) error {
		until = decodeSeq(b.Get([]byte(key)))
		return nil
	})
	r.must(err, "ttl read failed")
	return until
}

func (r *Runtime) setLiveUntil(tier sdk.Tier, key string, until uint64) {
	err := r.store.Update(ttlBucket(tier), func(b Bucket) error {
		return b.Set([]byte(key), encodeSeq(until))
	})
	r.must(err, "ttl write failed")
}

// Log implements sdk.Host.
func (r *Runtime) Log(msg string) {
	r.logger.Info().Str("tx", r.env.TxID).Msg(msg)
}

// Env implements sdk.Host.
func (r *Runtime) Env() sdk.Env {
	return r.env
}

// Authorized implements sdk.Host. The local runtime has no signatures;
// the sender and the addresses listed at Begin count as authorized.
func (r *Runtime) Authorized(addr sdk.Address) bool {
	if addr == r.env.Sender.Address && addr != "" {
		return true
	}
	_, ok := r.auths[addr]
	return ok
}

// StorageSet implements sdk.Host. New entries receive the tier's default
// lifetime.
func (r *Runtime) StorageSet(tier sdk.Tier, key, value string) {
	err := r.store.Update(dataBucket(tier), func(b Bucket) error {
		return b.Set([]byte(key), []byte(value))
	})
	r.must(err, "storage write failed")

	if r.liveUntil(tier, key) == 0 {
		ttl := uint64(defaultTTL)
		if tier == sdk.TierTemporary {
			ttl = temporaryTTL
		}
		r.setLiveUntil(tier, key, r.env.Sequence+ttl)
	}
}

// StorageGet implements sdk.Host. Expired temporary entries read as
// absent; the host archives them lazily via Prune.
func (r *Runtime) StorageGet(tier sdk.Tier, key string) *string {
	if tier == sdk.TierTemporary {
		if until := r.liveUntil(tier, key); until != 0 && until < r.env.Sequence {
			return nil
		}
	}

	var value *string
	err := r.store.View(dataBucket(tier), func(b Bucket) error {
		raw := b.Get([]byte(key))
		if raw != nil {
			s := string(raw)
			value = &s
		}
		return nil
	})
	r.must(err, "storage read failed")
	return value
}

// StorageHas implements sdk.Host.
func (r *Runtime) StorageHas(tier sdk.Tier, key string) bool {
	return r.StorageGet(tier, key) != nil
}

// StorageDelete implements sdk.Host.
func (r *Runtime) StorageDelete(tier sdk.Tier, key string) {
	err := r.store.Update(dataBucket(tier), func(b Bucket) error {
		return b.Delete([]byte(key))
	})
	r.must(err, "storage delete failed")

	err = r.store.Update(ttlBucket(tier), func(b Bucket) error {
		return b.Delete([]byte(key))
	})
	r.must(err, "ttl delete failed")
}

// ExtendTTL implements sdk.Host.
func (r *Runtime) ExtendTTL(tier sdk.Tier, key string, threshold, extendTo uint64) {
	if !r.StorageHas(tier, key) {
		return
	}
	if r.liveUntil(tier, key) < r.env.Sequence+threshold {
		r.setLiveUntil(tier, key, r.env.Sequence+extendTo)
	}
}

// PublishEvent implements sdk.Host.
func (r *Runtime) PublishEvent(topics []string, data string) {
	cp := make([]string, len(topics))
	copy(cp, topics)
	r.events = append(r.events, sdk.Event{Topics: cp, Data: data})

	if r.metrics != nil {
		r.metrics.Events.Inc()
	}

	r.logger.Info().
		Str("tx", r.env.TxID).
		Strs("topics", topics).
		Str("data", data).
		Msg("event")
}

// Prune drops temporary entries whose TTL ran out, the local stand-in for
// host archival.
func (r *Runtime) Prune() error {
	expired := [][]byte{}
	err := r.store.View(ttlBucket(sdk.TierTemporary), func(b Bucket) error {
		return b.ForEach(func(k, v []byte) error {
			if decodeSeq(v) < r.env.Sequence {
				key := make([]byte, len(k))
				copy(key, k)
				expired = append(expired, key)
			}
			return nil
		})
	})
	if err != nil {
		return xerrors.Errorf("failed to scan ttl bucket: %v", err)
	}

	for _, key := range expired {
		r.StorageDelete(sdk.TierTemporary, string(key))
	}
	return nil
}
