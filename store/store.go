// Package store keeps computed leaf maps in a Badger key-value catalog so that
// repeated runs on the same graph can skip the search.
//
// Records are keyed by a fingerprint of the graph's canonical edge list (see
// graphio.Format) and the algorithm that produced them. Values are JSON.
package store

import (
	"crypto/sha256"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/flis/core"
	"github.com/katalvlaran/flis/graphio"
	"github.com/katalvlaran/flis/leafmap"
)

// Sentinel errors.
var (
	// ErrNotFound is returned by Get when no record exists for the key.
	ErrNotFound = stderrors.New("store: record not found")

	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = stderrors.New("store: closed")
)

var recordPrefix = []byte("leafmap/")

// Record is one stored leaf map. MaxWitnesses is the per-size witness cap of
// the run that produced it; 0 means uncapped.
type Record struct {
	RunID        uuid.UUID         `json:"run_id"`
	Algorithm    string            `json:"algorithm"`
	Strategy     string            `json:"strategy"`
	Order        int               `json:"order"`
	LeafMap      leafmap.LeafMap   `json:"leaf_map"`
	Witnesses    leafmap.Witnesses `json:"witnesses,omitempty"`
	MaxWitnesses int               `json:"max_witnesses,omitempty"`
	Nodes        int64             `json:"nodes"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewRecord captures res under a fresh run ID.
func NewRecord(res *leafmap.Result) Record {
	return Record{
		RunID:        uuid.New(),
		Algorithm:    res.Algorithm.String(),
		Strategy:     res.Strategy.String(),
		Order:        res.Order(),
		LeafMap:      res.LeafMap(),
		Witnesses:    res.Witnesses(),
		MaxWitnesses: res.MaxWitnesses,
		Nodes:        res.Stats.Nodes,
		CreatedAt:    time.Now().UTC(),
	}
}

// Covers reports whether r holds every witness a run capped at maxWitnesses
// would keep (0 asks for all of them).
func (r Record) Covers(maxWitnesses int) bool {
	if r.MaxWitnesses == 0 {
		return true
	}

	return maxWitnesses > 0 && maxWitnesses <= r.MaxWitnesses
}

// Limit returns r with at most k witnesses per size; k = 0 returns r as is.
// The witness lists of r are not modified.
func (r Record) Limit(k int) Record {
	if k <= 0 {
		return r
	}
	out := make(leafmap.Witnesses, len(r.Witnesses))
	for size, ws := range r.Witnesses {
		if len(ws) > k {
			ws = ws[:k:k]
		}
		out[size] = ws
	}
	r.Witnesses = out
	if r.MaxWitnesses == 0 || k < r.MaxWitnesses {
		r.MaxWitnesses = k
	}

	return r
}

// Fingerprint returns the SHA-256 of g's canonical edge list and algo.
// Two graphs with equal vertex IDs and edges share a fingerprint.
func Fingerprint(g *core.Graph, algo leafmap.Algorithm) [sha256.Size]byte {
	return sha256.Sum256([]byte(algo.String() + "\n" + graphio.Format(g)))
}

func recordKey(g *core.Graph, algo leafmap.Algorithm) []byte {
	sum := Fingerprint(g, algo)
	return append(append([]byte(nil), recordPrefix...), sum[:]...)
}

// Store is a leaf map catalog. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Option configures Open.
type Option func(*badger.Options)

// WithLogger routes Badger's own log lines to l. By default, and for a nil l,
// they are dropped.
func WithLogger(l *log.Logger) Option {
	return func(o *badger.Options) {
		if l != nil {
			o.Logger = badgerLogger{l}
		}
	}
}

// WithReadOnly opens an existing catalog without write access.
func WithReadOnly() Option {
	return func(o *badger.Options) {
		o.ReadOnly = true
	}
}

// Open opens (creating if needed) the catalog in directory path.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("store: empty path, use OpenInMemory")
	}

	return open(badger.DefaultOptions(path), opts)
}

// OpenInMemory returns a catalog that lives only as long as the process.
func OpenInMemory(opts ...Option) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), opts)
}

func open(bopts badger.Options, opts []Option) (*Store, error) {
	bopts.Logger = nil
	bopts.MetricsEnabled = false
	for _, opt := range opts {
		opt(&bopts)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", bopts.Dir)
	}

	return &Store{db: db}, nil
}

// Put stores rec for (g, algorithm of rec), replacing any previous record.
func (s *Store) Put(g *core.Graph, rec Record) error {
	algo, err := leafmap.ParseAlgorithm(rec.Algorithm)
	if err != nil {
		return errors.Wrap(err, "store: put")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "store: encode record")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(g, algo), data)
	})
	if stderrors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}

	return errors.Wrap(err, "store: put")
}

// Get loads the record stored for (g, algo).
func (s *Store) Get(g *core.Graph, algo leafmap.Algorithm) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(g, algo))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	switch {
	case err == nil:
		return rec, nil
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return Record{}, fmt.Errorf("store: %s for %d vertices: %w", algo, g.VertexCount(), ErrNotFound)
	case stderrors.Is(err, badger.ErrDBClosed):
		return Record{}, ErrClosed
	}

	return Record{}, errors.Wrap(err, "store: get")
}

// Delete removes the record for (g, algo). Deleting a missing record is not an error.
func (s *Store) Delete(g *core.Graph, algo leafmap.Algorithm) error {
	return errors.Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(recordKey(g, algo))
	}), "store: delete")
}

// Len counts the stored records.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = recordPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, errors.Wrap(err, "store: len")
}

// Close flushes and closes the catalog.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

// badgerLogger adapts a charm logger to badger.Logger. Badger's info chatter
// is demoted to debug.
type badgerLogger struct {
	l *log.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Error(trim(format, args))
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warn(trim(format, args))
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debug(trim(format, args))
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debug(trim(format, args))
}

func trim(format string, args []interface{}) string {
	return "badger: " + strings.TrimSpace(fmt.Sprintf(format, args...))
}
