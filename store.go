package main

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Store persists solved results so that repeated runs over the same input
// skip the search. Safe for concurrent use.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) a result store in dir. An empty dir opens an
// in-memory store that vanishes on Close.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open result store %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// storeKey omits the blueprint ID: the answer depends only on costs,
// horizon and pruning policy.
func storeKey(bp Blueprint, horizon int, prune bool) []byte {
	return fmt.Appendf(nil, "geodes/v1/%d.%d.%d.%d.%d.%d/h%d/p%t",
		bp.OreRobotOre, bp.ClayRobotOre,
		bp.ObsidianRobotOre, bp.ObsidianRobotClay,
		bp.GeodeRobotOre, bp.GeodeRobotObsidian,
		horizon, prune)
}

// Get looks up a stored result. The bool reports whether one was found.
func (s *Store) Get(bp Blueprint, horizon int, prune bool) (int, bool, error) {
	key := storeKey(bp, horizon, prune)
	var (
		geodes int
		found  bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt entry %s: %d bytes", key, len(val))
			}
			geodes = int(binary.BigEndian.Uint64(val))
			found = true
			return nil
		})
	})
	if err != nil {
		return 0, false, fmt.Errorf("result store get: %w", err)
	}
	return geodes, found, nil
}

// Put records a solved result.
func (s *Store) Put(bp Blueprint, horizon int, prune bool, geodes int) error {
	val := binary.BigEndian.AppendUint64(nil, uint64(geodes))
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(bp, horizon, prune), val)
	})
	if err != nil {
		return fmt.Errorf("result store put: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
