// Package store persists game snapshots in sqlite. Snapshots are JSON,
// lz4-compressed, with a blake3 checksum verified on load.
package store

import (
	"bytes"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"
	_ "modernc.org/sqlite"

	"github.com/wthidden/galaxy-one/internal/game"
)

// ErrNoSnapshot is returned by LoadLatest when the database is empty.
var ErrNoSnapshot = errors.New("store: no snapshot")

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	game_turn INTEGER NOT NULL,
	saved_at  INTEGER NOT NULL,
	checksum  TEXT    NOT NULL,
	payload   BLOB    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_turn ON snapshots(game_turn);
`

// Store wraps the snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes one snapshot row.
func (s *Store) Save(snap *game.Snapshot) error {
	payload, sum, err := encode(snap)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (game_turn, saved_at, checksum, payload) VALUES (?, ?, ?, ?)`,
		snap.GameTurn, time.Now().Unix(), sum, payload,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// LoadLatest returns the most recently saved snapshot.
func (s *Store) LoadLatest() (*game.Snapshot, error) {
	var sum string
	var payload []byte
	err := s.db.QueryRow(
		`SELECT checksum, payload FROM snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&sum, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return decode(payload, sum)
}

// Prune deletes all but the newest keep snapshots.
func (s *Store) Prune(keep int) error {
	if keep < 1 {
		keep = 1
	}
	_, err := s.db.Exec(
		`DELETE FROM snapshots WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func encode(snap *game.Snapshot) ([]byte, string, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, "", fmt.Errorf("marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, "", fmt.Errorf("compress snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("compress snapshot: %w", err)
	}

	sum := blake3.Sum256(raw)
	return buf.Bytes(), hex.EncodeToString(sum[:]), nil
}

func decode(payload []byte, wantSum string) (*game.Snapshot, error) {
	zr := lz4.NewReader(bytes.NewReader(payload))
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}

	sum := blake3.Sum256(raw)
	if hex.EncodeToString(sum[:]) != wantSum {
		return nil, fmt.Errorf("snapshot checksum mismatch")
	}

	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
