package pico8

import (
	"bytes"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/picoforge/pico8/sheet"
)

// CacheDB stores finished conversions keyed by the SHA-1 of the source
// image and the conversion parameters, so an unchanged input is only ever
// converted once.
type CacheDB struct {
	db *sql.DB
}

// OpenCacheDB opens or creates the cache database at file.
func OpenCacheDB(file string) (*CacheDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, size INTEGER NOT NULL, pad INTEGER NOT NULL DEFAULT 0, sprites INTEGER NOT NULL, dropped INTEGER NOT NULL, gfx BLOB NOT NULL, UNIQUE(sha1, size, pad))"); err != nil {
		return nil, err
	}

	return &CacheDB{
		db: db,
	}, nil
}

func (db *CacheDB) Close() error {
	return db.db.Close()
}

// Find returns the cached conversion for the given source digest and
// parameters, or nil if there is none.
func (db *CacheDB) Find(sha string, size int, pad bool) (*Result, error) {
	var sprites, dropped int
	var gfx []byte
	switch err := db.db.QueryRow("SELECT sprites, dropped, gfx FROM conversion WHERE sha1 = ? AND size = ? AND pad = ?", sha, size, pad).Scan(&sprites, &dropped, &gfx); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		s, err := sheet.Decode(bytes.NewReader(gfx))
		if err != nil {
			return nil, err
		}
		return &Result{
			SHA1:    sha,
			Sheet:   s,
			Sprites: sprites,
			Dropped: dropped,
		}, nil
	default:
		return nil, err
	}
}

// Add records a finished conversion, replacing any previous entry for the
// same source and parameters. The sheet is stored in its encoded form.
func (db *CacheDB) Add(res *Result, size int, pad bool) error {
	b := new(bytes.Buffer)
	if err := sheet.Encode(b, res.Sheet); err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO conversion (sha1, size, pad, sprites, dropped, gfx) VALUES (?, ?, ?, ?, ?, ?)", res.SHA1, size, pad, res.Sprites, res.Dropped, b.Bytes()); err != nil {
		return err
	}

	return nil
}
