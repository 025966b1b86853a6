/*
Package pico8 converts raster images into the sprite sheet section of a
PICO-8 cartridge.
*/
package pico8

import (
	"io/ioutil"
	"log"
)

type Converter struct {
	db     *CacheDB
	logger *log.Logger
}

// New returns a Converter. db may be nil to disable the conversion cache
// and logger may be nil to discard diagnostics.
func New(db *CacheDB, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		db:     db,
		logger: logger,
	}
}
