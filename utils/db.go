package utils

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the fee store at the given path and returns the handle.
// The caller owns the handle and passes it down to the handlers; no
// package-level connection state is kept.
func Connect(path string) (*gorm.DB, error) {
    db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
    if err != nil {
        return nil, err
    }
    return db, nil
}
