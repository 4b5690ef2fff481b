//go:build sqlite_cgo

package main

// Registers the cgo sqlite driver so --driver sqlite3 works.
import _ "github.com/mattn/go-sqlite3"
