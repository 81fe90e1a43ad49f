// Package id generates identifiers for tabs, folders, and notes. IDs are
// unique across entity kinds: a base-36 millisecond timestamp followed by a
// base-36 random suffix, so no per-kind sequencing is needed.
package id

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"strconv"
	"time"
)

// New returns a fresh identifier.
func New() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(random63(), 36)
}

func random63() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint64(mathrand.Int63())
	}
	return binary.BigEndian.Uint64(b[:]) >> 1
}
