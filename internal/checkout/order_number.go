package checkout

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

const orderNumberPrefix = "ORD"

// NewOrderNumber builds a human-readable order reference:
//
//	ORD<YYYYMMDDHHMMSS><4 hex chars>
//
// The random suffix keeps two checkouts in the same second from colliding
// against the unique index on order_number.
func NewOrderNumber(now time.Time) string {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// fall back to the sub-second clock, still unique enough per second
		binary.BigEndian.PutUint16(buf[:], uint16(now.Nanosecond()>>8))
	}
	return fmt.Sprintf("%s%s%04X", orderNumberPrefix, now.UTC().Format("20060102150405"), binary.BigEndian.Uint16(buf[:]))
}
