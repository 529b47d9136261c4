package dataset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/tally"
)

const (
	recordWidth        = 6 // int32 value, category byte, sector byte
	fingerprintRecords = 1024
)

// Fingerprint hashes the content of a sequence of Records, in order
func Fingerprint(records []tally.Record) uint64 {
	hasher := xxhash.New()
	buf := make([]byte, 0, recordWidth*fingerprintRecords)
	for i, r := range records {
		var scratch [recordWidth]byte
		binary.LittleEndian.PutUint32(scratch[0:4], uint32(r.Value))
		scratch[4] = byte(r.Category)
		scratch[5] = byte(r.Sector)
		buf = append(buf, scratch[:]...)
		if (i+1)%fingerprintRecords == 0 {
			hasher.Write(buf)
			buf = buf[:0]
		}
	}
	hasher.Write(buf)
	return hasher.Sum64()
}
