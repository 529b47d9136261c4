package dsv

import (
	"fmt"
	"strconv"

	"github.com/go-sif/tally"
)

// Parses a slice of strings into a Record
func scanRecord(conf *ParserConf, fields []string) (tally.Record, string) {
	var rec tally.Record
	if len(fields) == 0 || len(fields) > 3 {
		return rec, fmt.Sprintf("expected 1 to 3 fields, got %d", len(fields))
	}
	v, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return rec, fmt.Sprintf("value was not a 32-bit integer. Was: %q", fields[0])
	}
	rec.Value = int32(v)
	if len(fields) > 1 && !isNil(conf, fields[1]) {
		c, err := tally.ParseCategory(fields[1])
		if err != nil {
			return rec, err.Error()
		}
		rec.Category = c
	}
	if len(fields) > 2 && !isNil(conf, fields[2]) {
		s, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil || !tally.Sector(s).Valid() {
			return rec, fmt.Sprintf("sector must be an integer in [%d, %d]. Was: %q", tally.MinSector, tally.MaxSector, fields[2])
		}
		rec.Sector = tally.Sector(s)
	}
	return rec, ""
}

func isNil(conf *ParserConf, field string) bool {
	return len(field) == 0 || field == conf.NilValue
}
