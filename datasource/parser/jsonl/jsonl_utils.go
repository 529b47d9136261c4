package jsonl

import (
	"fmt"
	"math"

	"github.com/go-sif/tally"
	"github.com/tidwall/gjson"
)

// integral returns the value of a JSON number iff it is a whole number within [min, max]
func integral(res gjson.Result, min, max int64) (int64, bool) {
	if res.Type != gjson.Number || res.Num != math.Trunc(res.Num) {
		return 0, false
	}
	if res.Num < float64(min) || res.Num > float64(max) {
		return 0, false
	}
	return res.Int(), true
}

func parseValue(res gjson.Result, path string) (int32, string) {
	if !res.Exists() {
		return 0, fmt.Sprintf("missing %s", path)
	}
	v, ok := integral(res, math.MinInt32, math.MaxInt32)
	if !ok {
		return 0, fmt.Sprintf("%s was not a 32-bit integer. Was: %s", path, res.Raw)
	}
	return int32(v), ""
}

func parseCategory(res gjson.Result, path string) (tally.Category, string) {
	if !res.Exists() || res.Type == gjson.Null {
		return tally.NoCategory, ""
	}
	if res.Type != gjson.String {
		return tally.NoCategory, fmt.Sprintf("%s was not a string. Was: %s", path, res.Raw)
	}
	c, err := tally.ParseCategory(res.Str)
	if err != nil {
		return tally.NoCategory, err.Error()
	}
	return c, ""
}

func parseSector(res gjson.Result, path string) (tally.Sector, string) {
	if !res.Exists() || res.Type == gjson.Null {
		return tally.NoSector, ""
	}
	v, ok := integral(res, int64(tally.MinSector), int64(tally.MaxSector))
	if !ok {
		return tally.NoSector, fmt.Sprintf("%s must be an integer in [%d, %d]. Was: %s", path, tally.MinSector, tally.MaxSector, res.Raw)
	}
	return tally.Sector(v), ""
}
