// Package aggregate groups the Records of a Dataset by Category and by Sector. The pass is
// sequential: its output is for reporting and is off the timing-critical path.
package aggregate

import (
	"github.com/go-sif/tally"
)

// Tally performs a single pass over a Dataset, counting and summing Records per Category
// and per Sector. Records without a Category (or Sector) are left out of that grouping.
func Tally(ds tally.Dataset) (tally.CategoryTally, tally.SectorTally) {
	categories := make(tally.CategoryTally, tally.NumCategories)
	sectors := make(tally.SectorTally, int(tally.MaxSector))
	for _, r := range ds.Window(0, ds.Len()) {
		if r.Category != tally.NoCategory {
			t := categories[r.Category]
			t.Count++
			t.Sum += int64(r.Value)
			categories[r.Category] = t
		}
		if r.Sector != tally.NoSector {
			t := sectors[r.Sector]
			t.Count++
			t.Sum += int64(r.Value)
			sectors[r.Sector] = t
		}
	}
	return categories, sectors
}
