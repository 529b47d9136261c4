package aggregate

import (
	"testing"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/dataset"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	records := []tally.Record{
		{Value: 5, Category: tally.Residential, Sector: 1},
		{Value: 7, Category: tally.Residential, Sector: 2},
		{Value: 11, Category: tally.Public},
		{Value: 13, Sector: 2},
		{Value: 17},
	}
	ds, err := dataset.New(records, 0)
	require.Nil(t, err)
	categories, sectors := Tally(ds)
	require.Equal(t, tally.CategoryTally{
		tally.Residential: {Count: 2, Sum: 12},
		tally.Public:      {Count: 1, Sum: 11},
	}, categories)
	require.Equal(t, tally.SectorTally{
		1: {Count: 1, Sum: 5},
		2: {Count: 2, Sum: 20},
	}, sectors)
}

func TestTallyAgreesWithTotal(t *testing.T) {
	records, err := dataset.GenerateRecords(20000, &dataset.GenerateConf{Seed: 5, Tagged: true})
	require.Nil(t, err)
	ds, err := dataset.New(records, dataset.DefaultMinLength)
	require.Nil(t, err)
	before := ds.Fingerprint()
	categories, sectors := Tally(ds)

	var total int64
	for _, r := range records {
		total += int64(r.Value)
	}
	var catSum, catCount, secSum, secCount int64
	for _, c := range tally.Categories() {
		catSum += categories[c].Sum
		catCount += categories[c].Count
	}
	for s := tally.MinSector; s <= tally.MaxSector; s++ {
		secSum += sectors[s].Sum
		secCount += sectors[s].Count
	}
	require.Equal(t, total, catSum)
	require.Equal(t, total, secSum)
	require.EqualValues(t, len(records), catCount)
	require.EqualValues(t, len(records), secCount)
	require.Equal(t, before, dataset.Fingerprint(records))
}
