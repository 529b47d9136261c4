package verify

import (
	"testing"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/dataset"
	terrors "github.com/go-sif/tally/errors"
	"github.com/stretchr/testify/require"
)

func createVerifyTestDataset(t *testing.T, values ...int32) (*dataset.Dataset, []tally.Record) {
	records := make([]tally.Record, len(values))
	for i, v := range values {
		records[i].Value = v
	}
	ds, err := dataset.New(records, 0)
	require.Nil(t, err)
	return ds, records
}

func TestSequential(t *testing.T) {
	ds, _ := createVerifyTestDataset(t, 1, 2, 3, 4, -5)
	total, elapsed := Sequential(ds)
	require.EqualValues(t, 5, total)
	require.True(t, elapsed >= 0)
}

func TestCheckMatch(t *testing.T) {
	ds, _ := createVerifyTestDataset(t, 10, 20, 30)
	res, err := Check(ds, 60)
	require.Nil(t, err)
	require.Equal(t, tally.Match, res.Verification)
	require.EqualValues(t, 60, res.SequentialTotal)
}

func TestCheckMismatch(t *testing.T) {
	ds, _ := createVerifyTestDataset(t, 10, 20, 30)
	res, err := Check(ds, 59)
	require.NotNil(t, err)
	require.Equal(t, tally.Mismatch, res.Verification)
	mismatch, ok := err.(terrors.VerificationMismatchError)
	require.True(t, ok)
	require.EqualValues(t, 59, mismatch.Parallel)
	require.EqualValues(t, 60, mismatch.Sequential)
}

func TestCheckDetectsMutation(t *testing.T) {
	ds, records := createVerifyTestDataset(t, 10, 20, 30)
	records[1].Value = 21
	res, err := Check(ds, 61)
	require.NotNil(t, err)
	require.Equal(t, tally.Mismatch, res.Verification)
	_, ok := err.(terrors.DatasetMutatedError)
	require.True(t, ok)
}
