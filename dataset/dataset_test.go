package dataset

import (
	"context"
	"testing"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	records []tally.Record
	err     error
}

func (s *staticSource) Load(ctx context.Context) ([]tally.Record, error) {
	return s.records, s.err
}

func TestNewRejectsBoundary(t *testing.T) {
	records, err := GenerateRecords(DefaultMinLength, nil)
	require.Nil(t, err)
	_, err = New(records, DefaultMinLength)
	require.NotNil(t, err)
	tooSmall, ok := err.(terrors.DatasetTooSmallError)
	require.True(t, ok)
	require.Equal(t, DefaultMinLength, tooSmall.Length)
	require.Equal(t, DefaultMinLength, tooSmall.Min)

	records, err = GenerateRecords(DefaultMinLength+1, nil)
	require.Nil(t, err)
	ds, err := New(records, DefaultMinLength)
	require.Nil(t, err)
	require.Equal(t, DefaultMinLength+1, ds.Len())
}

func TestGenerateRejectsBeforeAllocating(t *testing.T) {
	_, err := Generate(1000, nil)
	require.NotNil(t, err)
	_, ok := err.(terrors.DatasetTooSmallError)
	require.True(t, ok)
}

func TestGenerateValueRange(t *testing.T) {
	records, err := GenerateRecords(5000, &GenerateConf{Seed: 7, Tagged: true})
	require.Nil(t, err)
	for _, r := range records {
		require.True(t, r.Value >= 1 && r.Value <= 100)
		require.True(t, r.Category.Valid())
		require.True(t, r.Sector.Valid())
	}
	untagged, err := GenerateRecords(100, &GenerateConf{MinValue: 1000, MaxValue: 1000})
	require.Nil(t, err)
	for _, r := range untagged {
		require.EqualValues(t, 1000, r.Value)
		require.Equal(t, tally.NoCategory, r.Category)
		require.Equal(t, tally.NoSector, r.Sector)
	}
}

func TestGenerateLeavesConfAlone(t *testing.T) {
	conf := &GenerateConf{Tagged: true}
	_, err := GenerateRecords(50, conf)
	require.Nil(t, err)
	require.Equal(t, &GenerateConf{Tagged: true}, conf)
}

func TestGenerateExplicitZeros(t *testing.T) {
	ds, err := Generate(2000, &GenerateConf{ExplicitRange: true})
	require.Nil(t, err)
	for _, r := range ds.Window(0, ds.Len()) {
		require.EqualValues(t, 0, r.Value)
	}
	defaulted, err := GenerateRecords(100, &GenerateConf{})
	require.Nil(t, err)
	for _, r := range defaulted {
		require.True(t, r.Value >= 1 && r.Value <= 100)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(2000, &GenerateConf{Seed: 42, Tagged: true})
	require.Nil(t, err)
	b, err := Generate(2000, &GenerateConf{Seed: 42, Tagged: true})
	require.Nil(t, err)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	c, err := Generate(2000, &GenerateConf{Seed: 43, Tagged: true})
	require.Nil(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestAllocationFailure(t *testing.T) {
	_, err := GenerateRecords(-1, nil)
	require.NotNil(t, err)
	_, ok := err.(terrors.AllocationFailureError)
	require.True(t, ok)

	_, err = GenerateRecords(11, &GenerateConf{MaxRecords: 10})
	require.NotNil(t, err)
	_, ok = err.(terrors.AllocationFailureError)
	require.True(t, ok)
}

func TestWindowIsBorrowed(t *testing.T) {
	records, err := GenerateRecords(20, nil)
	require.Nil(t, err)
	ds, err := New(records, 0)
	require.Nil(t, err)
	w := ds.Window(5, 10)
	require.Len(t, w, 5)
	require.Equal(t, 5, cap(w))
	require.True(t, &w[0] == &records[5])
}

func TestFingerprintTracksContent(t *testing.T) {
	records, err := GenerateRecords(3000, nil)
	require.Nil(t, err)
	before := Fingerprint(records)
	require.Equal(t, before, Fingerprint(records))
	records[2999].Value++
	require.NotEqual(t, before, Fingerprint(records))
	records[2999].Value--
	records[0].Sector = tally.MaxSector
	require.NotEqual(t, before, Fingerprint(records))
}

func TestLoad(t *testing.T) {
	records, err := GenerateRecords(1500, nil)
	require.Nil(t, err)
	ds, err := Load(context.Background(), &staticSource{records: records}, DefaultMinLength)
	require.Nil(t, err)
	require.Equal(t, 1500, ds.Len())

	_, err = Load(context.Background(), &staticSource{err: errors.New("disk on fire")}, DefaultMinLength)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "disk on fire")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, CreateGenerator(1500, nil), DefaultMinLength)
	require.Equal(t, context.Canceled, errors.Cause(err))
}
