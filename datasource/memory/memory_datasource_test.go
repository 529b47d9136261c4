package memory

import (
	"context"
	"testing"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/dataset"
	"github.com/go-sif/tally/datasource/parser/dsv"
	"github.com/stretchr/testify/require"
)

func TestMemoryDataSourceKeepsOrder(t *testing.T) {
	data := make([][]byte, 0, 8)
	for i := 0; i < 8; i++ {
		data = append(data, []byte("1\n2\n3\n"))
	}
	data[5] = []byte("100\n")
	source := CreateDataSource(data, dsv.CreateParser(nil))
	records, err := source.Load(context.Background())
	require.Nil(t, err)
	require.Len(t, records, 22)
	require.Equal(t, tally.Record{Value: 100}, records[15])

	ds, err := dataset.Load(context.Background(), source, 10)
	require.Nil(t, err)
	require.Equal(t, 22, ds.Len())
}

func TestMemoryDataSourceParseError(t *testing.T) {
	source := CreateDataSource([][]byte{[]byte("1\n"), []byte("nope\n")}, dsv.CreateParser(nil))
	_, err := source.Load(context.Background())
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "buffer 1")
}
