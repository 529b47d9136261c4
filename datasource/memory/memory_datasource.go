package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/datasource"
)

// DataSource is a set of in-memory buffers, each holding a chunk of parseable data
type DataSource struct {
	data   [][]byte
	parser tally.Parser
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(data [][]byte, parser tally.Parser) *DataSource {
	return &DataSource{data: data, parser: parser}
}

// Load parses every buffer and returns their Records in order
func (ms *DataSource) Load(ctx context.Context) ([]tally.Record, error) {
	openers := make([]datasource.Opener, len(ms.data))
	for i, buff := range ms.data {
		buff := buff
		openers[i] = datasource.Opener{
			Name: fmt.Sprintf("buffer %d", i),
			Open: func() (io.ReadCloser, error) {
				return ioutil.NopCloser(bytes.NewReader(buff)), nil
			},
		}
	}
	return datasource.ParseAll(ctx, ms.parser, openers)
}
