package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/datasource"
	"github.com/pkg/errors"
)

// DataSourceConf configures a file DataSource
type DataSourceConf struct {
	Glob string // Files matching this glob are loaded, in lexical order of their paths
}

// DataSource is a set of files containing Records
type DataSource struct {
	conf   *DataSourceConf
	parser tally.Parser
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(conf *DataSourceConf, parser tally.Parser) *DataSource {
	return &DataSource{conf: conf, parser: parser}
}

// Files returns the paths which this DataSource will read, sorted
func (fs *DataSource) Files() ([]string, error) {
	matches, err := filepath.Glob(fs.conf.Glob)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid glob %s", fs.conf.Glob)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.conf.Glob)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load reads every matching file concurrently and returns their Records in path order
func (fs *DataSource) Load(ctx context.Context) ([]tally.Record, error) {
	paths, err := fs.Files()
	if err != nil {
		return nil, err
	}
	openers := make([]datasource.Opener, len(paths))
	for i, path := range paths {
		path := path
		openers[i] = datasource.Opener{
			Name: path,
			Open: func() (io.ReadCloser, error) {
				return open(path)
			},
		}
	}
	return datasource.ParseAll(ctx, fs.parser, openers)
}
