package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	terrors "github.com/go-sif/tally/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRunGeneratedJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runTally(context.Background(), &runConf{
		n:         5000,
		seed:      9,
		tagged:    true,
		minLength: 1000,
		workers:   4,
		asJSON:    true,
		logLevel:  "error",
	}, &out, &errOut)
	require.Nil(t, err)
	var decoded struct {
		Total           int64
		SequentialTotal int64
		Verification    string
		Workers         int
		PerWorker       []struct{ Sum int64 }
		Categories      map[string]struct{ Count, Sum int64 }
	}
	require.Nil(t, jsoniter.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, "MATCH", decoded.Verification)
	require.Equal(t, decoded.SequentialTotal, decoded.Total)
	require.Equal(t, 4, decoded.Workers)
	require.Len(t, decoded.PerWorker, 4)
	require.Contains(t, decoded.Categories, "industrial")
}

func TestRunRejectsSmallDatasets(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runTally(context.Background(), &runConf{n: 1000, minLength: 1000, logLevel: "info"}, &out, &errOut)
	require.IsType(t, terrors.DatasetTooSmallError{}, errors.Cause(err))
	require.Equal(t, 0, out.Len())
}

func TestRunFromFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "tally-cmd")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	var csv bytes.Buffer
	for i := 0; i < 1500; i++ {
		csv.WriteString("2,residential,4\n")
	}
	require.Nil(t, ioutil.WriteFile(filepath.Join(dir, "data.csv"), csv.Bytes(), 0644))

	var out, errOut bytes.Buffer
	err = runTally(context.Background(), &runConf{
		input:     filepath.Join(dir, "*.csv"),
		minLength: 1000,
		workers:   10,
		logLevel:  "info",
	}, &out, &errOut)
	require.Nil(t, err)
	require.Contains(t, out.String(), "parallel total   3000")
	require.Contains(t, out.String(), "verification     MATCH")
	require.Contains(t, out.String(), "category residential")
	require.Contains(t, errOut.String(), "Verification: MATCH")
}

func TestParserFor(t *testing.T) {
	for _, input := range []string{"a/*.jsonl", "b.jsonl.lz4", "c.json.zst", "data/*.jsonl*", "data/part-?.csv?"} {
		_, err := parserFor("", input)
		require.Nil(t, err, input)
	}
	_, err := parserFor("", "d.csv.zst")
	require.Nil(t, err)
	_, err = parserFor("", "e.parquet")
	require.NotNil(t, err)
	_, err = parserFor("", "data/*")
	require.NotNil(t, err)
	_, err = parserFor("", "data/*.[jc]*")
	require.NotNil(t, err)
	_, err = parserFor("tsv", "whatever")
	require.Nil(t, err)
}
