package dsv

import (
	"strings"
	"testing"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
	"github.com/stretchr/testify/require"
)

func TestDSVParser(t *testing.T) {
	parser := CreateParser(&ParserConf{
		HeaderLines: 1,
		Comment:     '#',
		NilValue:    "null",
	})
	in := "value,category,sector\n# comment\n7,industrial,3\n-2\n40, public ,null\n1,null,20\n"
	records, err := parser.Parse(strings.NewReader(in))
	require.Nil(t, err)
	require.Equal(t, []tally.Record{
		{Value: 7, Category: tally.Industrial, Sector: 3},
		{Value: -2},
		{Value: 40, Category: tally.Public},
		{Value: 1, Sector: 20},
	}, records)
}

func TestDSVParserDelimiter(t *testing.T) {
	parser := CreateParser(&ParserConf{Delimiter: '|'})
	records, err := parser.Parse(strings.NewReader("5|commercial|1\n6||2\n"))
	require.Nil(t, err)
	require.Equal(t, []tally.Record{
		{Value: 5, Category: tally.Commercial, Sector: 1},
		{Value: 6, Sector: 2},
	}, records)
}

func TestDSVParserRejectsInvalidRecords(t *testing.T) {
	parser := CreateParser(nil)
	cases := map[string]int{
		"1\nx":             2,
		"1.5":              1,
		"3000000000":       1,
		"1,military":       1,
		"1\n1\n1,public,21": 3,
		"1,public,0":       1,
		"1,public,2,extra": 1,
	}
	for in, line := range cases {
		_, err := parser.Parse(strings.NewReader(in))
		require.NotNil(t, err, in)
		invalid, ok := err.(terrors.InvalidRecordError)
		require.True(t, ok, in)
		require.Equal(t, line, invalid.Line, in)
	}
}
