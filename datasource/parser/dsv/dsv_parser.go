package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
)

// ParserConf configures a DSV Parser. Each row holds value[,category[,sector]].
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents an absent category or sector. Defaults to "" (the empty string).
}

// Parser produces Records from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce Records. InvalidRecordError.Line counts data rows,
// including header rows but not comments.
func (p *Parser) Parse(r io.Reader) ([]tally.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			return nil, nil
		} else if err != nil {
			return nil, err
		}
	}

	var records []tally.Record
	for row := p.conf.HeaderLines + 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, terrors.InvalidRecordError{Line: row, Reason: err.Error()}
		}
		rec, reason := scanRecord(p.conf, fields)
		if reason != "" {
			return nil, terrors.InvalidRecordError{Line: row, Reason: reason}
		}
		records = append(records, rec)
	}
	return records, nil
}
