package jsonl

import (
	"bufio"
	"bytes"
	"io"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment       rune   // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines from the file
	ValuePath     string // gjson path of the integer value. Defaults to "value".
	CategoryPath  string // gjson path of the optional category. Defaults to "category".
	SectorPath    string // gjson path of the optional sector. Defaults to "sector".
}

// Parser produces Records from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Fields within the JSON which are not named by
// the configured paths are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	if conf.ValuePath == "" {
		conf.ValuePath = "value"
	}
	if conf.CategoryPath == "" {
		conf.CategoryPath = "category"
	}
	if conf.SectorPath == "" {
		conf.SectorPath = "sector"
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce Records. Blank lines are skipped.
func (p *Parser) Parse(r io.Reader) ([]tally.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	var records []tally.Record
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= p.conf.HeaderLines {
			continue
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || (p.conf.Comment != 0 && bytes.HasPrefix(line, []byte(string(p.conf.Comment)))) {
			continue
		}
		rec, reason := p.parseLine(line)
		if reason != "" {
			return nil, terrors.InvalidRecordError{Line: lineNum, Reason: reason}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *Parser) parseLine(line []byte) (tally.Record, string) {
	if !gjson.ValidBytes(line) {
		return tally.Record{}, "malformed JSON"
	}
	fields := gjson.GetManyBytes(line, p.conf.ValuePath, p.conf.CategoryPath, p.conf.SectorPath)
	var rec tally.Record
	value, reason := parseValue(fields[0], p.conf.ValuePath)
	if reason != "" {
		return rec, reason
	}
	rec.Value = value
	if rec.Category, reason = parseCategory(fields[1], p.conf.CategoryPath); reason != "" {
		return rec, reason
	}
	if rec.Sector, reason = parseSector(fields[2], p.conf.SectorPath); reason != "" {
		return rec, reason
	}
	return rec, ""
}
