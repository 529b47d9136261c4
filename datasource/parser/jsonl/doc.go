// Package jsonl parses JSON Lines data into Records. This parser uses https://github.com/tidwall/gjson to process data, and locates each field with a gjson path.
package jsonl
