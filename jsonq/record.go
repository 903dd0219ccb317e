package jsonq

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var (
	ErrInvalidJSON = errors.New("jsonq: invalid JSON")
	ErrNotArray    = errors.New("jsonq: input is not a JSON array")
)

// Parse validates data and returns the elements of its top-level array.
func Parse(data []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, ErrNotArray
	}
	return doc.Array(), nil
}

// Project returns a new record holding only fields. Missing fields are left out.
func Project(r gjson.Result, fields []string) (gjson.Result, error) {
	out := "{}"
	for _, field := range fields {
		v := r.Get(field)
		if !v.Exists() {
			continue
		}
		var err error
		if out, err = sjson.SetRaw(out, field, v.Raw); err != nil {
			return gjson.Result{}, err
		}
	}
	return gjson.Parse(out), nil
}

// Format indents doc when indent is set and always ends it with a newline.
func Format(doc []byte, indent bool) []byte {
	if indent {
		return pretty.Pretty(doc)
	}
	return append(doc, '\n')
}

func writeArray(sb *strings.Builder, records []gjson.Result) {
	sb.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.Raw)
	}
	sb.WriteByte(']')
}

func writeKey(sb *strings.Builder, i int, key string) {
	if i > 0 {
		sb.WriteByte(',')
	}
	// strings always marshal
	quoted, _ := json.Marshal(key)
	sb.Write(quoted)
	sb.WriteByte(':')
}
