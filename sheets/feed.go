package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/kbukum/sheetfeed/errors"
)

// FieldPrefix marks spreadsheet columns in a feed entry.
const FieldPrefix = "gsx$"

const valueKey = "$t"

// Record is one spreadsheet row keyed by column name.
type Record map[string]string

// Entry is a raw feed entry: field name to undecoded value wrapper.
type Entry map[string]json.RawMessage

// Convert decodes a raw list feed and flattens its entries into records.
func Convert(data []byte) ([]Record, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.UnexpectedShape("$", "document is not a JSON object").WithCause(err)
	}

	rawFeed, ok := doc["feed"]
	if !ok || isNull(rawFeed) {
		return nil, apperrors.UnexpectedShape("feed", "missing")
	}
	var feed map[string]json.RawMessage
	if err := json.Unmarshal(rawFeed, &feed); err != nil {
		return nil, apperrors.UnexpectedShape("feed", "not an object").WithCause(err)
	}

	rawEntries, ok := feed["entry"]
	if !ok || isNull(rawEntries) {
		return nil, apperrors.UnexpectedShape("feed.entry", "missing")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(rawEntries, &items); err != nil {
		return nil, apperrors.UnexpectedShape("feed.entry", "not a list").WithCause(err)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var e Entry
		if isNull(item) {
			return nil, apperrors.UnexpectedShape(entryPath(i), "not an object")
		}
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, apperrors.UnexpectedShape(entryPath(i), "not an object").WithCause(err)
		}
		entries = append(entries, e)
	}
	return ConvertEntries(entries)
}

// ConvertEntries flattens decoded entries into records, one per entry and
// in the same order.
func ConvertEntries(entries []Entry) ([]Record, error) {
	records := make([]Record, 0, len(entries))
	for i, e := range entries {
		rec := make(Record, len(e))
		for name, raw := range e {
			key, ok := strings.CutPrefix(name, FieldPrefix)
			if !ok {
				continue
			}
			value, err := fieldValue(raw)
			if err != nil {
				return nil, apperrors.UnexpectedShape(entryPath(i)+"."+name, err.Error())
			}
			rec[key] = value
		}
		records = append(records, rec)
	}
	return records, nil
}

// fieldValue extracts the $t member of a value wrapper. Strings are
// unquoted; any other JSON value, null included, is returned as its raw text.
func fieldValue(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", fmt.Errorf("not an object")
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return "", fmt.Errorf("not an object")
	}
	t, ok := wrapper[valueKey]
	if !ok {
		return "", fmt.Errorf("missing %s", valueKey)
	}
	t = bytes.TrimSpace(t)
	if len(t) > 0 && t[0] == '"' {
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return "", fmt.Errorf("invalid %s: %v", valueKey, err)
		}
		return s, nil
	}
	return string(t), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func entryPath(i int) string {
	return fmt.Sprintf("feed.entry[%d]", i)
}
