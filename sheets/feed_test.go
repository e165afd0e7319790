package sheets

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/kbukum/sheetfeed/errors"
)

func TestConvert(t *testing.T) {
	raw := []byte(`{"feed":{"entry":[{"gsx$name":{"$t":"Alice"},"gsx$age":{"$t":"30"},"other":{"$t":"ignored"}}]}}`)

	got, err := Convert(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Record{{"name": "Alice", "age": "30"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_PreservesEntryOrder(t *testing.T) {
	raw := []byte(`{"feed":{"entry":[
		{"gsx$n":{"$t":"1"}},
		{"id":{"$t":"no columns"}},
		{"gsx$n":{"$t":"3"}}
	]}}`)

	got, err := Convert(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Record{{"n": "1"}, {}, {"n": "3"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_PrefixStrippedOnce(t *testing.T) {
	got, err := Convert([]byte(`{"feed":{"entry":[{"gsx$gsx$x":{"$t":"v"},"gsx$":{"$t":"empty"}}]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Record{{"gsx$x": "v", "": "empty"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_NonStringValues(t *testing.T) {
	got, err := Convert([]byte(`{"feed":{"entry":[{
		"gsx$num":{"$t":42},
		"gsx$flag":{"$t":true},
		"gsx$nested":{"$t":{"a":[1,2]}},
		"gsx$nil":{"$t":null},
		"gsx$escaped":{"$t":"line\nbreak é"}
	}]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Record{{
		"num":     "42",
		"flag":    "true",
		"nested":  `{"a":[1,2]}`,
		"nil":     "null",
		"escaped": "line\nbreak é",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_EmptyEntries(t *testing.T) {
	got, err := Convert([]byte(`{"feed":{"entry":[]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestConvert_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `<html>`},
		{"top-level array", `[]`},
		{"missing feed", `{"version":"1.0"}`},
		{"null feed", `{"feed":null}`},
		{"feed not object", `{"feed":"x"}`},
		{"missing entry", `{"feed":{"title":"t"}}`},
		{"null entry", `{"feed":{"entry":null}}`},
		{"entry not list", `{"feed":{"entry":{"gsx$a":{"$t":"1"}}}}`},
		{"entry item not object", `{"feed":{"entry":["row"]}}`},
		{"entry item null", `{"feed":{"entry":[null]}}`},
		{"field not object", `{"feed":{"entry":[{"gsx$a":"1"}]}}`},
		{"field null", `{"feed":{"entry":[{"gsx$a":null}]}}`},
		{"field missing value", `{"feed":{"entry":[{"gsx$a":{"v":"1"}}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert([]byte(tt.raw))
			if got != nil {
				t.Errorf("expected no records, got %v", got)
			}
			if !apperrors.HasCode(err, apperrors.ErrCodeUnexpectedShape) {
				t.Fatalf("expected UNEXPECTED_SHAPE, got %v", err)
			}
		})
	}
}

func TestConvert_IgnoresMalformedUnprefixedFields(t *testing.T) {
	got, err := Convert([]byte(`{"feed":{"entry":[{"id":"plain","gsx$a":{"$t":"1"}}]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Record{{"a": "1"}}, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_Idempotent(t *testing.T) {
	raw := []byte(`{"feed":{"entry":[
		{"gsx$name":{"$t":"Alice"},"gsx$age":{"$t":"30"}},
		{"gsx$name":{"$t":"Bob"},"gsx$city":{"$t":"Oslo"}}
	]}}`)

	first, err := Convert(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Convert(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("conversion not idempotent (-first +second):\n%s", diff)
	}
}

func TestConvertEntries(t *testing.T) {
	got, err := ConvertEntries([]Entry{
		{"gsx$a": []byte(`{"$t":"1"}`)},
		{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Record{{"a": "1"}, {}}, got); diff != "" {
		t.Errorf("ConvertEntries() mismatch (-want +got):\n%s", diff)
	}

	empty, err := ConvertEntries(nil)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v, %v", empty, err)
	}
}
