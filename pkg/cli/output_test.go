package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestTextFormatterWriter(t *testing.T) {
	formatter := &TextFormatter{}
	buf := &bytes.Buffer{}

	if err := formatter.FormatTo(buf, "test message"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	expected := "test message\n"
	if buf.String() != expected {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), expected)
	}
}

func TestJSONFormatterWriter(t *testing.T) {
	formatter := &JSONFormatter{Indent: true}
	buf := &bytes.Buffer{}

	data := map[string]any{
		"file":  "steering/test.md",
		"valid": true,
	}
	if err := formatter.FormatTo(buf, data); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["file"] != "steering/test.md" {
		t.Errorf("decoded file = %v, want steering/test.md", decoded["file"])
	}
	if decoded["valid"] != true {
		t.Errorf("decoded valid = %v, want true", decoded["valid"])
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{value: "text", want: FormatText},
		{value: "", want: FormatText},
		{value: "json", want: FormatJSON},
		{value: "yaml", wantErr: true},
		{value: "JSON", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) expected error, got %v", tt.value, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("NewFormatter(FormatJSON) should return a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("NewFormatter(FormatText) should return a TextFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TextFormatter); !ok {
		t.Error("NewFormatter should default to TextFormatter")
	}
}
