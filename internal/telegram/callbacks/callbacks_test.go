package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		key     string
		payload string
	}{
		{"key and payload", "\\fcat|c1", "cat", "c1"},
		{"key only", "\\fview_catalog", "view_catalog", ""},
		{"empty payload after pipe", "\\fadd|", "add", ""},
		{"payload with pipe", "\\fadd|a|b", "add", "a|b"},
		{"no prefix", "main_menu|x", "main_menu", "x"},
		{"whitespace key", "\\f admin |stats", "admin", "stats"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, payload := Parse(&tele.Callback{Data: tt.data})
			if key != tt.key || payload != tt.payload {
				t.Fatalf("Parse(%q) = (%q, %q), want (%q, %q)",
					tt.data, key, payload, tt.key, tt.payload)
			}
		})
	}
}

func TestParseNil(t *testing.T) {
	key, payload := Parse(nil)
	if key != "" || payload != "" {
		t.Fatalf("Parse(nil) = (%q, %q), want empty", key, payload)
	}
}
