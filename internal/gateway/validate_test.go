package gateway

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseURLListIgnoresBlankLines(t *testing.T) {
	raw := "\nhttps://reddit.com/r/golang/comments/a\n\n  \nhttps://old.reddit.com/r/golang/comments/b\n"

	urls, err := ParseURLList(raw)
	if err != nil {
		t.Fatalf("ParseURLList: %v", err)
	}
	want := []string{
		"https://reddit.com/r/golang/comments/a",
		"https://old.reddit.com/r/golang/comments/b",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestParseURLListRejectsForeignURL(t *testing.T) {
	raw := "https://reddit.com/r/golang/comments/a\nhttps://example.com/post"

	_, err := ParseURLList(raw)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if !strings.Contains(verr.Reason, "line 2") {
		t.Errorf("reason = %q, want the offending line number", verr.Reason)
	}
}

func TestParseURLListRejectsEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "\n\n", "   \n  "} {
		_, err := ParseURLList(raw)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ParseURLList(%q) error = %v, want ValidationError", raw, err)
		}
	}
}

func TestParseURLListTrimsWhitespace(t *testing.T) {
	urls, err := ParseURLList("  https://reddit.com/r/golang/comments/a  ")
	if err != nil {
		t.Fatalf("ParseURLList: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://reddit.com/r/golang/comments/a" {
		t.Errorf("urls = %v, want trimmed single url", urls)
	}
}
