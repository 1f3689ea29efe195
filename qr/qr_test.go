package qr

import (
	"strings"
	"testing"
)

func TestTableLink(t *testing.T) {
	link := TableLink("https://menu.example.com", 12, 4)
	if link != "https://menu.example.com/restaurant/12/table/4" {
		t.Errorf("unexpected link: %s", link)
	}
}

func TestDataURI(t *testing.T) {
	uri, err := DataURI("https://menu.example.com/restaurant/12/table/4")
	if err != nil {
		t.Fatalf("DataURI: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("not a PNG data URI: %.40s", uri)
	}
	if len(uri) < 100 {
		t.Errorf("suspiciously small payload: %d bytes", len(uri))
	}
}
