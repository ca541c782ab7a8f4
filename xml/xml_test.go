package xml

import (
	"strings"
	"testing"
)

type item struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name"`
	Value int    `xml:"value"`
}

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", got, "application/xml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()
	original := item{ID: "7", Name: "rock & roll", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored item
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalNil(t *testing.T) {
	data, err := New().Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Marshal(nil) = %q, want empty", data)
	}
}

func TestWithHeader(t *testing.T) {
	data, err := New(WithHeader()).Marshal(item{Name: "x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml version=\"1.0\"") {
		t.Errorf("Marshal() = %q, want XML declaration prefix", data)
	}

	var restored item
	if err := New().Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() with declaration error: %v", err)
	}
	if restored.Name != "x" {
		t.Errorf("Name = %q, want %q", restored.Name, "x")
	}
}

func TestWithIndent(t *testing.T) {
	data, err := New(WithIndent("  ")).Marshal(item{Name: "x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "\n  <name>x</name>") {
		t.Errorf("Marshal() = %q, want indented elements", data)
	}
}

func TestMarshalMap(t *testing.T) {
	if _, err := New().Marshal(map[string]int{"a": 1}); err == nil {
		t.Error("Marshal(map) should return error")
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	cases := []string{
		"",
		"<root><name>test</root>",
		"<root></wrong>",
		"<root><name>",
	}

	for _, input := range cases {
		var v item
		if err := New().Unmarshal([]byte(input), &v); err == nil {
			t.Errorf("Unmarshal(%q) should return error", input)
		}
	}
}
