package json

import (
	"strings"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/json" {
		t.Errorf("ContentType() = %q, want %q", got, "application/json")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()
	original := record{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"name":"test","value":42}` {
		t.Errorf("Marshal() = %s", data)
	}

	var restored record
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
	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

func TestWithIndent(t *testing.T) {
	data, err := New(WithIndent("  ")).Marshal(record{Name: "x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "{\n  \"name\": \"x\",\n  \"value\": 0\n}"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestWithStrictFields(t *testing.T) {
	input := []byte(`{"name":"x","extra":true}`)

	var loose record
	if err := New().Unmarshal(input, &loose); err != nil {
		t.Errorf("default Unmarshal() error: %v", err)
	}

	var strict record
	err := New(WithStrictFields()).Unmarshal(input, &strict)
	if err == nil || !strings.Contains(err.Error(), "extra") {
		t.Errorf("strict Unmarshal() error = %v, want unknown field error", err)
	}
}

func TestWithStrictFields_TrailingData(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"trailing whitespace", "{\"name\":\"x\"}\n  ", false},
		{"second value", `{"name":"x"}{"name":"y"}`, true},
		{"stray brace", `{"name":"x"}}`, true},
		{"trailing text", `{"name":"x"} junk`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var loose, strict record
			looseErr := New().Unmarshal([]byte(tt.input), &loose)
			strictErr := New(WithStrictFields()).Unmarshal([]byte(tt.input), &strict)

			if (looseErr != nil) != tt.wantErr {
				t.Errorf("default Unmarshal() error = %v, wantErr %v", looseErr, tt.wantErr)
			}
			if (strictErr != nil) != tt.wantErr {
				t.Errorf("strict Unmarshal() error = %v, wantErr %v", strictErr, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct{}
	if err := New().Unmarshal([]byte("invalid json"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
