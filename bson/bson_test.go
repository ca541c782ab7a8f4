package bson

import (
	"testing"
)

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", got, "application/bson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type document struct {
		Name  string `bson:"name"`
		Value int    `bson:"value"`
		Blob  []byte `bson:"blob"`
	}
	original := document{Name: "test", Value: 42, Blob: []byte{0, 1, 2}}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored document
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Name != original.Name || restored.Value != original.Value || string(restored.Blob) != string(original.Blob) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalScalar(t *testing.T) {
	if _, err := New().Marshal(42); err == nil {
		t.Error("Marshal(scalar) should return error; BSON needs a document")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v struct{}
	if err := New().Unmarshal([]byte("invalid bson"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
