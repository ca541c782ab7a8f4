package codelib

import (
	"errors"
	"testing"
)

type unencodable struct {
	Fn func() `json:"fn"`
}

func TestCopy_Struct(t *testing.T) {
	src := Account{ID: "1", Secret: "s", Blob: []byte{1, 2, 3}}

	dst, err := Copy(&testCodec{}, src)
	if err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	if !Equal(src, dst) {
		t.Errorf("Copy() mismatch: %s", Diff(src, dst))
	}

	dst.Blob[0] = 9
	if src.Blob[0] != 1 {
		t.Error("Copy() should not share slices with the source")
	}
}

func TestCopy_Pointer(t *testing.T) {
	src := &Account{ID: "p", Secret: "ptr"}

	dst, err := Copy(&testCodec{}, src)
	if err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	if dst == src {
		t.Error("Copy() returned the same pointer")
	}
	if dst.Secret != "ptr" {
		t.Errorf("Secret = %q, want %q", dst.Secret, "ptr")
	}
}

func TestCopy_Nil(t *testing.T) {
	var src *Account

	dst, err := Copy(&testCodec{}, src)
	if err != nil {
		t.Fatalf("Copy(nil) error: %v", err)
	}
	if dst != nil {
		t.Errorf("Copy(nil) = %v, want nil", dst)
	}
}

func TestCopy_Map(t *testing.T) {
	src := map[string][]int{"a": {1, 2}}

	dst, err := Copy(&testCodec{}, src)
	if err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	dst["a"][0] = 100
	if src["a"][0] != 1 {
		t.Error("Copy() should not share nested slices")
	}
}

func TestCopy_MarshalError(t *testing.T) {
	_, err := Copy(&testCodec{}, unencodable{Fn: func() {}})
	if !errors.Is(err, ErrMarshal) {
		t.Errorf("Copy() error = %v, want ErrMarshal", err)
	}
}
