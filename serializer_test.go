package codelib

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// testCodec is a simple JSON codec for testing.
type testCodec struct{}

func (c *testCodec) ContentType() string { return "application/json" }

func (c *testCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *testCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// PlainUser has no seal tags.
type PlainUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account seals a string and a byte slice.
type Account struct {
	ID     string `json:"id"`
	Secret string `json:"secret" seal:"aes"`
	Blob   []byte `json:"blob" seal:"xchacha"`
}

// Wallet nests an Account by value.
type Wallet struct {
	Owner   string  `json:"owner"`
	Account Account `json:"account"`
}

// Vault nests an Account behind a pointer without implementing Cloner.
type Vault struct {
	Account *Account `json:"account"`
}

// SafeVault nests an Account behind a pointer and deep-copies it.
type SafeVault struct {
	Label   string   `json:"label"`
	Account *Account `json:"account"`
}

func (v SafeVault) Clone() SafeVault {
	out := SafeVault{Label: v.Label}
	if v.Account != nil {
		acct := *v.Account
		acct.Blob = append([]byte(nil), v.Account.Blob...)
		out.Account = &acct
	}
	return out
}

// Node refers to itself.
type Node struct {
	Name string `json:"name" seal:"aes"`
	Next *Node  `json:"next"`
}

func (n Node) Clone() Node { return n }

type badAlgo struct {
	Secret string `seal:"rot13"`
}

type badKind struct {
	Count int `seal:"aes"`
}

// CustomSealed bypasses reflection.
type CustomSealed struct {
	Value string `json:"value" seal:"aes"`
}

func (c *CustomSealed) Seal(_ map[SealAlgo]Sealer) error {
	c.Value = "sealed:" + c.Value
	return nil
}

func (c *CustomSealed) Open(_ map[SealAlgo]Sealer) error {
	c.Value = strings.TrimPrefix(c.Value, "sealed:")
	return nil
}

func newAccountSerializer(t *testing.T) *Serializer[Account] {
	t.Helper()
	aesSealer, err := AES(testKey)
	if err != nil {
		t.Fatalf("AES() error: %v", err)
	}
	xchacha, err := XChaCha(testKey)
	if err != nil {
		t.Fatalf("XChaCha() error: %v", err)
	}

	s, err := NewSerializer[Account](&testCodec{},
		WithSealer(SealAES, aesSealer),
		WithSealer(SealXChaCha, xchacha),
	)
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}
	return s
}

func TestNewSerializer(t *testing.T) {
	s, err := NewSerializer[PlainUser](&testCodec{})
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}
	if s.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", s.ContentType(), "application/json")
	}
	if s.TypeName() != "PlainUser" {
		t.Errorf("TypeName() = %q, want %q", s.TypeName(), "PlainUser")
	}
}

func TestNewSerializer_NonStruct(t *testing.T) {
	s, err := NewSerializer[map[string]any](&testCodec{})
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}

	data, err := s.Marshal(context.Background(), &map[string]any{"a": 1.0})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	back, err := s.Unmarshal(context.Background(), data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if (*back)["a"] != 1.0 {
		t.Errorf("round-trip = %v, want a=1", *back)
	}
}

func TestNewSerializer_InvalidTags(t *testing.T) {
	if _, err := NewSerializer[badAlgo](&testCodec{}); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("unknown algorithm error = %v, want ErrInvalidTag", err)
	}

	_, err := NewSerializer[badKind](&testCodec{})
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("non-string field error = %v, want ErrInvalidTag", err)
	}
	var configErr *ConfigError
	if !errors.As(err, &configErr) || configErr.Field != "Count" {
		t.Errorf("expected *ConfigError for field Count, got %v", err)
	}
}

func TestNewSerializer_PointerNeedsCloner(t *testing.T) {
	if _, err := NewSerializer[Vault](&testCodec{}); !errors.Is(err, ErrNotCloneable) {
		t.Errorf("NewSerializer[Vault]() error = %v, want ErrNotCloneable", err)
	}
	if _, err := NewSerializer[SafeVault](&testCodec{}); err != nil {
		t.Errorf("NewSerializer[SafeVault]() error: %v", err)
	}
}

func TestNewSerializer_RecursiveType(t *testing.T) {
	s, err := NewSerializer[Node](&testCodec{})
	if err != nil {
		t.Fatalf("NewSerializer[Node]() error: %v", err)
	}
	if len(s.plans) != 1 {
		t.Errorf("plans = %d, want 1", len(s.plans))
	}
}

func TestSerializer_Validate_MissingSealer(t *testing.T) {
	s, _ := NewSerializer[Account](&testCodec{})

	err := s.Validate()
	if !errors.Is(err, ErrMissingSealer) {
		t.Fatalf("Validate() error = %v, want ErrMissingSealer", err)
	}

	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("Validate() error should be *ConfigError, got %T", err)
	}
	if configErr.Algorithm != "aes" || configErr.Field != "Secret" {
		t.Errorf("ConfigError = %+v, want aes/Secret", configErr)
	}

	if _, err := s.Marshal(context.Background(), &Account{}); !errors.Is(err, ErrMissingSealer) {
		t.Errorf("Marshal() error = %v, want ErrMissingSealer", err)
	}
}

func TestSerializer_SetSealer_Chaining(t *testing.T) {
	s, _ := NewSerializer[Account](&testCodec{})
	aesSealer, _ := AES(testKey)

	if got := s.SetSealer(SealAES, aesSealer); got != s {
		t.Error("SetSealer() should return serializer for chaining")
	}
}

func TestSerializer_RoundTrip(t *testing.T) {
	s := newAccountSerializer(t)
	ctx := context.Background()

	original := &Account{ID: "a1", Secret: "hunter2", Blob: []byte("raw bytes")}

	data, err := s.Marshal(ctx, original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if bytes.Contains(data, []byte("hunter2")) {
		t.Error("marshaled data should not contain the plaintext secret")
	}
	if original.Secret != "hunter2" || string(original.Blob) != "raw bytes" {
		t.Error("Marshal() must not mutate the caller's value")
	}

	restored, err := s.Unmarshal(ctx, data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if diff := Diff(original, restored); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializer_NestedValue(t *testing.T) {
	aesSealer, _ := AES(testKey)
	xchacha, _ := XChaCha(testKey)
	s, err := NewSerializer[Wallet](&testCodec{},
		WithSealer(SealAES, aesSealer),
		WithSealer(SealXChaCha, xchacha),
	)
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}

	original := &Wallet{Owner: "bob", Account: Account{ID: "x", Secret: "nested-secret"}}
	data, err := s.Marshal(context.Background(), original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if bytes.Contains(data, []byte("nested-secret")) {
		t.Error("nested secret should be sealed")
	}

	restored, err := s.Unmarshal(context.Background(), data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Account.Secret != "nested-secret" {
		t.Errorf("Account.Secret = %q, want %q", restored.Account.Secret, "nested-secret")
	}
}

func TestSerializer_NestedPointer(t *testing.T) {
	aesSealer, _ := AES(testKey)
	xchacha, _ := XChaCha(testKey)
	s, err := NewSerializer[SafeVault](&testCodec{},
		WithSealer(SealAES, aesSealer),
		WithSealer(SealXChaCha, xchacha),
	)
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}
	ctx := context.Background()

	original := &SafeVault{Label: "v", Account: &Account{Secret: "behind-pointer"}}
	data, err := s.Marshal(ctx, original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if original.Account.Secret != "behind-pointer" {
		t.Error("Marshal() must not mutate values behind pointers")
	}

	restored, err := s.Unmarshal(ctx, data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Account == nil || restored.Account.Secret != "behind-pointer" {
		t.Errorf("restored = %+v, want opened secret", restored.Account)
	}

	// A nil pointer on the path is skipped.
	empty := &SafeVault{Label: "empty"}
	data, err = s.Marshal(ctx, empty)
	if err != nil {
		t.Fatalf("Marshal(nil pointer) error: %v", err)
	}
	if _, err := s.Unmarshal(ctx, data); err != nil {
		t.Fatalf("Unmarshal(nil pointer) error: %v", err)
	}
}

func TestSerializer_Override(t *testing.T) {
	s, err := NewSerializer[CustomSealed](&testCodec{})
	if err != nil {
		t.Fatalf("NewSerializer() error: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() should pass for override types, got %v", err)
	}

	data, err := s.Marshal(context.Background(), &CustomSealed{Value: "x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Contains(data, []byte("sealed:x")) {
		t.Errorf("Marshal() = %s, want override output", data)
	}

	restored, err := s.Unmarshal(context.Background(), data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Value != "x" {
		t.Errorf("Value = %q, want %q", restored.Value, "x")
	}
}

func TestSerializer_NilValue(t *testing.T) {
	s, _ := NewSerializer[PlainUser](&testCodec{})

	if _, err := s.Marshal(context.Background(), nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("Marshal(nil) error = %v, want ErrNilValue", err)
	}
}

func TestSerializer_UnmarshalErrors(t *testing.T) {
	s := newAccountSerializer(t)
	ctx := context.Background()

	if _, err := s.Unmarshal(ctx, []byte("not json")); !errors.Is(err, ErrUnmarshal) {
		t.Errorf("Unmarshal(invalid) error = %v, want ErrUnmarshal", err)
	}

	_, err := s.Unmarshal(ctx, []byte(`{"id":"1","secret":"!!not-base64!!"}`))
	if !errors.Is(err, ErrOpen) {
		t.Errorf("Unmarshal(bad base64) error = %v, want ErrOpen", err)
	}

	_, err = s.Unmarshal(ctx, []byte(`{"id":"1","secret":"dGFtcGVyZWQtY2lwaGVydGV4dC12YWx1ZQ=="}`))
	if !errors.Is(err, ErrOpen) {
		t.Errorf("Unmarshal(tampered) error = %v, want ErrOpen", err)
	}
}

func TestSerializer_Streams(t *testing.T) {
	s := newAccountSerializer(t)
	ctx := context.Background()

	if err := s.Serialize(ctx, nil, &Account{}); !errors.Is(err, ErrNilStream) {
		t.Errorf("Serialize(nil writer) error = %v, want ErrNilStream", err)
	}
	if _, err := s.Deserialize(ctx, nil); !errors.Is(err, ErrNilStream) {
		t.Errorf("Deserialize(nil reader) error = %v, want ErrNilStream", err)
	}

	var buf bytes.Buffer
	if err := s.Serialize(ctx, &buf, nil); !errors.Is(err, ErrNilValue) {
		t.Errorf("Serialize(nil value) error = %v, want ErrNilValue", err)
	}

	original := &Account{ID: "s1", Secret: "stream"}
	if err := s.Serialize(ctx, &buf, original); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	restored, err := s.Deserialize(ctx, &buf)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}
	if restored.Secret != "stream" {
		t.Errorf("Secret = %q, want %q", restored.Secret, "stream")
	}
}

func TestSerializer_SaveLoad(t *testing.T) {
	s := newAccountSerializer(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "account.json")

	original := &Account{ID: "f1", Secret: "on-disk"}
	if err := s.Save(ctx, path, original); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	restored, err := s.Load(ctx, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if restored.Secret != "on-disk" {
		t.Errorf("Secret = %q, want %q", restored.Secret, "on-disk")
	}

	if _, err := s.Load(ctx, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load(missing) should fail")
	}
}

func TestSerializer_Concurrent(t *testing.T) {
	s := newAccountSerializer(t)
	ctx := context.Background()
	aesSealer, _ := AES(testKey)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				s.SetSealer(SealAES, aesSealer)
			}
			data, err := s.Marshal(ctx, &Account{ID: "c", Secret: "concurrent"})
			if err != nil {
				t.Errorf("Marshal() error: %v", err)
				return
			}
			if _, err := s.Unmarshal(ctx, data); err != nil {
				t.Errorf("Unmarshal() error: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
