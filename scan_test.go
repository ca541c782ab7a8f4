package codelib

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type scanSubject struct {
	Name    string
	count   int
	Created []byte
}

func (s scanSubject) String() string { return s.Name }

func TestHasFieldOfType(t *testing.T) {
	v := scanSubject{}

	tests := []struct {
		name string
		v    any
		typ  reflect.Type
		want bool
	}{
		{"exported string", v, reflect.TypeFor[string](), true},
		{"unexported int", v, reflect.TypeFor[int](), true},
		{"through pointer", &v, reflect.TypeFor[[]byte](), true},
		{"absent type", v, reflect.TypeFor[float64](), false},
		{"non-struct", 42, reflect.TypeFor[int](), false},
		{"nil", nil, reflect.TypeFor[int](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFieldOfType(tt.v, tt.typ); got != tt.want {
				t.Errorf("HasFieldOfType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasExportedFieldOfType(t *testing.T) {
	if !HasExportedFieldOfType[scanSubject](reflect.TypeFor[string]()) {
		t.Error("HasExportedFieldOfType(string) = false, want true")
	}
	if HasExportedFieldOfType[scanSubject](reflect.TypeFor[int]()) {
		t.Error("HasExportedFieldOfType(int) = true, want false for unexported field")
	}
	if !HasExportedFieldOfType[*scanSubject](reflect.TypeFor[[]byte]()) {
		t.Error("HasExportedFieldOfType through pointer = false, want true")
	}
	if HasExportedFieldOfType[int](reflect.TypeFor[int]()) {
		t.Error("HasExportedFieldOfType on non-struct = true, want false")
	}
}

func TestHasFieldOrExportedOfType(t *testing.T) {
	v := scanSubject{}
	if !HasFieldOrExportedOfType(v, reflect.TypeFor[int]()) {
		t.Error("HasFieldOrExportedOfType(int) = false, want true")
	}
	if HasFieldOrExportedOfType(v, reflect.TypeFor[bool]()) {
		t.Error("HasFieldOrExportedOfType(bool) = true, want false")
	}
}

func TestImplements(t *testing.T) {
	if !Implements[fmt.Stringer](scanSubject{}) {
		t.Error("Implements[fmt.Stringer]() = false, want true")
	}
	if Implements[fmt.Stringer](PlainUser{}) {
		t.Error("Implements[fmt.Stringer](PlainUser) = true, want false")
	}
	if Implements[fmt.Stringer](nil) {
		t.Error("Implements(nil) = true, want false")
	}
	if ImplementsType(scanSubject{}, reflect.TypeFor[string]()) {
		t.Error("ImplementsType with non-interface = true, want false")
	}
}

func TestValidateType(t *testing.T) {
	approved := []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[string]()}

	if err := ValidateType(approved, reflect.TypeFor[int]()); err != nil {
		t.Errorf("ValidateType(int) error: %v", err)
	}

	err := ValidateType(approved, reflect.TypeFor[float64]())
	if !errors.Is(err, ErrUnapprovedType) {
		t.Fatalf("ValidateType(float64) error = %v, want ErrUnapprovedType", err)
	}
	want := "the type, 'float64', is not valid for this operation. Try a different type."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = ValidateType(approved, reflect.TypeFor[bool](), "bools are not allowed")
	if err == nil || err.Error() != "bools are not allowed" {
		t.Errorf("ValidateType() custom message = %v", err)
	}
}
