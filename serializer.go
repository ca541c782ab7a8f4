package codelib

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/zoobzio/sentinel"
)

// sealTag is the struct tag that marks a field for sealing.
const sealTag = "seal"

func init() {
	sentinel.Tag(sealTag)
}

// Serializer marshals values of type T through a Codec, sealing tagged fields
// on the way out and opening them on the way in.
//
// Serializers are safe for concurrent use. SetSealer may be called at any
// time to rotate keys.
//
// Validation occurs automatically on first operation. Configure all required
// sealers before the first call to Marshal or Unmarshal.
type Serializer[T any] struct {
	codec Codec

	mu      sync.RWMutex
	sealers map[SealAlgo]Sealer

	validateOnce sync.Once
	validateErr  error

	// Immutable after construction.
	plans    []sealPlan
	typeName string
	cloner   bool
}

// sealPlan describes how to reach and transform a single field.
type sealPlan struct {
	index      []int    // reflect.Value.FieldByIndex access path
	name       string   // dotted field name for error messages
	algo       SealAlgo // tag value
	isBytes    bool     // []byte rather than string
	ptrIndices []int    // positions in index where a pointer is dereferenced
}

// typePlans is the cached scan result for a type.
type typePlans struct {
	typeName   string
	fields     []sealPlan
	throughPtr bool
}

var planCache sync.Map // reflect.Type -> *typePlans

// serializerConfig collects options independent of T.
type serializerConfig struct {
	sealers map[SealAlgo]Sealer
}

// Option configures a Serializer at construction.
type Option func(*serializerConfig)

// WithSealer registers a sealer for the given algorithm.
func WithSealer(algo SealAlgo, sealer Sealer) Option {
	return func(c *serializerConfig) {
		c.sealers[algo] = sealer
	}
}

// NewSerializer creates a Serializer for type T.
//
// T is scanned once for fields tagged `seal:"<algo>"`. Tagged fields must be
// string or []byte. If a tagged field sits behind a pointer, T must implement
// Cloner[T] so that Marshal never touches the caller's value.
func NewSerializer[T any](codec Codec, opts ...Option) (*Serializer[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	var zero T
	_, cloner := any(zero).(Cloner[T])
	if plans.throughPtr && !cloner {
		return nil, newConfigError(ErrNotCloneable, "", plans.typeName)
	}

	cfg := serializerConfig{sealers: make(map[SealAlgo]Sealer)}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Serializer[T]{
		codec:    codec,
		sealers:  cfg.sealers,
		plans:    plans.fields,
		typeName: plans.typeName,
		cloner:   cloner,
	}

	emitSerializerCreated(context.Background(), codec.ContentType(), plans.typeName, len(plans.fields))
	return s, nil
}

// ContentType returns the content type of the underlying codec.
func (s *Serializer[T]) ContentType() string {
	return s.codec.ContentType()
}

// TypeName returns the name of T.
func (s *Serializer[T]) TypeName() string {
	return s.typeName
}

// SetSealer registers a sealer for the given algorithm.
// Returns the serializer for chaining. Safe for concurrent use.
func (s *Serializer[T]) SetSealer(algo SealAlgo, sealer Sealer) *Serializer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sealers[algo] = sealer
	return s
}

// Validate checks that every sealed field has a registered sealer.
//
// Validation also runs automatically on first operation. Calling Validate
// explicitly allows catching configuration errors at startup.
func (s *Serializer[T]) Validate() error {
	return s.ensureValidated()
}

func (s *Serializer[T]) ensureValidated() error {
	s.validateOnce.Do(func() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		s.validateErr = s.validateSealers()
	})
	return s.validateErr
}

func (s *Serializer[T]) validateSealers() error {
	var zero T
	_, sealable := any(&zero).(Sealable)
	_, openable := any(&zero).(Openable)
	if sealable && openable {
		return nil
	}

	for _, plan := range s.plans {
		if _, ok := s.sealers[plan.algo]; !ok {
			return newConfigError(ErrMissingSealer, string(plan.algo), plan.name)
		}
	}
	return nil
}

// Marshal seals tagged fields on a copy of obj and encodes the result.
func (s *Serializer[T]) Marshal(ctx context.Context, obj *T) ([]byte, error) {
	if err := s.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitMarshalStart(ctx, s.codec.ContentType(), s.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, s.codec.ContentType(), s.typeName,
			len(retData), time.Since(start), len(s.plans), retErr)
	}()

	if obj == nil {
		retErr = ErrNilValue
		return nil, retErr
	}

	value := s.copyOf(obj)

	s.mu.RLock()
	if sv, ok := any(&value).(Sealable); ok {
		retErr = sv.Seal(s.sealers)
	} else {
		retErr = s.applySeal(&value)
	}
	s.mu.RUnlock()
	if retErr != nil {
		return nil, retErr
	}

	data, err := s.codec.Marshal(&value)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// Unmarshal decodes data and opens sealed fields.
func (s *Serializer[T]) Unmarshal(ctx context.Context, data []byte) (*T, error) {
	if err := s.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitUnmarshalStart(ctx, s.codec.ContentType(), s.typeName)

	var retErr error
	defer func() {
		emitUnmarshalComplete(ctx, s.codec.ContentType(), s.typeName,
			len(data), time.Since(start), len(s.plans), retErr)
	}()

	var obj T
	if err := s.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if ov, ok := any(&obj).(Openable); ok {
		retErr = ov.Open(s.sealers)
	} else {
		retErr = s.applyOpen(&obj)
	}
	if retErr != nil {
		return nil, retErr
	}

	return &obj, nil
}

// Serialize marshals obj and writes it to w. The caller owns w.
func (s *Serializer[T]) Serialize(ctx context.Context, w io.Writer, obj *T) error {
	if w == nil {
		return ErrNilStream
	}

	data, err := s.Marshal(ctx, obj)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Deserialize reads all of r and unmarshals it. The caller owns r.
func (s *Serializer[T]) Deserialize(ctx context.Context, r io.Reader) (*T, error) {
	if r == nil {
		return nil, ErrNilStream
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return s.Unmarshal(ctx, data)
}

// Save marshals obj and atomically replaces the file at path.
func (s *Serializer[T]) Save(ctx context.Context, path string, obj *T) error {
	data, err := s.Marshal(ctx, obj)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads the file at path and unmarshals it.
func (s *Serializer[T]) Load(ctx context.Context, path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s.Unmarshal(ctx, data)
}

// copyOf returns a value safe to mutate for sealing.
func (s *Serializer[T]) copyOf(obj *T) T {
	if s.cloner {
		return any(*obj).(Cloner[T]).Clone()
	}
	return *obj
}

func (s *Serializer[T]) applySeal(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range s.plans {
		sealer := s.sealers[plan.algo]

		field, ok := fieldFor(rv, plan)
		if !ok || !field.CanSet() {
			continue
		}

		var plaintext []byte
		if plan.isBytes {
			if field.IsNil() {
				continue
			}
			plaintext = field.Bytes()
		} else {
			plaintext = []byte(field.String())
		}

		ciphertext, err := sealer.Seal(plaintext)
		if err != nil {
			return newSealError(ErrSeal, plan.name, err)
		}

		if plan.isBytes {
			field.SetBytes(ciphertext)
		} else {
			field.SetString(base64.StdEncoding.EncodeToString(ciphertext))
		}
	}

	return nil
}

func (s *Serializer[T]) applyOpen(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range s.plans {
		sealer := s.sealers[plan.algo]

		field, ok := fieldFor(rv, plan)
		if !ok || !field.CanSet() {
			continue
		}

		var ciphertext []byte
		if plan.isBytes {
			if len(field.Bytes()) == 0 {
				continue
			}
			ciphertext = field.Bytes()
		} else {
			raw, err := base64.StdEncoding.DecodeString(field.String())
			if err != nil {
				return newSealError(ErrOpen, plan.name, fmt.Errorf("base64 decode: %w", err))
			}
			ciphertext = raw
		}

		plaintext, err := sealer.Open(ciphertext)
		if err != nil {
			return newSealError(ErrOpen, plan.name, err)
		}

		if plan.isBytes {
			field.SetBytes(plaintext)
		} else {
			field.SetString(string(plaintext))
		}
	}

	return nil
}

// fieldFor navigates a field path, dereferencing pointers as needed.
// It reports false when a pointer on the path is nil.
func fieldFor(rv reflect.Value, plan sealPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)
		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}

func getOrBuildPlans[T any]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typePlans), nil
	}

	plans, err := buildPlans[T](typ)
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typePlans), nil
}

func buildPlans[T any](typ reflect.Type) (*typePlans, error) {
	if typ.Kind() != reflect.Struct {
		return &typePlans{typeName: typ.String()}, nil
	}

	spec := sentinel.Scan[T]()
	plans := &typePlans{typeName: spec.TypeName}
	if plans.typeName == "" {
		plans.typeName = typ.Name()
	}

	visiting := map[reflect.Type]bool{typ: true}
	if err := buildPlansRecursive(plans, typ, spec, nil, nil, "", visiting); err != nil {
		return nil, err
	}
	return plans, nil
}

func buildPlansRecursive(plans *typePlans, parent reflect.Type, spec sentinel.Metadata, parentIndex, ptrIndices []int, prefix string, visiting map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if prefix != "" {
			fullName = prefix + "." + field.Name
		}

		rt := field.ReflectType
		switch {
		case rt.Kind() == reflect.Struct:
			if visiting[rt] {
				continue
			}
			visiting[rt] = true
			err := buildPlansRecursive(plans, rt, scanNestedType(rt), fullIndex, ptrIndices, fullName, visiting)
			delete(visiting, rt)
			if err != nil {
				return err
			}
			continue

		case rt.Kind() == reflect.Pointer && rt.Elem().Kind() == reflect.Struct:
			elem := rt.Elem()
			if visiting[elem] {
				continue
			}
			visiting[elem] = true
			nextPtr := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
			before := len(plans.fields)
			err := buildPlansRecursive(plans, elem, scanNestedType(elem), fullIndex, nextPtr, fullName, visiting)
			delete(visiting, elem)
			if err != nil {
				return err
			}
			if len(plans.fields) > before {
				plans.throughPtr = true
			}
			continue
		}

		val, ok := field.Tags[sealTag]
		if !ok {
			val, ok = parent.FieldByIndex(field.Index).Tag.Lookup(sealTag)
		}
		if !ok {
			continue
		}

		if !IsValidSealAlgo(SealAlgo(val)) {
			return newConfigError(ErrInvalidTag, val, fullName)
		}

		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		if !isString && !isBytes {
			return newConfigError(ErrInvalidTag, val, fullName)
		}

		plans.fields = append(plans.fields, sealPlan{
			index:      fullIndex,
			name:       fullName,
			algo:       SealAlgo(val),
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
		})
	}

	return nil
}

// scanNestedType builds metadata for a nested struct type from its exported fields.
func scanNestedType(rt reflect.Type) sentinel.Metadata {
	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := make(map[string]string)
		if val, ok := sf.Tag.Lookup(sealTag); ok {
			tags[sealTag] = val
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Pointer:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}
