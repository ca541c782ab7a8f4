package codelib

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Cloner allows types to provide deep copy logic.
//
// A Serializer only needs it when a sealed field is reached through a
// pointer; value-only paths are sealed on a shallow copy.
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}

// Sealable bypasses reflection when marshaling.
// The receiver is a copy, so mutations are safe.
type Sealable interface {
	Seal(sealers map[SealAlgo]Sealer) error
}

// Openable bypasses reflection when unmarshaling.
// Called on freshly decoded data.
type Openable interface {
	Open(sealers map[SealAlgo]Sealer) error
}
