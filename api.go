// Package codelib is a grab bag of small helpers built around one idea: a
// generic Serializer that wraps a value of type T and a Codec.
//
// # Serializers
//
// A Serializer marshals values of a single type through any Codec and can
// seal individual fields on the way out:
//
//	type Account struct {
//	    ID     string `json:"id"`
//	    Secret string `json:"secret" seal:"aes"`
//	}
//
//	s, _ := codelib.NewSerializer[Account](json.New(),
//	    codelib.WithSealer(codelib.SealAES, aesSealer),
//	)
//
//	data, _ := s.Marshal(ctx, &acct) // Secret is encrypted and base64 encoded
//	back, _ := s.Unmarshal(ctx, data) // Secret is opened again
//
// Sealed fields must be string or []byte. The caller's value is never
// mutated: sealing happens on a copy.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Object Helpers
//
// Copy deep-copies a value through a codec round-trip. Equal and Diff
// compare values structurally, while SameEncoding compares their encoded
// bytes. Fingerprint hashes an encoded value.
//
// HasFieldOfType, HasExportedFieldOfType and Implements inspect a value's
// shape at runtime. ValidateType checks a type against an approved list.
package codelib
