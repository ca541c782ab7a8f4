package codelib

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serializer events.
var (
	SignalSerializerCreated = capitan.NewSignal("codelib.serializer.created", "Serializer instantiated")
	SignalMarshalStart      = capitan.NewSignal("codelib.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete   = capitan.NewSignal("codelib.marshal.complete", "Marshal operation finished")
	SignalUnmarshalStart    = capitan.NewSignal("codelib.unmarshal.start", "Unmarshal operation beginning")
	SignalUnmarshalComplete = capitan.NewSignal("codelib.unmarshal.complete", "Unmarshal operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeySealedCount = capitan.NewIntKey("sealed_count")
)

func emitSerializerCreated(ctx context.Context, contentType, typeName string, sealed int) {
	capitan.Emit(ctx, SignalSerializerCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySealedCount.Field(sealed),
	)
}

func emitMarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitMarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, sealed int, err error) {
	fields := completeFields(contentType, typeName, size, duration, sealed)
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

func emitUnmarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

func emitUnmarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, opened int, err error) {
	fields := completeFields(contentType, typeName, size, duration, opened)
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}

func completeFields(contentType, typeName string, size int, duration time.Duration, sealed int) []capitan.Field {
	return []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeySealedCount.Field(sealed),
	}
}
