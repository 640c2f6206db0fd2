package avmbind

import (
	"github.com/avm2rt/avm2core/internal/avmclass"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// HasClass is implemented by object references so the engine can find
// their class without a side-table lookup. Receivers that do not
// implement it are treated as classless (every operation resolves
// NOT_FOUND unless a DynamicBag still applies).
type HasClass interface {
	Class() *avmclass.Class
}

// DynamicBag is the optional interface an object reference implements to
// expose dynamic (non-trait) properties, consulted when the receiver's
// class is flagged dynamic (§4.1: "if the object is dynamic, its dynamic
// property bag") and for receivers that have no class.
type DynamicBag interface {
	GetDynamic(local string) (avmvalue.Any, bool)
	SetDynamic(local string, value avmvalue.Any) bool
}

// FieldAccessor is the native backing of a TraitField.
type FieldAccessor interface {
	GetField(receiver avmvalue.Any) (avmvalue.Any, error)
	SetField(receiver avmvalue.Any, value avmvalue.Any) error
}

// AttributeBag is the optional interface an object reference implements to
// expose E4X-style attribute lookup (@name), consulted only when a caller
// asks for attribute search (§4.2's ATTRIBUTE search-option flag).
type AttributeBag interface {
	GetAttribute(local string) (avmvalue.Any, bool)
}

// MethodInvoker is the native backing of a TraitMethod or an accessor.
type MethodInvoker interface {
	Invoke(receiver avmvalue.Any, args []avmvalue.Any) (avmvalue.Any, error)
}

// ConstructorFn is the native backing of a class's constructor trait.
type ConstructorFn interface {
	Construct(args []avmvalue.Any) (avmvalue.Any, error)
}

func classOf(receiver avmvalue.Any) *avmclass.Class {
	ref, ok := receiver.Ref()
	if !ok {
		return nil
	}
	if hc, ok := ref.(HasClass); ok {
		return hc.Class()
	}
	return nil
}

func dynamicBagOf(receiver avmvalue.Any) (DynamicBag, bool) {
	ref, ok := receiver.Ref()
	if !ok {
		return nil, false
	}
	bag, ok := ref.(DynamicBag)
	return bag, ok
}

func attributeBagOf(receiver avmvalue.Any) (AttributeBag, bool) {
	ref, ok := receiver.Ref()
	if !ok {
		return nil, false
	}
	bag, ok := ref.(AttributeBag)
	return bag, ok
}
