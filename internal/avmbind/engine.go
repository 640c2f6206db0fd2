package avmbind

import (
	"github.com/avm2rt/avm2core/internal/avmclass"
	"github.com/avm2rt/avm2core/internal/avmname"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// Engine resolves property operations against a receiver's class trait
// table, falling through to a dynamic property bag when the receiver's
// class allows it. It holds no mutable state of its own; class lookup is
// entirely receiver-driven (see HasClass), matching how the teacher keeps
// its FunctionRegistry/ClassRegistry as pure lookup structures separate
// from the values being resolved.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// resolveQName finds the trait for an exact QName on receiver's class
// hierarchy (no ambiguity is possible for an exact QName: the trait table
// is keyed by QName, so at most one trait matches per class in the
// hierarchy, and Class.Lookup already returns the most-derived one).
func (e *Engine) resolveQName(receiver avmvalue.Any, name avmname.QName) (*avmclass.Trait, BindStatus) {
	cls := classOf(receiver)
	if cls == nil {
		return nil, NOT_FOUND
	}
	if t, ok := cls.Lookup(name); ok {
		return t, SUCCESS
	}
	return nil, NOT_FOUND
}

// resolveNamespaceSet implements the §4.1 namespace-set ambiguity rule:
// the first namespace (in declared order) producing a match is tentative;
// a later match in a *different* namespace is AMBIGUOUS unless one trait's
// declaring class is strictly more derived than the other's, in which case
// the more-derived trait silently wins.
func (e *Engine) resolveNamespaceSet(cls *avmclass.Class, local string, nsSet avmname.NamespaceSet) (*avmclass.Trait, BindStatus) {
	var tentative *avmclass.Trait
	var tentativeNS avmname.Namespace
	found := false
	ambiguous := false

	nsSet.Each(func(ns avmname.Namespace) bool {
		qn := avmname.NewQName(ns, local)
		t, ok := cls.Lookup(qn)
		if !ok {
			return true
		}
		if !found {
			tentative, tentativeNS, found = t, ns, true
			return true
		}
		if ns.Equals(tentativeNS) {
			return true // same namespace already resolved most-derived via Lookup
		}
		td, existingd := -1, -1
		if t.DeclaringClass != nil {
			td = t.DeclaringClass.Depth()
		}
		if tentative.DeclaringClass != nil {
			existingd = tentative.DeclaringClass.Depth()
		}
		switch {
		case td > existingd:
			tentative, tentativeNS = t, ns
			ambiguous = false
		case td == existingd:
			ambiguous = true
		default:
			// existing tentative is more derived; keep it, stay unambiguous
		}
		return true
	})

	if !found {
		return nil, NOT_FOUND
	}
	if ambiguous {
		return tentative, AMBIGUOUS
	}
	return tentative, SUCCESS
}

// GetProperty resolves and reads a property by exact QName.
func (e *Engine) GetProperty(receiver avmvalue.Any, name avmname.QName) (avmvalue.Any, BindStatus, error) {
	t, status := e.resolveQName(receiver, name)
	if status != SUCCESS {
		if v, ok := e.getFromDynamicBag(receiver, name.Local); ok {
			return v, SUCCESS, nil
		}
		return avmvalue.Undefined, status, nil
	}
	return e.readTrait(receiver, t)
}

// GetPropertyNS resolves and reads a property by (local name, namespace set).
func (e *Engine) GetPropertyNS(receiver avmvalue.Any, local string, nsSet avmname.NamespaceSet) (avmvalue.Any, BindStatus, error) {
	cls := classOf(receiver)
	if cls == nil {
		if v, ok := e.getFromDynamicBag(receiver, local); ok {
			return v, SUCCESS, nil
		}
		return avmvalue.Undefined, NOT_FOUND, nil
	}
	t, status := e.resolveNamespaceSet(cls, local, nsSet)
	if status == NOT_FOUND {
		if v, ok := e.getFromDynamicBag(receiver, local); ok {
			return v, SUCCESS, nil
		}
		return avmvalue.Undefined, NOT_FOUND, nil
	}
	v, readStatus, err := e.readTrait(receiver, t)
	if status == AMBIGUOUS {
		return v, AMBIGUOUS, err
	}
	return v, readStatus, err
}

// GetPropertyNSSelective resolves local/nsSet against receiver like
// GetPropertyNS, but lets the caller gate which of the three categories
// participate: traits, the dynamic property bag, and (for
// attribute-bearing receivers) the attribute bag. The scope stack uses
// this to honor each frame's SearchOptions bitmask (§4.2).
func (e *Engine) GetPropertyNSSelective(receiver avmvalue.Any, local string, nsSet avmname.NamespaceSet, searchTraits, searchDynamic, searchAttribute bool) (avmvalue.Any, BindStatus, error) {
	if searchAttribute {
		if v, ok := e.getFromAttributeBag(receiver, local); ok {
			return v, SUCCESS, nil
		}
	}
	if searchTraits {
		if cls := classOf(receiver); cls != nil {
			if t, status := e.resolveNamespaceSet(cls, local, nsSet); status != NOT_FOUND {
				v, readStatus, err := e.readTrait(receiver, t)
				if status == AMBIGUOUS {
					return v, AMBIGUOUS, err
				}
				return v, readStatus, err
			}
		}
	}
	if searchDynamic {
		if v, ok := e.getFromDynamicBag(receiver, local); ok {
			return v, SUCCESS, nil
		}
	}
	return avmvalue.Undefined, NOT_FOUND, nil
}

func (e *Engine) getFromAttributeBag(receiver avmvalue.Any, local string) (avmvalue.Any, bool) {
	bag, ok := attributeBagOf(receiver)
	if !ok {
		return avmvalue.Undefined, false
	}
	return bag.GetAttribute(local)
}

func (e *Engine) getFromDynamicBag(receiver avmvalue.Any, local string) (avmvalue.Any, bool) {
	cls := classOf(receiver)
	if cls != nil && !cls.IsDynamic() {
		return avmvalue.Undefined, false
	}
	bag, ok := dynamicBagOf(receiver)
	if !ok {
		return avmvalue.Undefined, false
	}
	return bag.GetDynamic(local)
}

func (e *Engine) readTrait(receiver avmvalue.Any, t *avmclass.Trait) (avmvalue.Any, BindStatus, error) {
	switch t.Kind {
	case avmclass.TraitConstant:
		if v, ok := t.ConstValue.(avmvalue.Any); ok {
			return v, SUCCESS, nil
		}
		return avmvalue.Undefined, SUCCESS, nil
	case avmclass.TraitField, avmclass.TraitAccessorGet:
		acc, ok := t.Native.(FieldAccessor)
		if !ok {
			return avmvalue.Undefined, FAILED_WRITEONLY, nil
		}
		v, err := acc.GetField(receiver)
		return v, SUCCESS, err
	default:
		return avmvalue.Undefined, FAILED_WRITEONLY, nil
	}
}

// SetProperty resolves and writes a property by exact QName.
func (e *Engine) SetProperty(receiver avmvalue.Any, name avmname.QName, value avmvalue.Any) (BindStatus, error) {
	t, status := e.resolveQName(receiver, name)
	if status != SUCCESS {
		if ok := e.setInDynamicBag(receiver, name.Local, value); ok {
			return SUCCESS, nil
		}
		return status, nil
	}
	return e.writeTrait(receiver, t, value)
}

// SetPropertyNS resolves and writes a property by (local name, namespace set).
func (e *Engine) SetPropertyNS(receiver avmvalue.Any, local string, nsSet avmname.NamespaceSet, value avmvalue.Any) (BindStatus, error) {
	cls := classOf(receiver)
	if cls == nil {
		if ok := e.setInDynamicBag(receiver, local, value); ok {
			return SUCCESS, nil
		}
		return NOT_FOUND, nil
	}
	t, status := e.resolveNamespaceSet(cls, local, nsSet)
	if status == NOT_FOUND {
		if ok := e.setInDynamicBag(receiver, local, value); ok {
			return SUCCESS, nil
		}
		return NOT_FOUND, nil
	}
	writeStatus, err := e.writeTrait(receiver, t, value)
	if status == AMBIGUOUS {
		return AMBIGUOUS, err
	}
	return writeStatus, err
}

func (e *Engine) setInDynamicBag(receiver avmvalue.Any, local string, value avmvalue.Any) bool {
	cls := classOf(receiver)
	if cls != nil && !cls.IsDynamic() {
		return false
	}
	bag, ok := dynamicBagOf(receiver)
	if !ok {
		return false
	}
	return bag.SetDynamic(local, value)
}

func (e *Engine) writeTrait(receiver avmvalue.Any, t *avmclass.Trait, value avmvalue.Any) (BindStatus, error) {
	switch t.Kind {
	case avmclass.TraitConstant:
		return FAILED_READONLY, nil
	case avmclass.TraitField:
		if !t.Writable {
			return FAILED_READONLY, nil
		}
		acc, ok := t.Native.(FieldAccessor)
		if !ok {
			return FAILED_READONLY, nil
		}
		err := acc.SetField(receiver, value)
		return SUCCESS, err
	case avmclass.TraitAccessorSet:
		acc, ok := t.Native.(FieldAccessor)
		if !ok {
			return FAILED_READONLY, nil
		}
		err := acc.SetField(receiver, value)
		return SUCCESS, err
	default:
		return FAILED_READONLY, nil
	}
}

// Invoke resolves and calls a method by exact QName.
func (e *Engine) Invoke(receiver avmvalue.Any, name avmname.QName, args []avmvalue.Any) (avmvalue.Any, BindStatus, error) {
	t, status := e.resolveQName(receiver, name)
	if status != SUCCESS {
		return avmvalue.Undefined, status, nil
	}
	return e.invokeTrait(receiver, t, args)
}

// InvokeNS resolves and calls a method by (local name, namespace set).
func (e *Engine) InvokeNS(receiver avmvalue.Any, local string, nsSet avmname.NamespaceSet, args []avmvalue.Any) (avmvalue.Any, BindStatus, error) {
	cls := classOf(receiver)
	if cls == nil {
		return avmvalue.Undefined, NOT_FOUND, nil
	}
	t, status := e.resolveNamespaceSet(cls, local, nsSet)
	if status == NOT_FOUND {
		return avmvalue.Undefined, NOT_FOUND, nil
	}
	v, callStatus, err := e.invokeTrait(receiver, t, args)
	if status == AMBIGUOUS {
		return v, AMBIGUOUS, err
	}
	return v, callStatus, err
}

func (e *Engine) invokeTrait(receiver avmvalue.Any, t *avmclass.Trait, args []avmvalue.Any) (avmvalue.Any, BindStatus, error) {
	if t.Kind == avmclass.TraitConstant {
		return avmvalue.Undefined, FAILED_NOTFUNCTION, nil
	}
	if !t.IsCallable() {
		return avmvalue.Undefined, FAILED_NOTFUNCTION, nil
	}
	invoker, ok := t.Native.(MethodInvoker)
	if !ok {
		return avmvalue.Undefined, FAILED_NOTFUNCTION, nil
	}
	v, err := invoker.Invoke(receiver, args)
	return v, SUCCESS, err
}

// Construct resolves name by exact QName as a trait of the receiver, the
// same way get/set/invoke do, and calls the constructor of the class that
// declares that trait (§4.1 treats construct as a fourth operation).
func (e *Engine) Construct(receiver avmvalue.Any, name avmname.QName, args []avmvalue.Any) (avmvalue.Any, BindStatus, error) {
	t, status := e.resolveQName(receiver, name)
	if status != SUCCESS {
		return avmvalue.Undefined, status, nil
	}
	return e.constructTrait(t, args)
}

func (e *Engine) constructTrait(t *avmclass.Trait, args []avmvalue.Any) (avmvalue.Any, BindStatus, error) {
	cls := t.DeclaringClass
	if cls == nil {
		return avmvalue.Undefined, FAILED_NOTCONSTRUCTOR, nil
	}
	ctor := cls.Constructor()
	if ctor == nil {
		return avmvalue.Undefined, FAILED_NOTCONSTRUCTOR, nil
	}
	ctorFn, ok := ctor.Native.(ConstructorFn)
	if !ok {
		return avmvalue.Undefined, FAILED_NOTCONSTRUCTOR, nil
	}
	v, err := ctorFn.Construct(args)
	return v, SUCCESS, err
}
