package avmbind

import (
	"errors"
	"testing"

	"github.com/kr/pretty"

	"github.com/avm2rt/avm2core/internal/avmclass"
	"github.com/avm2rt/avm2core/internal/avmname"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// fakeObject is a minimal HasClass + DynamicBag receiver for engine tests.
type fakeObject struct {
	class *avmclass.Class
	dyn   map[string]avmvalue.Any
}

func (f *fakeObject) Class() *avmclass.Class { return f.class }

func (f *fakeObject) GetDynamic(local string) (avmvalue.Any, bool) {
	v, ok := f.dyn[local]
	return v, ok
}

func (f *fakeObject) SetDynamic(local string, value avmvalue.Any) bool {
	if f.dyn == nil {
		f.dyn = map[string]avmvalue.Any{}
	}
	f.dyn[local] = value
	return true
}

func newReceiver(obj *fakeObject) avmvalue.Any {
	return avmvalue.NewObjectRef(obj)
}

type constField struct{ v avmvalue.Any }

func (c constField) GetField(avmvalue.Any) (avmvalue.Any, error) { return c.v, nil }
func (c constField) SetField(avmvalue.Any, avmvalue.Any) error   { return errors.New("read only field") }

type echoMethod struct{}

func (echoMethod) Invoke(receiver avmvalue.Any, args []avmvalue.Any) (avmvalue.Any, error) {
	if len(args) == 0 {
		return avmvalue.Undefined, nil
	}
	return args[0], nil
}

func TestGetPropertyByQNameSuccess(t *testing.T) {
	cls := avmclass.NewClass("Widget", nil)
	name := avmname.NewQName(avmname.New(""), "Value")
	cls.AddTrait(&avmclass.Trait{
		Name:   name,
		Kind:   avmclass.TraitField,
		Native: constField{v: avmvalue.NewInt32(7)},
	})

	e := NewEngine()
	receiver := newReceiver(&fakeObject{class: cls})

	v, status, err := e.GetProperty(receiver, name)
	if err != nil || status != SUCCESS {
		t.Fatalf("unexpected result: %# v, status=%v, err=%v", pretty.Formatter(v), status, err)
	}
	if v.AsInt32() != 7 {
		t.Fatalf("expected 7, got %v", v.AsInt32())
	}
}

func TestGetPropertyNotFoundFallsBackToDynamicBag(t *testing.T) {
	cls := avmclass.NewClass("Widget", nil)
	cls.SetDynamic(true)
	e := NewEngine()

	obj := &fakeObject{class: cls}
	receiver := newReceiver(obj)
	name := avmname.NewQName(avmname.New(""), "Extra")

	v, status, err := e.GetProperty(receiver, name)
	if err != nil || status != NOT_FOUND {
		t.Fatalf("expected NOT_FOUND before any dynamic slot is set, got %v %v", status, err)
	}

	obj.SetDynamic("Extra", avmvalue.NewString("hi"))
	v, status, err = e.GetProperty(receiver, name)
	if err != nil || status != SUCCESS || v.AsString() != "hi" {
		t.Fatalf("expected dynamic slot to resolve, got %v %v %v", v, status, err)
	}
}

func TestSetPropertyOnConstantFailsReadonly(t *testing.T) {
	cls := avmclass.NewClass("Widget", nil)
	name := avmname.NewQName(avmname.New(""), "Pi")
	cls.AddTrait(&avmclass.Trait{Name: name, Kind: avmclass.TraitConstant, ConstValue: avmvalue.NewFloat64(3.14)})

	e := NewEngine()
	receiver := newReceiver(&fakeObject{class: cls})

	status, err := e.SetProperty(receiver, name, avmvalue.NewFloat64(1))
	if err != nil || status != FAILED_READONLY {
		t.Fatalf("expected FAILED_READONLY, got %v %v", status, err)
	}
}

func TestInvokeNonCallableFails(t *testing.T) {
	cls := avmclass.NewClass("Widget", nil)
	name := avmname.NewQName(avmname.New(""), "Pi")
	cls.AddTrait(&avmclass.Trait{Name: name, Kind: avmclass.TraitConstant, ConstValue: avmvalue.NewFloat64(3.14)})

	e := NewEngine()
	receiver := newReceiver(&fakeObject{class: cls})

	_, status, _ := e.Invoke(receiver, name, nil)
	if status != FAILED_NOTFUNCTION {
		t.Fatalf("expected FAILED_NOTFUNCTION, got %v", status)
	}
}

func TestInvokeSuccess(t *testing.T) {
	cls := avmclass.NewClass("Widget", nil)
	name := avmname.NewQName(avmname.New(""), "Echo")
	cls.AddTrait(&avmclass.Trait{Name: name, Kind: avmclass.TraitMethod, Native: echoMethod{}})

	e := NewEngine()
	receiver := newReceiver(&fakeObject{class: cls})

	v, status, err := e.Invoke(receiver, name, []avmvalue.Any{avmvalue.NewInt32(99)})
	if err != nil || status != SUCCESS || v.AsInt32() != 99 {
		t.Fatalf("unexpected invoke result: %v %v %v", v, status, err)
	}
}

// Namespace-set ambiguity: two same-depth classes contributing the same
// local name under different namespaces must be AMBIGUOUS; a more-derived
// trait in a different namespace must win without ambiguity.
func TestNamespaceSetAmbiguity(t *testing.T) {
	nsA := avmname.New("urn:a")
	nsB := avmname.New("urn:b")

	base := avmclass.NewClass("Base", nil)
	base.AddTrait(&avmclass.Trait{
		Name:   avmname.NewQName(nsA, "Value"),
		Kind:   avmclass.TraitField,
		Native: constField{v: avmvalue.NewInt32(1)},
	})
	base.AddTrait(&avmclass.Trait{
		Name:   avmname.NewQName(nsB, "Value"),
		Kind:   avmclass.TraitField,
		Native: constField{v: avmvalue.NewInt32(2)},
	})

	e := NewEngine()
	receiver := newReceiver(&fakeObject{class: base})

	set := avmname.NewNamespaceSet(nsA, nsB)
	_, status, _ := e.GetPropertyNS(receiver, "Value", set)
	if status != AMBIGUOUS {
		t.Fatalf("expected AMBIGUOUS for same-depth cross-namespace match, got %v", status)
	}
}

func TestNamespaceSetMoreDerivedWins(t *testing.T) {
	nsA := avmname.New("urn:a")
	nsB := avmname.New("urn:b")

	base := avmclass.NewClass("Base", nil)
	base.AddTrait(&avmclass.Trait{
		Name:   avmname.NewQName(nsA, "Value"),
		Kind:   avmclass.TraitField,
		Native: constField{v: avmvalue.NewInt32(1)},
	})

	derived := avmclass.NewClass("Derived", base)
	derived.AddTrait(&avmclass.Trait{
		Name:   avmname.NewQName(nsB, "Value"),
		Kind:   avmclass.TraitField,
		Native: constField{v: avmvalue.NewInt32(2)},
	})

	e := NewEngine()
	receiver := newReceiver(&fakeObject{class: derived})

	set := avmname.NewNamespaceSet(nsA, nsB)
	v, status, err := e.GetPropertyNS(receiver, "Value", set)
	if err != nil || status != SUCCESS {
		t.Fatalf("expected SUCCESS (more-derived wins), got %v %v", status, err)
	}
	if v.AsInt32() != 2 {
		t.Fatalf("expected the more-derived class's value (2), got %v", v.AsInt32())
	}
}
