package avmclass

import (
	"testing"

	"github.com/avm2rt/avm2core/internal/avmname"
)

func publicName(local string) avmname.QName {
	return avmname.NewQName(avmname.New(""), local)
}

func TestLookupWalksHierarchy(t *testing.T) {
	base := NewClass("Base", nil)
	base.AddTrait(&Trait{Name: publicName("Speak"), Kind: TraitMethod})

	derived := NewClass("Derived", base)
	derived.AddTrait(&Trait{Name: publicName("Bark"), Kind: TraitMethod})

	if _, ok := derived.Lookup(publicName("Speak")); !ok {
		t.Fatal("expected inherited trait to resolve")
	}
	if _, ok := base.Lookup(publicName("Bark")); ok {
		t.Fatal("base class must not see derived-only traits")
	}
}

func TestTraitLocalNamesAreCaseSensitive(t *testing.T) {
	base := NewClass("Base", nil)
	base.AddTrait(&Trait{Name: publicName("foo"), Kind: TraitField})
	base.AddTrait(&Trait{Name: publicName("Foo"), Kind: TraitField})

	lower, ok := base.OwnTrait(publicName("foo"))
	if !ok {
		t.Fatal("expected to find the lowercase trait")
	}
	upper, ok := base.OwnTrait(publicName("Foo"))
	if !ok {
		t.Fatal("expected to find the capitalized trait")
	}
	if lower == upper {
		t.Fatal("foo and Foo must be distinct traits, not collapsed by case")
	}

	byLocal := base.OwnTraitsByLocal("foo")
	if len(byLocal) != 1 {
		t.Fatalf("expected OwnTraitsByLocal(\"foo\") to match only the exact-case trait, got %d", len(byLocal))
	}
}

func TestIsDescendantOf(t *testing.T) {
	a := NewClass("A", nil)
	b := NewClass("B", a)
	c := NewClass("C", b)

	if !c.IsDescendantOf(a) {
		t.Fatal("C should descend from A")
	}
	if !c.IsDescendantOf(c) {
		t.Fatal("a class is its own descendant")
	}
	if a.IsDescendantOf(c) {
		t.Fatal("A must not descend from C")
	}
}

func TestRegistryGetOrCreateSingleInvocation(t *testing.T) {
	reg := NewRegistry()
	calls := 0
	create := func() *Class {
		calls++
		return NewClass("Widget", nil)
	}

	c1 := reg.GetOrCreate(TypeKey("widget"), create)
	c2 := reg.GetOrCreate(TypeKey("widget"), create)

	if c1 != c2 {
		t.Fatal("expected the same class instance on repeated GetOrCreate")
	}
	if calls != 1 {
		t.Fatalf("expected create to run exactly once, ran %d times", calls)
	}
}

func TestMetadataEscapeRule(t *testing.T) {
	if ValueNeedsEscape("hello world") {
		t.Fatal("plain ASCII with a space must not need escaping")
	}
	if !ValueNeedsEscape("héllo") {
		t.Fatal("non-ASCII content must need escaping")
	}
}

func TestConstantTraitNotWritable(t *testing.T) {
	tr := &Trait{Name: publicName("Pi"), Kind: TraitConstant}
	if tr.IsWritable() {
		t.Fatal("constants must never be writable")
	}
	if !tr.IsReadable() {
		t.Fatal("constants must be readable")
	}
}
