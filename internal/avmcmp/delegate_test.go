package avmcmp

import (
	"testing"

	"github.com/avm2rt/avm2core/internal/avmvalue"
)

func TestFromFuncUsesSuppliedOrdering(t *testing.T) {
	// reverse numeric order
	c := FromFunc(func(x, y avmvalue.Any) int {
		return -sign3(x.AsFloat64(), y.AsFloat64())
	})
	if c.Compare(avmvalue.NewInt32(1), avmvalue.NewInt32(2)) <= 0 {
		t.Fatal("expected reversed ordering from the supplied function")
	}
	if !c.Equals(avmvalue.NewInt32(3), avmvalue.NewInt32(3)) {
		t.Fatal("expected equal operands to compare equal")
	}
}

type echoInvoker struct{ result avmvalue.Any }

func (e echoInvoker) Invoke(args []avmvalue.Any) (avmvalue.Any, error) { return e.result, nil }

func TestFromDynamicFunctionInterpretsSignOnly(t *testing.T) {
	c := FromDynamicFunction(echoInvoker{result: avmvalue.NewFloat64(42)})
	if c.Compare(avmvalue.Undefined, avmvalue.Undefined) <= 0 {
		t.Fatal("expected a positive sign to carry through as > 0")
	}
}
