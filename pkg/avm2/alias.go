package avm2

import (
	"github.com/avm2rt/avm2core/internal/avmbind"
	"github.com/avm2rt/avm2core/internal/avmclass"
	"github.com/avm2rt/avm2core/internal/avmname"
	"github.com/avm2rt/avm2core/internal/avmscope"
	"github.com/avm2rt/avm2core/internal/avmvalue"
)

// Re-exported so callers of this package never need to import internal/...
// directly — the point of a facade.

type (
	Any           = avmvalue.Any
	Object        = avmvalue.Object
	BindStatus    = avmbind.BindStatus
	Namespace     = avmname.Namespace
	NamespaceSet  = avmname.NamespaceSet
	QName         = avmname.QName
	Class         = avmclass.Class
	Trait         = avmclass.Trait
	TraitKind     = avmclass.TraitKind
	TypeKey       = avmclass.TypeKey
	Scope         = avmscope.Stack
	SearchOptions = avmscope.SearchOptions
)

const (
	SUCCESS         = avmbind.SUCCESS
	SOFT_SUCCESS    = avmbind.SOFT_SUCCESS
	NOT_FOUND       = avmbind.NOT_FOUND
	AMBIGUOUS       = avmbind.AMBIGUOUS
	FAILED_READONLY = avmbind.FAILED_READONLY
)

const (
	TraitField       = avmclass.TraitField
	TraitConstant    = avmclass.TraitConstant
	TraitMethod      = avmclass.TraitMethod
	TraitAccessorGet = avmclass.TraitAccessorGet
	TraitAccessorSet = avmclass.TraitAccessorSet
)

func NewClass(name string, parent *Class) *Class { return avmclass.NewClass(name, parent) }

const (
	SearchTraits    = avmscope.SearchTraits
	SearchDynamic   = avmscope.SearchDynamic
	SearchAttribute = avmscope.SearchAttribute
)

var (
	Undefined = avmvalue.Undefined
	Null      = avmvalue.Null
)

func NewBool(b bool) Any       { return avmvalue.NewBool(b) }
func NewInt32(v int32) Any     { return avmvalue.NewInt32(v) }
func NewUint32(v uint32) Any   { return avmvalue.NewUint32(v) }
func NewFloat64(v float64) Any { return avmvalue.NewFloat64(v) }
func NewString(s string) Any   { return avmvalue.NewString(s) }
func NewObjectRef(ref any) Any { return avmvalue.NewObjectRef(ref) }

func NewQName(ns Namespace, local string) QName { return avmname.NewQName(ns, local) }
func NewNamespace(uri string) Namespace         { return avmname.New(uri) }
func NewNamespaceWithPrefix(uri, prefix string) Namespace {
	return avmname.NewWithPrefix(uri, prefix)
}
func NewNamespaceSet(namespaces ...Namespace) NamespaceSet { return avmname.NewNamespaceSet(namespaces...) }
