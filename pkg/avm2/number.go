package avm2

import "github.com/avm2rt/avm2core/internal/avmnumber"

// Number formatting (§4.9). Re-exported directly; these are stateless
// pure functions, nothing to wrap.
var (
	FormatFloat      = avmnumber.FormatFloat
	FormatFloatRadix = avmnumber.FormatFloatRadix
	FormatIntRadix   = avmnumber.FormatIntRadix
	ToFixed          = avmnumber.ToFixed
	ToExponential    = avmnumber.ToExponential
	ToPrecision      = avmnumber.ToPrecision
	ParseFloat       = avmnumber.ParseFloat
	ParseArrayIndex  = avmnumber.ParseArrayIndex
)
