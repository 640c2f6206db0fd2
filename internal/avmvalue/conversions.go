package avmvalue

import (
	"math"
	"strconv"

	"github.com/avm2rt/avm2core/internal/avmnumber"
)

// stringToFloatTotal never fails: invalid input yields NaN (§4.4 rule).
func stringToFloatTotal(s string) float64 {
	f, ok := avmnumber.ParseFloat(s, false)
	if !ok {
		return math.NaN()
	}
	return f
}

func int32ToString(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func uint32ToString(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func floatToStringNoNegZero(f float64) string {
	return avmnumber.FormatFloat(f)
}
