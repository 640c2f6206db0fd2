package avm2

import "github.com/avm2rt/avm2core/internal/avmdate"

// TryParseDate attempts to parse s as a permissive English-language date
// (§4.8), returning a non-negative timestamp biased per SPEC_FULL.md Open
// Question 5.
func TryParseDate(s string) (ok bool, timestamp uint64, err error) {
	return avmdate.TryParse(s)
}
