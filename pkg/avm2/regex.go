package avm2

import "github.com/avm2rt/avm2core/internal/avmregex"

// RegexResult carries a transpiled pattern's host-regex text plus the
// group metadata bytecode needs to map capture indices back to names.
type RegexResult = avmregex.Result

// RegexParseError is the structured error a malformed pattern raises.
type RegexParseError = avmregex.ParseError

// TranspileRegex converts a source-dialect regex pattern into the host
// regex engine's dialect (§4.6).
func TranspileRegex(pattern string, multiline, dotall, extended bool) (*RegexResult, error) {
	return avmregex.Transpile(pattern, multiline, dotall, extended)
}
