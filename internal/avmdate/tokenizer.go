// Package avmdate implements a permissive English-language date string
// tokenizer and parser (§4.8): number/number-group/word/timezone-marker
// tokens feed a bitmask-driven component assigner so that sparse,
// loosely-formatted date text still resolves when it is unambiguous.
//
// No teacher analog exists for this subsystem. Built fresh per spec.md
// §4.8's disambiguation rules; golang.org/x/text/width folds fullwidth
// digits/letters to their ASCII form before tokenizing, so the permissive
// parser accepts the same date text typed on a fullwidth input method.
package avmdate

import (
	"strings"

	"golang.org/x/text/width"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokSignedNumber
	tokGroup2
	tokGroup3
	tokWord
	tokUTC
	tokT
	tokAM
	tokPM
	tokMonth
	tokWeekday
)

type token struct {
	kind     tokenKind
	raw      string
	digits   int // digit-width, for tokNumber/tokSignedNumber
	value    int
	sign     int      // +1/-1, for tokSignedNumber
	parts    []string // digit-string parts, for tokGroup2/tokGroup3
	sepChars []byte
	month    int
}

func tokenize(s string) []token {
	s = width.Fold.String(s)
	runes := []rune(s)
	var toks []token

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r':
			i++
		case r == '+' || r == '-':
			if i+1 < len(runes) && isDigit(runes[i+1]) {
				sign := 1
				if r == '-' {
					sign = -1
				}
				j := i + 1
				for j < len(runes) && isDigit(runes[j]) {
					j++
				}
				digits := string(runes[i+1 : j])
				// ±HH:MM is one signed number split by a single colon; fold
				// it back into one digit string so assignTZOffset sees it
				// the same way it sees ±HHMM.
				if j < len(runes) && runes[j] == ':' && j+1 < len(runes) && isDigit(runes[j+1]) {
					m := j + 1
					for m < len(runes) && isDigit(runes[m]) {
						m++
					}
					digits += string(runes[j+1 : m])
					j = m
				}
				toks = append(toks, token{
					kind: tokSignedNumber, raw: string(runes[i:j]),
					digits: len(digits), value: atoi(digits), sign: sign,
				})
				i = j
			} else {
				i++ // a stray sign with nothing to attach to
			}
		case isDigit(r):
			j := i
			for j < len(runes) && isDigit(runes[j]) {
				j++
			}
			parts := []string{string(runes[i:j])}
			var seps []byte
			k := j
			// A '-' after a ':'-separated time group starts a signed UTC offset.
			for len(parts) < 4 && k < len(runes) && isGroupSep(runes[k]) && k+1 < len(runes) && isDigit(runes[k+1]) &&
				!(len(seps) > 0 && seps[0] == ':' && runes[k] == '-') {
				sep := byte(runes[k])
				m := k + 1
				for m < len(runes) && isDigit(runes[m]) {
					m++
				}
				parts = append(parts, string(runes[k+1:m]))
				seps = append(seps, sep)
				k = m
			}
			if len(parts) == 1 {
				toks = append(toks, token{kind: tokNumber, raw: parts[0], digits: len(parts[0]), value: atoi(parts[0])})
			} else {
				kind := tokGroup2
				if len(parts) == 3 {
					kind = tokGroup3
				}
				toks = append(toks, token{kind: kind, raw: string(runes[i:k]), parts: parts, sepChars: seps})
			}
			i = k
		case isLetter(r):
			j := i
			for j < len(runes) && isLetter(runes[j]) {
				j++
			}
			toks = append(toks, classifyWord(string(runes[i:j])))
			i = j
		default:
			i++
		}
	}
	return toks
}

func isDigit(r rune) bool    { return r >= '0' && r <= '9' }
func isLetter(r rune) bool   { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isGroupSep(r rune) bool { return r == '/' || r == '-' || r == '.' || r == ':' }

func atoi(s string) int {
	v := 0
	for _, r := range s {
		v = v*10 + int(r-'0')
	}
	return v
}

func classifyWord(word string) token {
	if word == "T" {
		return token{kind: tokT, raw: word}
	}
	lower := strings.ToLower(word)
	switch lower {
	case "utc", "gmt", "z":
		return token{kind: tokUTC, raw: word}
	case "am":
		return token{kind: tokAM, raw: word}
	case "pm":
		return token{kind: tokPM, raw: word}
	}
	if m, ok := monthNames[lower]; ok {
		return token{kind: tokMonth, raw: word, month: m}
	}
	if weekdayNames[lower] {
		return token{kind: tokWeekday, raw: word}
	}
	return token{kind: tokWord, raw: word}
}

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var weekdayNames = map[string]bool{
	"sun": true, "sunday": true,
	"mon": true, "monday": true,
	"tue": true, "tues": true, "tuesday": true,
	"wed": true, "wednesday": true,
	"thu": true, "thurs": true, "thursday": true,
	"fri": true, "friday": true,
	"sat": true, "saturday": true,
}
