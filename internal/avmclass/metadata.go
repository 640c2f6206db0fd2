package avmclass

import "unicode"

// MetadataEntry is one key-value pair of a MetadataTag. Per SPEC_FULL.md's
// Open Question resolution, a positional (keyless) value is represented
// with Key == "" rather than a separate variant type, so
// MetadataTagCollection can stay a single ordered slice.
type MetadataEntry struct {
	Key   string
	Value string
}

// MetadataTag is a name plus an ordered sequence of key-value pairs; keys
// may repeat, and Get returns the first match.
type MetadataTag struct {
	Name    string
	Entries []MetadataEntry
}

// Get returns the value of the first entry with the given key and true, or
// "" and false if no entry has that key.
func (t MetadataTag) Get(key string) (string, bool) {
	for _, e := range t.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Positional returns the ordered list of keyless ("positional") values.
func (t MetadataTag) Positional() []string {
	var out []string
	for _, e := range t.Entries {
		if e.Key == "" {
			out = append(out, e.Value)
		}
	}
	return out
}

// MetadataTagCollection is an ordered list of tags; lookup by name returns
// the first match, per §3.3.
type MetadataTagCollection struct {
	Tags []MetadataTag
}

func (c MetadataTagCollection) ByName(name string) (MetadataTag, bool) {
	for _, tag := range c.Tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return MetadataTag{}, false
}

func (c *MetadataTagCollection) Add(tag MetadataTag) {
	c.Tags = append(c.Tags, tag)
}

// ValueNeedsEscape implements the §9 escape-check resolution: a metadata
// string value needs escaping when it contains any non-ASCII character.
// (The alternative "word chars / digits / underscore only" predicate was
// rejected — see DESIGN.md — because it would also flag many ordinary
// ASCII strings containing spaces or punctuation as escapable.)
func ValueNeedsEscape(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
