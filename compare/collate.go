package compare

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated returns a LessFunc which orders strings according to the
// collation rules of the given language (e.g. "ä" next to "a" in German,
// rather than after "z" as a byte-wise comparison would place it).
//
// A collate.Collator keeps internal buffers and isn't safe for concurrent
// use, so calls are serialized.
func Collated(tag language.Tag, opts ...collate.Option) LessFunc[string] {
	var mut sync.Mutex

	collator := collate.New(tag, opts...)

	return func(a, b string) bool {
		mut.Lock()
		defer mut.Unlock()

		return collator.CompareString(a, b) < 0
	}
}
