package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointers, so that a trace can say "BraveOtter" instead of
// "(3.25, -1.5)" or an address when the same vertex shows up over and over.
// Names are handed out lazily in order of first use and kept until Reset. Not
// safe for concurrent use.

var (
	memo = make(map[interface{}]string)
	used = make(map[string]struct{})
)

// By default the sequence of names is the same on every run. Call this to make
// it vary, as a reminder that a name only identifies a pointer within one run.
func Randomize() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fresh()
	memo[obj] = r
	used[r] = struct{}{}
	return r
}

// Forget all assigned names.
func Reset() {
	memo = make(map[interface{}]string)
	used = make(map[string]struct{})
}

func fresh() string {
	// The word lists are long, so collisions are rare. Fall back to a suffix
	// rather than retrying forever.
	for i := 0; i < 8; i++ {
		r := title(petname.Adjective()) + title(petname.Name())
		if _, ok := used[r]; !ok {
			return r
		}
	}
	return fmt.Sprintf("Point%d", len(used))
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
