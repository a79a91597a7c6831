package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suffixes are the top level suffixes a Namesdao name may carry, in the
// order they are tried. At most one is removed.
var Suffixes = []string{".xch", ".chia"}

// Normalize lowercases name and strips one recognised suffix, so that
// "Hello.XCH", "hello.chia" and "hello" all map to "hello".
func Normalize(name string) string {
	n := cases.Lower(language.Und).String(strings.TrimSpace(name))
	for _, suffix := range Suffixes {
		if strings.HasSuffix(n, suffix) {
			return strings.TrimSuffix(n, suffix)
		}
	}
	return n
}
