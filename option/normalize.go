// Package option extracts the configuration options referenced on traced lines.
package option

import "strings"

// legacyAliases remaps retired edition names to their successors.
// No target may itself be a key or start with the "in" prefix.
var legacyAliases = map[string]string{
	"es5": "es3",
}

const (
	envPrefix    = "in"
	indentOption = "indent"
)

// Normalize maps a raw option accessor name to its canonical option name.
// Environment accessors such as inES5 or inMoz lose the "in" prefix and are
// lower-cased; legacy aliases are remapped and any other name is returned unchanged.
// Normalize(Normalize(x)) == Normalize(x) for every x.
func Normalize(name string) string {
	for strings.HasPrefix(name, envPrefix) && name != indentOption {
		name = strings.ToLower(name[len(envPrefix):])
	}
	if alias, ok := legacyAliases[name]; ok {
		name = alias
	}
	return name
}
