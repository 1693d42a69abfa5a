package source

import (
	"os"
	"path"
)

// MatcherFn decides whether a directory entry is a source file
type MatcherFn func(info os.FileInfo) bool

// JavaScriptFiles matches .js files, skipping directories and excluded base names
func JavaScriptFiles(exclude ...string) MatcherFn {
	return func(info os.FileInfo) bool {
		if info.IsDir() {
			return false
		}
		name := info.Name()
		if path.Ext(name) != ".js" {
			return false
		}
		for _, candidate := range exclude {
			if name == candidate {
				return false
			}
		}
		return true
	}
}
