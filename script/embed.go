package script

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed macros/*.tengo
var MacrosFS embed.FS

// LoadSource reads a macro from disk, or from the embedded macros when no
// such file exists. Embedded macros may be named with or without the
// macros/ prefix and .tengo extension.
func LoadSource(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return MacrosFS.ReadFile(cleanMacroPath(name))
}

func cleanMacroPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "script/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "macros/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "macros/" + s
}
