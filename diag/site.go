package diag

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Site identifies the call site that originated an allocation or log
// entry.
type Site struct {
	File string
	Func string
	Line int
}

// Caller captures the site skip+1 frames up the stack: Caller(0)
// describes the caller of Caller itself.
func Caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{File: "?", Func: "?"}
	}
	s := Site{File: filepath.Base(file), Line: line}
	if f := runtime.FuncForPC(pc); f != nil {
		name := f.Name()
		// Trim the package path, keep "Type.Method" or "fn".
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.Index(name, "."); i >= 0 {
			name = name[i+1:]
		}
		s.Func = name
	}
	return s
}
