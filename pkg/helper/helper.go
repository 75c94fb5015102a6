package helper

import (
	"path"
	"runtime"
)

// GetFuncName returns the caller's function name without its import path,
// e.g. "signup.(*Adapter).HandleSignup".
func GetFuncName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return path.Base(fn.Name())
}
