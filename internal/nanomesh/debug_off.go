//go:build !debug
// +build !debug

package nanomesh

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
