//go:build chessdebug

package chess

func debugAssertImpl(cond bool, msg string) {
	if !cond {
		panic("chess: " + msg)
	}
}
