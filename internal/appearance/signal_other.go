//go:build !windows

package appearance

func NativeSignal() Signal {
	return Unavailable{}
}
