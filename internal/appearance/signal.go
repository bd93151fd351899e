package appearance

import "errors"

var ErrSignalUnavailable = errors.New("platform theme signal unavailable")

// Signal reports the operating system's light/dark preference.
type Signal interface {
	Available() bool
	PrefersDark() (bool, error)
}

// Unavailable is the Signal for platforms without a native preference.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) PrefersDark() (bool, error) { return false, ErrSignalUnavailable }
