//go:build windows

package appearance

import "golang.org/x/sys/windows/registry"

const (
	personalizeKey  = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	lightThemeValue = "AppsUseLightTheme"
)

// registrySignal reads the per-user app theme from the Windows registry.
type registrySignal struct{}

func NativeSignal() Signal {
	return registrySignal{}
}

func (registrySignal) Available() bool { return true }

func (registrySignal) PrefersDark() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, err
	}
	defer key.Close()

	value, _, err := key.GetIntegerValue(lightThemeValue)
	if err != nil {
		return false, err
	}
	return value == 0, nil
}
