// ABOUTME: Custom tea.Msg types for the dropdown host
// ABOUTME: Config reloads arrive from the watcher goroutine via Program.Send

package btea

import "github.com/mauromedda/tui-dropdown/internal/config"

// ConfigReloadedMsg carries settings reloaded after a config file change.
// Err is set when reloading failed; the previous settings stay in effect.
type ConfigReloadedMsg struct {
	Settings *config.Settings
	Err      error
}
