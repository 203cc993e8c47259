// Package config loads the sleep timer's TOML configuration.
//
// The file lives at ~/.config/lullaby/config.toml unless a path is given.
// A missing file is not an error: Load returns Default(). Present but empty or
// out-of-range fields fall back to their defaults individually.
//
// Example:
//
//	presets = [30, 60, 90, 120]   # minutes, 1-600
//	warning_seconds = 180
//	log_file = "~/.local/state/lullaby/lullaby.log"
//
//	[shutdown]
//	primary = ["am", "start", "-a", "android.intent.action.ACTION_REQUEST_SHUTDOWN"]
//	fallback = ["reboot", "-p"]
//	dry_run = false
//
//	[notify]
//	command = "notify-send"    # "" disables the notification program
//	app_name = "TV sleep timer"
//	timeout_seconds = 10
//	chime = true
//
// Tilde expansion applies to the config path and log_file. Parse errors are
// returned; they are fatal at startup.
package config
