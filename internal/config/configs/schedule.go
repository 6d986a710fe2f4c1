package configs

import "time"

// Schedule configures the in-process dispatcher that re-runs campaigns at
// their users' preferred launch times. Disabled by default; deployments
// that drive launches from an external cron leave it off.
type Schedule struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	Tick    time.Duration `env:"TICK" envDefault:"1m"`
}
