package configs

import "time"

// Webhook configures the outbound trigger endpoints of the external
// workflow engine. One URL per campaign mode; a mode with no URL fails the
// launch before any state is committed.
type Webhook struct {
	// URL receives standard-mode runs.
	URL string `env:"URL"`
	// LocalBusinessesURL receives local_businesses-mode runs.
	LocalBusinessesURL string `env:"URL_LOCAL_BUSINESSES"`
	// Timeout bounds the outbound call. A timed-out call is treated as
	// indeterminate, not failed.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
