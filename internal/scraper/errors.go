package scraper

import "errors"

// Sentinel errors for the orchestration engine. Callers should use
// [errors.Is] to match against these values; the HTTP layer maps them onto
// the response taxonomy.
var (
	// ErrStrategyNotFound is returned when a bank's scraper identifier has
	// no registered automation strategy.
	ErrStrategyNotFound = errors.New("automation strategy was not found")

	// ErrMissingScraperIdentifier is a configuration error: the bank is
	// declared as a scraper source but carries no scraper identifier.
	ErrMissingScraperIdentifier = errors.New("bank has no scraper identifier")

	// ErrConnectionInactive rejects a scrape against an explicitly
	// deactivated connection. Checked before any slow work so a failing
	// attempt can never overwrite the INACTIVE status.
	ErrConnectionInactive = errors.New("connection is inactive")

	// ErrConnectionNotReady rejects a scrape against a connection that has
	// not completed finalize-login (no vault reference yet).
	ErrConnectionNotReady = errors.New("connection has no stored credentials")

	// ErrScrapeInProgress rejects a scrape while another scrape of the
	// same connection is running.
	ErrScrapeInProgress = errors.New("a scrape of this connection is already in progress")

	// ErrScrapeTimeout is returned when the strategy loses the race
	// against the wall-clock budget. The browser task may still be
	// running at that instant; only the page and browser handles are
	// guaranteed closed.
	ErrScrapeTimeout = errors.New("scrape exceeded the time budget")

	// ErrBrowser wraps failures of the browser runtime itself: launch,
	// page creation, navigation.
	ErrBrowser = errors.New("browser failure")
)
