package models

// SourceType identifies the kind of upstream a bank's data is pulled from.
// It selects the data-source adapter used for every operation on a
// connection to that bank.
type SourceType string

const (
	// SourceTypeScraper marks banks whose data is extracted by driving
	// their website with a headless browser.
	SourceTypeScraper SourceType = "SCRAPER"

	// SourceTypePartnerAPI marks banks whose data is fetched through a
	// third-party aggregation partner's API.
	SourceTypePartnerAPI SourceType = "PARTNER_API"
)

// AllSourceTypes lists every source type the platform declares. The data
// source manager validates at startup that an adapter is registered for
// each of these.
var AllSourceTypes = []SourceType{
	SourceTypeScraper,
	SourceTypePartnerAPI,
}

// Bank is a registry entry describing one supported institution.
type Bank struct {
	// ID is the registry identifier of the bank.
	ID string `json:"id"`

	// Name is the human-readable institution name.
	Name string `json:"name"`

	// LogoURL points to the institution's logo asset.
	LogoURL string `json:"logoUrl"`

	// SourceType selects the data-source adapter for this bank.
	SourceType SourceType `json:"sourceType"`

	// ScraperIdentifier keys the automation-strategy registry.
	// Present only when SourceType is SourceTypeScraper.
	ScraperIdentifier string `json:"scraperIdentifier,omitempty"`

	// IsActive gates creation of new connections to this bank.
	// Existing connections are unaffected when a bank is deactivated.
	IsActive bool `json:"isActive"`
}
