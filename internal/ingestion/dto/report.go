package dto

// FeedReport summarizes one feed of an ingestion run.
type FeedReport struct {
	URL     string   `json:"url"`
	Status  string   `json:"status"`
	Fetched int      `json:"fetched"`
	Skipped int      `json:"skipped"`
	Stored  int      `json:"stored"`
	Errors  []string `json:"errors"`
}

// IngestionReport summarizes a full ingestion run.
type IngestionReport struct {
	Feeds  []FeedReport `json:"feeds"`
	Stored int          `json:"stored"`
}

const (
	StatusSuccess = "SUCCESS"
	StatusPartial = "PARTIAL"
	StatusFailed  = "FAILED"
)
