package constants

// Bounded-scan limits. These caps bound worst-case latency and memory
// per request where cross-table fields cannot be filtered server-side.
const (
	// MaxCandidateRows caps any in-memory post-filter fetch.
	MaxCandidateRows = 5000

	// SlugScanPageSize is the ID page size of the short-ID fallback scan.
	SlugScanPageSize = 1000

	// SlugScanMaxPages bounds the fallback scan to 50,000 rows.
	SlugScanMaxPages = 50

	// SlugCandidateLimit caps the title-pattern candidate fetch.
	SlugCandidateLimit = 1000

	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 100
)
