package identify

// Config holds the tunable knobs of the identification heuristics. The
// defaults match the Beltz therapy workbook layout; the estimator caps are
// empirical and may need recalibration against other document series.
type Config struct {
	// TOCStartMarker and TOCEndMarker bound the table-of-contents region.
	TOCStartMarker string
	TOCEndMarker   string

	// TOCWindow caps the TOC region at this many pages past the start
	// marker when the end marker is missing.
	TOCWindow int

	// TOCLookahead is how many bytes past an "AB n" token are scanned for
	// a standalone page number.
	TOCLookahead int

	// HeaderBandLines / HeaderBandChars bound the header band of a page.
	HeaderBandLines int
	HeaderBandChars int

	// MaxCountTotal is the largest second value of a digit pair still read
	// as a sheet page count ("page x of y").
	MaxCountTotal int

	// MaxAbsoluteSpan is the largest distance between a sheet start and a
	// digit-pair second value still read as an absolute end page.
	MaxAbsoluteSpan int

	// SparseDivisor: when fewer than max(2, pages/SparseDivisor) pages
	// carry a header id, a relaxed full-page labeling pass runs.
	SparseDivisor int
}

// DefaultConfig returns the shipped heuristic defaults.
func DefaultConfig() Config {
	return Config{
		TOCStartMarker:  "Übersicht Arbeitsblätter",
		TOCEndMarker:    "Übersicht Informationsblätter",
		TOCWindow:       8,
		TOCLookahead:    250,
		HeaderBandLines: 12,
		HeaderBandChars: 400,
		MaxCountTotal:   400,
		MaxAbsoluteSpan: 500,
		SparseDivisor:   30,
	}
}
