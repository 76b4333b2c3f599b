package identify

import "strconv"

// LastPage scans forward from startPage to find where a sheet ends, using
// up to maxScan pages (<= 0 means the rest of the document).
//
// A page whose header carries a different id ends the sheet at the previous
// page. Otherwise a digit pair "a/b" is read first as an absolute end page
// (b within document bounds and not implausibly far from the start), then
// as a page count ("page a of b"). An exhausted scan yields a one-page
// sheet. The result always lies within [startPage, document length].
func (idf *Identifier) LastPage(startPage int, currentID *int, maxScan int) int {
	if len(idf.pages) == 0 {
		return startPage
	}
	total := len(idf.pages)
	if maxScan <= 0 {
		maxScan = total - startPage + 1
	}

	for offset := 0; offset < maxScan; offset++ {
		pageNo := startPage + offset
		if pageNo < 1 || pageNo > total {
			break
		}
		raw := idf.pages[pageNo-1]

		if hdr := HeaderID(raw, idf.cfg); hdr != nil && currentID != nil && *hdr != *currentID {
			return min(max(startPage, pageNo-1), total)
		}

		m := pairRE.FindStringSubmatch(CleanText(raw))
		if m == nil {
			continue
		}
		curr, err1 := strconv.Atoi(m[1])
		second, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		// Absolute end page, e.g. "40/43" meaning pages 40 through 43.
		// An end before the start page cannot be absolute.
		if second >= curr && second >= startPage && second <= total && second-startPage < idf.cfg.MaxAbsoluteSpan {
			return min(second, total)
		}
		// Page count, e.g. "1/2" meaning the first of two sheet pages.
		if second > 0 && second <= idf.cfg.MaxCountTotal {
			return min(max(startPage, startPage+(second-curr)), total)
		}
	}
	return min(startPage, total)
}
