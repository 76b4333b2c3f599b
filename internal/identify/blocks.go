package identify

import (
	"fmt"
	"regexp"
	"strings"
)

// Block is a maximal run of consecutive pages sharing one header id.
// Start and End are inclusive, 1-based.
type Block struct {
	ID    int
	Start int
	End   int
}

// headerLabels labels every page with the id found in its header band, 0
// when none. On sparse-header documents (fewer than max(2, pages/30)
// labeled pages) a relaxed second pass parses the whole page text.
func (idf *Identifier) headerLabels() []int {
	labels := make([]int, len(idf.pages))
	for i, pg := range idf.pages {
		if id := HeaderID(pg, idf.cfg); id != nil {
			labels[i] = *id
		}
	}

	labeled := 0
	for _, v := range labels {
		if v != 0 {
			labeled++
		}
	}
	if labeled < max(2, len(idf.pages)/idf.cfg.SparseDivisor) {
		idf.log.Debug("sparse header labels, running relaxed pass", "labeled", labeled)
		for i, pg := range idf.pages {
			if labels[i] != 0 {
				continue
			}
			if h := ParseHeader(pg); h.ID != nil {
				labels[i] = *h.ID
			}
		}
	}
	return labels
}

// headerBlocks groups consecutive equal nonzero labels into blocks. When
// the block's start page carries a "current/total" pair, the end page is
// computed arithmetically and the scan pointer jumps past it, overriding
// label contiguity.
func (idf *Identifier) headerBlocks(labels []int) []Block {
	total := len(labels)
	var blocks []Block
	i := 0
	for i < total {
		cur := labels[i]
		if cur <= 0 {
			i++
			continue
		}
		start := i + 1

		h := ParseHeader(idf.pages[start-1])
		if h.Current != nil && h.Total != nil && *h.Current != 0 && *h.Total != 0 {
			end := min(total, start+(*h.Total-*h.Current))
			if end < start {
				end = start
			}
			blocks = append(blocks, Block{ID: cur, Start: start, End: end})
			i = end
			continue
		}

		j := i + 1
		for j < total && labels[j] == cur {
			j++
		}
		blocks = append(blocks, Block{ID: cur, Start: start, End: j})
		i = j
	}
	return blocks
}

// recordBlocks merges detected blocks into the model. A block whose pages
// are already a subset of what earlier passes stored for its id is skipped.
// Display names are resolved TOC name first, then an existing model name,
// then a localized "AB <id> / name" search around the block, then a
// synthesized placeholder.
func (idf *Identifier) recordBlocks(blocks []Block, tocNames map[int]string) {
	for _, b := range blocks {
		if b.ID <= 0 || b.End < b.Start {
			continue
		}
		pages := pageRange(b.Start, b.End)

		already := make(map[int]bool)
		for _, p := range idf.doc.PagesForID(b.ID) {
			already[p] = true
		}
		if len(already) > 0 && allIn(pages, already) {
			continue
		}

		name := tocNames[b.ID]
		if name == "" {
			if names := idf.doc.NamesForID(b.ID); len(names) > 0 {
				name = names[0]
			}
		}
		if name == "" {
			name = idf.nameNearBlock(b)
		}
		if name == "" {
			name = fmt.Sprintf("AB %d", b.ID)
		}

		idf.doc.AddSheet(b.ID, name, pages)
		idf.log.Debug("header block recorded", "id", b.ID, "start", b.Start, "end", b.End, "name", name)
	}
}

// nameNearBlock searches a small page window around a block for an
// "AB <id> / <name>" run and returns the trimmed name, or "".
func (idf *Identifier) nameNearBlock(b Block) string {
	re := regexp.MustCompile(fmt.Sprintf(`(?i)\bAB\s*%d\s*[/-]\s*(.+)$`, b.ID))
	total := len(idf.pages)
	for pg := max(1, b.Start-1); pg <= min(total, b.End+1); pg++ {
		if m := re.FindStringSubmatch(CleanText(idf.pages[pg-1])); m != nil {
			return strings.Trim(strings.TrimSpace(m[1]), entryCutset)
		}
	}
	return ""
}

func allIn(pages []int, set map[int]bool) bool {
	for _, p := range pages {
		if !set[p] {
			return false
		}
	}
	return true
}
