package life

// majorityTag returns the most frequent lineage among the neighbour indices
// in nb, read from the previous generation's tags. Ties go to the tag seen
// first in core.MooreOffsets order. Dead and Unclaimed neighbours carry no
// lineage; with none left the result is Unclaimed.
func majorityTag(tags []Tag, nb *[8]int) Tag {
	var (
		seen   [8]Tag
		counts [8]int
		n      int
	)
	for _, j := range nb {
		t := tags[j]
		if !t.Lineage() {
			continue
		}
		k := 0
		for k < n && seen[k] != t {
			k++
		}
		if k == n {
			seen[n] = t
			n++
		}
		counts[k]++
	}

	best, bestCount := Unclaimed, 0
	for k := 0; k < n; k++ {
		if counts[k] > bestCount {
			best, bestCount = seen[k], counts[k]
		}
	}
	return best
}
