package match

// MaxSuggestDistance is the largest edit distance Suggest accepts.
const MaxSuggestDistance = 2

// Suggest returns the known name closest to name, or "" when nothing is
// within MaxSuggestDistance edits. Names are compared after NormalizeIdent,
// so "renameAll" suggests "rename_all". Ties go to the earlier entry in known.
func Suggest(name string, known []string) string {
	norm := NormalizeIdent(name)
	if norm == "" {
		return ""
	}

	best := ""
	bestDist := MaxSuggestDistance + 1

	for _, k := range known {
		d := Levenshtein(norm, NormalizeIdent(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}

	return best
}
