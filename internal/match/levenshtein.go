package match

// Levenshtein returns the edit distance between a and b: the number of
// single byte insertions, deletions or substitutions turning one into the other.
func Levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}

	// row[j] is the distance between the current prefix of a and b[:j]
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(b); j++ {
			up := row[j]

			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}

			row[j] = min(up+1, row[j-1]+1, sub)
			diag = up
		}
	}

	return row[len(b)]
}

// Similarity maps the edit distance to [0, 1], 1 meaning equal strings.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// IdentSimilarity compares two identifiers after normalization, so that
// "oneof_field" and "OneofField" score 1.
func IdentSimilarity(a, b string) float64 {
	return Similarity(NormalizeIdent(a), NormalizeIdent(b))
}
