package annotation

import (
	"sort"
)

// Match is one similarity search hit.
type Match struct {
	Annotation        *Document   `json:"annotation"`
	SimilarityScore   float64     `json:"similarity_score"`
	SimilarityDetails *Similarity `json:"similarity_details"`
}

// FindSimilar ranks a corpus of annotations by similarity to the target and
// returns every match scoring at or above the threshold, most similar first.
//
// Failed annotations and the target itself are skipped, as are pairs that
// cannot be compared. A distinct record for the same uniform (the same image
// annotated twice) is NOT skipped: it scores ~1.0 and ranks first, which is
// exactly the duplicate warning the submission flow needs.
func FindSimilar(target *Document, corpus []*Document, threshold float64) []Match {
	matches := make([]Match, 0)
	for _, candidate := range corpus {
		if candidate == nil || candidate == target || !candidate.Ok() {
			continue
		}

		sim, err := Compare(target, candidate)
		if err != nil {
			continue
		}
		if sim.OverallSimilarity < threshold {
			continue
		}

		matches = append(matches, Match{
			Annotation:        candidate,
			SimilarityScore:   sim.OverallSimilarity,
			SimilarityDetails: sim,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})
	return matches
}
