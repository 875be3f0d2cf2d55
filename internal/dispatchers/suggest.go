package dispatchers

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const defaultSuggestionsCount = 3

// maxTypoDistance bounds edit-distance matches that are not subsequences.
const maxTypoDistance = 2

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults keys of node's children that
// look like input: keys containing input as a subsequence, or keys within a
// small edit distance of it. Closer matches come first.
func FindSimilarCommands(input string, node *Node, maxResults int) []string {
	if node == nil || len(node.order) == 0 || input == "" {
		return nil
	}

	best := make(map[string]int)
	for _, r := range fuzzy.RankFindNormalizedFold(input, node.order) {
		best[r.Target] = r.Distance
	}

	lower := strings.ToLower(input)
	for _, key := range node.order {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(key))
		if d > maxTypoDistance {
			continue
		}
		if prev, ok := best[key]; !ok || d < prev {
			best[key] = d
		}
	}
	delete(best, input)

	suggestions := make([]suggestion, 0, len(best))
	for name, d := range best {
		suggestions = append(suggestions, suggestion{name: name, distance: d})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
