package profilestats

import "strings"

// canonicalTier lower-cases a difficulty label then title-cases the first
// letter, so "EASY", "easy" and "Easy" all collapse to "Easy".
func canonicalTier(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return ""
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// normalizeDifficulty merges the achieved counts and the question universe
// into one record per tier. All three tiers start at zero; labels outside
// the closed tier set (upstream also reports an "All" rollup) are ignored.
// A tier present in only one of the two lists ends up with a partial record.
func normalizeDifficulty(solved, universe []DifficultyCount) map[string]DifficultyRecord {
	records := map[string]DifficultyRecord{
		TierEasy:   {},
		TierMedium: {},
		TierHard:   {},
	}
	for _, entry := range solved {
		tier := canonicalTier(entry.Difficulty)
		record, ok := records[tier]
		if !ok {
			continue
		}
		record.Solved = entry.Count
		record.Submissions = entry.Submissions
		records[tier] = record
	}
	for _, entry := range universe {
		tier := canonicalTier(entry.Difficulty)
		record, ok := records[tier]
		if !ok {
			continue
		}
		record.Total = entry.Count
		records[tier] = record
	}
	return records
}
