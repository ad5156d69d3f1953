package profilestats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 7, 15, 14, 30, 0, 0, time.Local)
}

func submissionAt(ts time.Time) Submission {
	return Submission{ID: "1", Title: "Two Sum", TitleSlug: "two-sum", Timestamp: ts.Unix()}
}

func TestCompletionRate(t *testing.T) {
	require.Equal(t, "2.7", completionRate(85, 3200))
	require.Equal(t, "100.0", completionRate(10, 10))
	require.Equal(t, "0.0", completionRate(0, 500))
	require.Equal(t, "0.0", completionRate(85, 0))
}

func TestSumTotals(t *testing.T) {
	records := normalizeDifficulty(
		[]DifficultyCount{
			{Difficulty: "Easy", Count: 50, Submissions: 80},
			{Difficulty: "Medium", Count: 30, Submissions: 120},
			{Difficulty: "Hard", Count: 5, Submissions: 40},
		},
		[]DifficultyCount{
			{Difficulty: "Easy", Count: 800},
			{Difficulty: "Medium", Count: 1700},
			{Difficulty: "Hard", Count: 700},
		},
	)

	solved, total, submissions := sumTotals(records)
	require.Equal(t, 85, solved)
	require.Equal(t, 3200, total)
	require.Equal(t, 240, submissions)
}

func TestActivityHistogramShape(t *testing.T) {
	now := fixedNow()

	days := activityHistogram(now, nil)
	require.Len(t, days, 30)
	for _, day := range days {
		require.Zero(t, day.Submissions)
	}
	require.Equal(t, now.Add(-29*24*time.Hour).Format("Jan 2"), days[0].Date)
	require.Equal(t, now.Format("Jan 2"), days[29].Date)
}

func TestActivityHistogramBucketsByCalendarDate(t *testing.T) {
	now := fixedNow()
	recent := []Submission{
		submissionAt(now.Add(-1 * time.Hour)),
		submissionAt(now.Add(-2 * time.Hour)),
		submissionAt(now.Add(-3 * 24 * time.Hour)),
		// Outside the window, must not be counted anywhere.
		submissionAt(now.Add(-40 * 24 * time.Hour)),
	}

	days := activityHistogram(now, recent)
	require.Len(t, days, 30)
	require.Equal(t, 2, days[29].Submissions)
	require.Equal(t, 1, days[26].Submissions)

	counted := 0
	for _, day := range days {
		counted += day.Submissions
	}
	require.Equal(t, 3, counted)
}

func TestRollingCounts(t *testing.T) {
	now := fixedNow()
	recent := []Submission{
		submissionAt(now.Add(-1 * time.Hour)),
		submissionAt(now.Add(-6 * 24 * time.Hour)),
		submissionAt(now.Add(-10 * 24 * time.Hour)),
		submissionAt(now.Add(-40 * 24 * time.Hour)),
	}

	require.Equal(t, 2, rollingCount(now, recent, 7))
	require.Equal(t, 3, rollingCount(now, recent, 30))
}

func TestCurrentStreakPrefersCalendar(t *testing.T) {
	now := fixedNow()
	calendar := &Calendar{Streak: 42}
	recent := []Submission{submissionAt(now.Add(-10 * 24 * time.Hour))}

	require.Equal(t, 42, currentStreak(now, calendar, recent))
}

func TestStreakFallbackConsecutiveDays(t *testing.T) {
	now := fixedNow()
	recent := []Submission{
		submissionAt(now.Add(-1 * time.Hour)),
		submissionAt(now.Add(-24 * time.Hour)),
		submissionAt(now.Add(-48 * time.Hour)),
	}

	require.Equal(t, 3, streakFromSubmissions(now, recent))
}

func TestStreakFallbackStartsYesterday(t *testing.T) {
	now := fixedNow()
	recent := []Submission{
		submissionAt(now.Add(-24 * time.Hour)),
		submissionAt(now.Add(-48 * time.Hour)),
	}

	require.Equal(t, 2, streakFromSubmissions(now, recent))
}

func TestStreakFallbackBrokenByGap(t *testing.T) {
	now := fixedNow()
	recent := []Submission{submissionAt(now.Add(-3 * 24 * time.Hour))}

	require.Equal(t, 0, streakFromSubmissions(now, recent))
}

func TestStreakFallbackEmpty(t *testing.T) {
	require.Equal(t, 0, streakFromSubmissions(fixedNow(), nil))
}

func TestEstimateTopTags(t *testing.T) {
	tags := estimateTopTags(85)
	require.Len(t, tags, 5)
	require.Equal(t, TagEstimate{Name: "Array", Count: 21, Source: "estimated"}, tags[0])
	require.Equal(t, TagEstimate{Name: "Dynamic Programming", Count: 15, Source: "estimated"}, tags[1])
	require.Equal(t, TagEstimate{Name: "String", Count: 12, Source: "estimated"}, tags[2])
	require.Equal(t, TagEstimate{Name: "Hash Table", Count: 10, Source: "estimated"}, tags[3])
	require.Equal(t, TagEstimate{Name: "Two Pointers", Count: 6, Source: "estimated"}, tags[4])
}

func TestEstimateTopTagsSmallProfile(t *testing.T) {
	// Fractions all floor to zero but the profile has activity, so every
	// tag floors up to one.
	tags := estimateTopTags(2)
	require.Len(t, tags, 5)
	for _, tag := range tags {
		require.Equal(t, 1, tag.Count)
	}
}

func TestEstimateTopTagsEmptyProfile(t *testing.T) {
	require.Empty(t, estimateTopTags(0))
}
