package profilestats

import (
	"strconv"
	"time"
)

const (
	histogramDays = 30
	dayKeyLayout  = "2006-01-02"
	dayLabel      = "Jan 2"
)

var tagWeights = []struct {
	Name    string
	Percent int
}{
	{"Array", 25},
	{"Dynamic Programming", 18},
	{"String", 15},
	{"Hash Table", 12},
	{"Two Pointers", 8},
}

func sumTotals(records map[string]DifficultyRecord) (solved, total, submissions int) {
	for _, record := range records {
		solved += record.Solved
		total += record.Total
		submissions += record.Submissions
	}
	return solved, total, submissions
}

// completionRate renders solved/total as a percentage with one decimal,
// "0.0" when the universe is empty.
func completionRate(solved, total int) string {
	if total == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(solved)/float64(total)*100, 'f', 1, 64)
}

// activityHistogram buckets the recent submissions into the 30 calendar
// days ending today, oldest first. Days without activity stay at zero.
// The inclusion cutoff is a rolling 30*24h boundary while the buckets are
// local calendar dates; both follow the upstream-facing contract and are
// intentionally not unified. With at most 20 recent submissions available
// the histogram under-counts busy windows, which is accepted.
func activityHistogram(now time.Time, recent []Submission) []ActivityDay {
	cutoff := now.Add(-histogramDays * 24 * time.Hour)
	perDay := make(map[string]int, len(recent))
	for _, sub := range recent {
		ts := time.Unix(sub.Timestamp, 0)
		if ts.Before(cutoff) {
			continue
		}
		perDay[ts.Format(dayKeyLayout)]++
	}

	days := make([]ActivityDay, 0, histogramDays)
	for i := histogramDays - 1; i >= 0; i-- {
		day := now.Add(-time.Duration(i) * 24 * time.Hour)
		days = append(days, ActivityDay{
			Date:        day.Format(dayLabel),
			Submissions: perDay[day.Format(dayKeyLayout)],
		})
	}
	return days
}

// rollingCount counts submissions at or after now minus days*24h.
func rollingCount(now time.Time, recent []Submission, days int) int {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	count := 0
	for _, sub := range recent {
		if !time.Unix(sub.Timestamp, 0).Before(cutoff) {
			count++
		}
	}
	return count
}

// currentStreak prefers the streak the upstream calendar already computed
// and falls back to deriving one from the recent-submissions window.
func currentStreak(now time.Time, calendar *Calendar, recent []Submission) int {
	if calendar != nil {
		return calendar.Streak
	}
	return streakFromSubmissions(now, recent)
}

// streakFromSubmissions walks backward from today (or yesterday, when the
// latest activity was yesterday) over the distinct local calendar dates of
// the recent submissions, counting consecutive active days. A latest
// submission older than one day means the streak is broken. Bounded by the
// 20-entry window, so long true streaks come out short; accepted.
func streakFromSubmissions(now time.Time, recent []Submission) int {
	if len(recent) == 0 {
		return 0
	}

	var latest time.Time
	seen := make(map[string]struct{}, len(recent))
	for _, sub := range recent {
		ts := time.Unix(sub.Timestamp, 0)
		seen[ts.Format(dayKeyLayout)] = struct{}{}
		if ts.After(latest) {
			latest = ts
		}
	}

	today := truncateToDay(now)
	gap := int(today.Sub(truncateToDay(latest)).Hours() / 24)
	if gap > 1 {
		return 0
	}

	cursor := today
	if gap == 1 {
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for {
		if _, ok := seen[cursor.Format(dayKeyLayout)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func truncateToDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// estimateTopTags assigns fixed fractions of totalSolved to five fixed tag
// names. Not real tag data: upstream tag breakdowns are never queried, so
// each entry is marked source=estimated. Zero-count entries are dropped,
// so a profile with nothing solved gets an empty list.
func estimateTopTags(totalSolved int) []TagEstimate {
	tags := make([]TagEstimate, 0, len(tagWeights))
	for _, weight := range tagWeights {
		count := totalSolved * weight.Percent / 100
		if count == 0 && totalSolved > 0 {
			count = 1
		}
		if count == 0 {
			continue
		}
		tags = append(tags, TagEstimate{Name: weight.Name, Count: count, Source: "estimated"})
	}
	return tags
}
