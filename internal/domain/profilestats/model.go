package profilestats

// The three difficulty tiers LeetCode reports. Anything else coming back
// from upstream is ignored during normalization.
const (
	TierEasy   = "Easy"
	TierMedium = "Medium"
	TierHard   = "Hard"
)

// DifficultyCount is one raw per-tier entry as fetched from upstream. The
// Submissions field is only populated on the achieved-counts list.
type DifficultyCount struct {
	Difficulty  string
	Count       int
	Submissions int
}

// StatsPayload bundles the achieved counts and the question universe from
// the combined stats query.
type StatsPayload struct {
	// Matched is nil when upstream has no user for the requested name.
	Matched      *MatchedUser
	AllQuestions []DifficultyCount
}

// MatchedUser is the identity slice of the stats query result.
type MatchedUser struct {
	Username string
	RealName string
	Avatar   string
	Solved   []DifficultyCount
}

// ContestSnapshot mirrors userContestRanking. A nil snapshot means the user
// never attended a contest.
type ContestSnapshot struct {
	AttendedContests  int
	Rating            float64
	GlobalRank        int
	TotalParticipants int
	TopPercentage     float64
	BadgeName         string
}

// Submission is one recently accepted submission. Upstream caps the list at
// 20 entries, most recent first.
type Submission struct {
	ID        string
	Title     string
	TitleSlug string
	Timestamp int64
}

// Calendar is the yearly submission calendar, including the streak computed
// server side. The whole object is optional upstream.
type Calendar struct {
	ActiveYears        []int
	Streak             int
	TotalActiveDays    int
	SubmissionCalendar string
	Badges             []CalendarBadge
}

// CalendarBadge is a daily-challenge badge entry from the calendar query.
type CalendarBadge struct {
	Timestamp string
	Name      string
	Icon      string
}

// Report is the aggregated output returned per request.
type Report struct {
	Username         string                      `json:"username"`
	Profile          Identity                    `json:"profile"`
	Overall          Overall                     `json:"overall"`
	Difficulty       map[string]DifficultyRecord `json:"difficulty"`
	Contest          Contest                     `json:"contest"`
	Activity         Activity                    `json:"activity"`
	RecentProblems   []RecentProblem             `json:"recentProblems"`
	TopTags          []TagEstimate               `json:"topTags"`
	Streak           int                         `json:"streak"`
	TotalSubmissions int                         `json:"totalSubmissions"`
}

// Identity carries the optional profile fields, defaulted to "".
type Identity struct {
	RealName string `json:"realName"`
	Avatar   string `json:"avatar"`
}

// Overall sums the three tiers.
type Overall struct {
	TotalSolved    int    `json:"totalSolved"`
	TotalQuestions int    `json:"totalQuestions"`
	CompletionRate string `json:"completionRate"`
}

// DifficultyRecord merges solved and universe counts for one tier. Solved
// exceeding Submissions is tolerated; the counts are pass-through.
type DifficultyRecord struct {
	Solved      int `json:"solved"`
	Total       int `json:"total"`
	Submissions int `json:"submissions"`
}

// Contest is the shaped ranking snapshot, zero-valued when the user never
// attended a contest.
type Contest struct {
	Rating            float64 `json:"rating"`
	GlobalRank        int     `json:"globalRank"`
	AttendedContests  int     `json:"attendedContests"`
	TopPercentage     float64 `json:"topPercentage"`
	TotalParticipants int     `json:"totalParticipants"`
	Badge             string  `json:"badge"`
}

// Activity summarizes recent submission activity.
type Activity struct {
	Last7Days       int           `json:"last7Days"`
	Last30Days      int           `json:"last30Days"`
	TotalActiveDays int           `json:"totalActiveDays"`
	ActiveYears     []int         `json:"activeYears"`
	ChartData       []ActivityDay `json:"chartData"`
}

// ActivityDay is one histogram bucket. Exactly 30 are emitted, oldest
// first, zero-count days included.
type ActivityDay struct {
	Date        string `json:"date"`
	Submissions int    `json:"submissions"`
}

// RecentProblem is one of the up-to-5 most recently solved problems.
type RecentProblem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
}

// TagEstimate is a synthetic per-tag count derived from totalSolved.
// Source is always "estimated" so consumers can tell it apart from real
// upstream data.
type TagEstimate struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Source string `json:"source"`
}
