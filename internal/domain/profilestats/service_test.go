package profilestats

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/leetstats/pkg/errors"
)

type stubClient struct {
	stats    StatsPayload
	statsErr error

	contest    *ContestSnapshot
	contestErr error

	recent    []Submission
	recentErr error

	calendar    *Calendar
	calendarErr error

	lastYear int
}

func (s *stubClient) FetchStats(ctx context.Context, username string) (StatsPayload, error) {
	return s.stats, s.statsErr
}

func (s *stubClient) FetchContest(ctx context.Context, username string) (*ContestSnapshot, error) {
	return s.contest, s.contestErr
}

func (s *stubClient) FetchRecent(ctx context.Context, username string) ([]Submission, error) {
	return s.recent, s.recentErr
}

func (s *stubClient) FetchCalendar(ctx context.Context, username string, year int) (*Calendar, error) {
	s.lastYear = year
	return s.calendar, s.calendarErr
}

func newServiceUnderTest(client Client, now time.Time) *service {
	return &service{
		client: client,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return now },
	}
}

func matchedStats() StatsPayload {
	return StatsPayload{
		Matched: &MatchedUser{
			Username: "octocat",
			RealName: "Octo Cat",
			Avatar:   "https://example.com/a.png",
			Solved: []DifficultyCount{
				{Difficulty: "Easy", Count: 50, Submissions: 80},
				{Difficulty: "Medium", Count: 30, Submissions: 120},
				{Difficulty: "Hard", Count: 5, Submissions: 40},
			},
		},
		AllQuestions: []DifficultyCount{
			{Difficulty: "Easy", Count: 800},
			{Difficulty: "Medium", Count: 1700},
			{Difficulty: "Hard", Count: 700},
		},
	}
}

func TestProfileReportSuccess(t *testing.T) {
	now := fixedNow()
	client := &stubClient{
		stats: matchedStats(),
		contest: &ContestSnapshot{
			AttendedContests:  12,
			Rating:            1650.5,
			GlobalRank:        54321,
			TotalParticipants: 400000,
			TopPercentage:     13.6,
			BadgeName:         "Knight",
		},
		recent: []Submission{
			submissionAt(now.Add(-1 * time.Hour)),
			submissionAt(now.Add(-24 * time.Hour)),
			submissionAt(now.Add(-48 * time.Hour)),
			submissionAt(now.Add(-5 * 24 * time.Hour)),
			submissionAt(now.Add(-9 * 24 * time.Hour)),
			submissionAt(now.Add(-12 * 24 * time.Hour)),
		},
		calendar: &Calendar{Streak: 7, TotalActiveDays: 145, ActiveYears: []int{2023, 2024}},
	}

	svc := newServiceUnderTest(client, now)
	report, err := svc.ProfileReport(context.Background(), "octocat")
	require.NoError(t, err)

	require.Equal(t, "octocat", report.Username)
	require.Equal(t, "Octo Cat", report.Profile.RealName)
	require.Equal(t, 85, report.Overall.TotalSolved)
	require.Equal(t, 3200, report.Overall.TotalQuestions)
	require.Equal(t, "2.7", report.Overall.CompletionRate)
	require.Equal(t, 240, report.TotalSubmissions)
	require.Equal(t, DifficultyRecord{Solved: 30, Total: 1700, Submissions: 120}, report.Difficulty[TierMedium])

	require.Equal(t, 1650.5, report.Contest.Rating)
	require.Equal(t, "Knight", report.Contest.Badge)
	require.Equal(t, 400000, report.Contest.TotalParticipants)

	require.Equal(t, 4, report.Activity.Last7Days)
	require.Equal(t, 6, report.Activity.Last30Days)
	require.Len(t, report.Activity.ChartData, 30)
	require.Equal(t, 145, report.Activity.TotalActiveDays)
	require.Equal(t, []int{2023, 2024}, report.Activity.ActiveYears)

	require.Len(t, report.RecentProblems, 5)
	require.Equal(t, now.Add(-1*time.Hour).Format("Jan 2, 2006"), report.RecentProblems[0].Date)

	// Calendar streak wins over the fallback.
	require.Equal(t, 7, report.Streak)

	require.Equal(t, now.Year(), client.lastYear)
}

func TestProfileReportNotFound(t *testing.T) {
	// The other three results arrive fine but must not be surfaced.
	client := &stubClient{
		stats:   StatsPayload{AllQuestions: []DifficultyCount{{Difficulty: "Easy", Count: 800}}},
		contest: &ContestSnapshot{Rating: 2000},
		recent:  []Submission{submissionAt(fixedNow())},
	}

	svc := newServiceUnderTest(client, fixedNow())
	_, err := svc.ProfileReport(context.Background(), "ghost")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestProfileReportUpstreamFailure(t *testing.T) {
	client := &stubClient{
		stats:     matchedStats(),
		recentErr: errors.New("connection reset"),
	}

	svc := newServiceUnderTest(client, fixedNow())
	_, err := svc.ProfileReport(context.Background(), "octocat")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "upstream_error"))
	require.Contains(t, err.Error(), "connection reset")
}

func TestProfileReportEmptyUsername(t *testing.T) {
	svc := newServiceUnderTest(&stubClient{}, fixedNow())
	_, err := svc.ProfileReport(context.Background(), "   ")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestProfileReportStreakFallback(t *testing.T) {
	now := fixedNow()
	client := &stubClient{
		stats: matchedStats(),
		recent: []Submission{
			submissionAt(now.Add(-1 * time.Hour)),
			submissionAt(now.Add(-24 * time.Hour)),
			submissionAt(now.Add(-48 * time.Hour)),
		},
		// No calendar: streak must come from the recent submissions.
	}

	svc := newServiceUnderTest(client, now)
	report, err := svc.ProfileReport(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, 3, report.Streak)
	require.Zero(t, report.Activity.TotalActiveDays)
	require.Empty(t, report.Activity.ActiveYears)
}

func TestProfileReportContestDefaults(t *testing.T) {
	client := &stubClient{stats: matchedStats()}

	svc := newServiceUnderTest(client, fixedNow())
	report, err := svc.ProfileReport(context.Background(), "octocat")
	require.NoError(t, err)
	require.Equal(t, Contest{}, report.Contest)
	require.Empty(t, report.RecentProblems)
	require.NotNil(t, report.RecentProblems)
}

func TestProfileReportIdempotent(t *testing.T) {
	now := fixedNow()
	client := &stubClient{
		stats:    matchedStats(),
		recent:   []Submission{submissionAt(now.Add(-2 * time.Hour))},
		calendar: &Calendar{Streak: 3},
	}

	svc := newServiceUnderTest(client, now)
	first, err := svc.ProfileReport(context.Background(), "octocat")
	require.NoError(t, err)
	second, err := svc.ProfileReport(context.Background(), "octocat")
	require.NoError(t, err)

	require.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, firstJSON, secondJSON)
}
