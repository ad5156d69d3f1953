package profilestats

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	apperrors "github.com/yanqian/leetstats/pkg/errors"
	"github.com/yanqian/leetstats/pkg/util"
)

// Service exposes the profile statistics aggregation pipeline.
type Service interface {
	ProfileReport(ctx context.Context, username string) (Report, error)
}

// Client is the outbound contract to the upstream GraphQL endpoint.
type Client interface {
	FetchStats(ctx context.Context, username string) (StatsPayload, error)
	FetchContest(ctx context.Context, username string) (*ContestSnapshot, error)
	FetchRecent(ctx context.Context, username string) ([]Submission, error)
	FetchCalendar(ctx context.Context, username string, year int) (*Calendar, error)
}

type service struct {
	client Client
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the aggregation domain.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "profilestats.service"),
		now:    util.Now,
	}
}

// ProfileReport fetches the four upstream payloads concurrently and folds
// them into one Report. All four calls run to completion; the first error
// in fixed order aborts the operation with no partial result. "now" is
// captured once so every derived window shares the same reference point.
func (s *service) ProfileReport(ctx context.Context, username string) (Report, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Report{}, apperrors.Wrap("invalid_input", "username cannot be empty", nil)
	}

	now := s.now()

	var (
		stats    StatsPayload
		contest  *ContestSnapshot
		recent   []Submission
		calendar *Calendar
		errs     [4]error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		stats, errs[0] = s.client.FetchStats(ctx, username)
	}()
	go func() {
		defer wg.Done()
		contest, errs[1] = s.client.FetchContest(ctx, username)
	}()
	go func() {
		defer wg.Done()
		recent, errs[2] = s.client.FetchRecent(ctx, username)
	}()
	go func() {
		defer wg.Done()
		calendar, errs[3] = s.client.FetchCalendar(ctx, username, now.Year())
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Warn("upstream fetch failed", "username", username, "error", err)
			return Report{}, apperrors.Wrap("upstream_error", "failed to fetch user data", err)
		}
	}

	if stats.Matched == nil {
		return Report{}, apperrors.Wrap("not_found", "user not found", nil)
	}

	report := buildReport(now, stats, contest, recent, calendar)
	s.logger.Info("profile report built", "username", report.Username, "totalSolved", report.Overall.TotalSolved)
	return report, nil
}

// buildReport is the shaping stage: pure, deterministic for a fixed now.
func buildReport(now time.Time, stats StatsPayload, contest *ContestSnapshot, recent []Submission, calendar *Calendar) Report {
	records := normalizeDifficulty(stats.Matched.Solved, stats.AllQuestions)
	totalSolved, totalQuestions, totalSubmissions := sumTotals(records)

	report := Report{
		Username: stats.Matched.Username,
		Profile: Identity{
			RealName: stats.Matched.RealName,
			Avatar:   stats.Matched.Avatar,
		},
		Overall: Overall{
			TotalSolved:    totalSolved,
			TotalQuestions: totalQuestions,
			CompletionRate: completionRate(totalSolved, totalQuestions),
		},
		Difficulty: records,
		Contest:    shapeContest(contest),
		Activity: Activity{
			Last7Days:   rollingCount(now, recent, 7),
			Last30Days:  rollingCount(now, recent, 30),
			ActiveYears: []int{},
			ChartData:   activityHistogram(now, recent),
		},
		RecentProblems:   shapeRecentProblems(recent),
		TopTags:          estimateTopTags(totalSolved),
		Streak:           currentStreak(now, calendar, recent),
		TotalSubmissions: totalSubmissions,
	}

	if calendar != nil {
		report.Activity.TotalActiveDays = calendar.TotalActiveDays
		if len(calendar.ActiveYears) > 0 {
			report.Activity.ActiveYears = calendar.ActiveYears
		}
	}
	return report
}

func shapeContest(snapshot *ContestSnapshot) Contest {
	if snapshot == nil {
		return Contest{}
	}
	return Contest{
		Rating:            snapshot.Rating,
		GlobalRank:        snapshot.GlobalRank,
		AttendedContests:  snapshot.AttendedContests,
		TopPercentage:     snapshot.TopPercentage,
		TotalParticipants: snapshot.TotalParticipants,
		Badge:             snapshot.BadgeName,
	}
}

// shapeRecentProblems keeps the first five entries of the already
// most-recent-first list and attaches a human readable date.
func shapeRecentProblems(recent []Submission) []RecentProblem {
	limit := 5
	if len(recent) < limit {
		limit = len(recent)
	}
	problems := make([]RecentProblem, 0, limit)
	for _, sub := range recent[:limit] {
		problems = append(problems, RecentProblem{
			ID:        sub.ID,
			Title:     sub.Title,
			TitleSlug: sub.TitleSlug,
			Timestamp: sub.Timestamp,
			Date:      time.Unix(sub.Timestamp, 0).Format("Jan 2, 2006"),
		})
	}
	return problems
}
