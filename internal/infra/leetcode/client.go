package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/leetstats/internal/domain/profilestats"
)

const (
	defaultBaseURL   = "https://leetcode.com/graphql"
	defaultUserAgent = "LeetCode-Progress-Tracker"
	defaultTimeout   = 10 * time.Second
)

// Client issues GraphQL queries against the LeetCode endpoint. Every call
// is a single attempt; retries and backoff are deliberately absent.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// do posts one query with its variables and decodes the data envelope into
// out. Every query shape goes through this single helper.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("leetcode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("leetcode request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read leetcode response: %w", err)
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode leetcode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("leetcode api error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode leetcode payload: %w", err)
	}
	return nil
}

// FetchStats retrieves the achieved submission counts together with the
// per-tier question universe. A null matchedUser is not an error here; the
// domain layer treats it as the user-not-found signal.
func (c *Client) FetchStats(ctx context.Context, username string) (profilestats.StatsPayload, error) {
	var data statsData
	if err := c.do(ctx, statsQuery, map[string]any{"username": username}, &data); err != nil {
		return profilestats.StatsPayload{}, err
	}

	payload := profilestats.StatsPayload{
		AllQuestions: toDifficultyCounts(data.AllQuestionsCount),
	}
	if data.MatchedUser != nil {
		payload.Matched = &profilestats.MatchedUser{
			Username: data.MatchedUser.Username,
			RealName: data.MatchedUser.Profile.RealName,
			Avatar:   data.MatchedUser.Profile.UserAvatar,
			Solved:   toDifficultyCounts(data.MatchedUser.SubmitStats.AcSubmissionNum),
		}
	}
	return payload, nil
}

// FetchContest retrieves the contest ranking snapshot; nil when the user
// never attended a contest.
func (c *Client) FetchContest(ctx context.Context, username string) (*profilestats.ContestSnapshot, error) {
	var data contestData
	if err := c.do(ctx, contestQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, err
	}
	if data.UserContestRanking == nil {
		return nil, nil
	}
	return &profilestats.ContestSnapshot{
		AttendedContests:  data.UserContestRanking.AttendedContestsCount,
		Rating:            data.UserContestRanking.Rating,
		GlobalRank:        data.UserContestRanking.GlobalRanking,
		TotalParticipants: data.UserContestRanking.TotalParticipants,
		TopPercentage:     data.UserContestRanking.TopPercentage,
		BadgeName:         data.UserContestRanking.Badge.Name,
	}, nil
}

// FetchRecent retrieves up to 20 most recent accepted submissions, most
// recent first.
func (c *Client) FetchRecent(ctx context.Context, username string) ([]profilestats.Submission, error) {
	var data recentData
	if err := c.do(ctx, recentSubmissionsQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, err
	}
	subs := make([]profilestats.Submission, 0, len(data.RecentAcSubmissionList))
	for _, entry := range data.RecentAcSubmissionList {
		subs = append(subs, profilestats.Submission{
			ID:        entry.ID,
			Title:     entry.Title,
			TitleSlug: entry.TitleSlug,
			Timestamp: int64(entry.Timestamp),
		})
	}
	return subs, nil
}

// FetchCalendar retrieves the yearly submission calendar; nil when upstream
// has none for the user.
func (c *Client) FetchCalendar(ctx context.Context, username string, year int) (*profilestats.Calendar, error) {
	var data calendarData
	vars := map[string]any{"username": username, "year": year}
	if err := c.do(ctx, calendarQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.MatchedUser == nil || data.MatchedUser.UserCalendar == nil {
		return nil, nil
	}

	cal := data.MatchedUser.UserCalendar
	badges := make([]profilestats.CalendarBadge, 0, len(cal.DccBadges))
	for _, entry := range cal.DccBadges {
		badges = append(badges, profilestats.CalendarBadge{
			Timestamp: entry.Timestamp,
			Name:      entry.Badge.Name,
			Icon:      entry.Badge.Icon,
		})
	}
	return &profilestats.Calendar{
		ActiveYears:        cal.ActiveYears,
		Streak:             cal.Streak,
		TotalActiveDays:    cal.TotalActiveDays,
		SubmissionCalendar: cal.SubmissionCalendar,
		Badges:             badges,
	}, nil
}

// Wire types. Kept private; the domain package sees only its own model.

type difficultyEntry struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

func toDifficultyCounts(entries []difficultyEntry) []profilestats.DifficultyCount {
	counts := make([]profilestats.DifficultyCount, 0, len(entries))
	for _, entry := range entries {
		counts = append(counts, profilestats.DifficultyCount{
			Difficulty:  entry.Difficulty,
			Count:       entry.Count,
			Submissions: entry.Submissions,
		})
	}
	return counts
}

type statsData struct {
	MatchedUser *struct {
		Username string `json:"username"`
		Profile  struct {
			UserAvatar string `json:"userAvatar"`
			RealName   string `json:"realName"`
		} `json:"profile"`
		SubmitStats struct {
			AcSubmissionNum []difficultyEntry `json:"acSubmissionNum"`
		} `json:"submitStats"`
	} `json:"matchedUser"`
	AllQuestionsCount []difficultyEntry `json:"allQuestionsCount"`
}

type contestData struct {
	UserContestRanking *struct {
		AttendedContestsCount int     `json:"attendedContestsCount"`
		Rating                float64 `json:"rating"`
		GlobalRanking         int     `json:"globalRanking"`
		TotalParticipants     int     `json:"totalParticipants"`
		TopPercentage         float64 `json:"topPercentage"`
		Badge                 struct {
			Name string `json:"name"`
		} `json:"badge"`
	} `json:"userContestRanking"`
}

type recentData struct {
	RecentAcSubmissionList []struct {
		ID        string   `json:"id"`
		Title     string   `json:"title"`
		TitleSlug string   `json:"titleSlug"`
		Timestamp unixTime `json:"timestamp"`
	} `json:"recentAcSubmissionList"`
}

type calendarData struct {
	MatchedUser *struct {
		UserCalendar *struct {
			ActiveYears     []int `json:"activeYears"`
			Streak          int   `json:"streak"`
			TotalActiveDays int   `json:"totalActiveDays"`
			DccBadges       []struct {
				Timestamp string `json:"timestamp"`
				Badge     struct {
					Name string `json:"name"`
					Icon string `json:"icon"`
				} `json:"badge"`
			} `json:"dccBadges"`
			SubmissionCalendar string `json:"submissionCalendar"`
		} `json:"userCalendar"`
	} `json:"matchedUser"`
}

// unixTime tolerates upstream sending epoch seconds as either a JSON
// number or a quoted string.
type unixTime int64

func (t *unixTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*t = 0
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("parse submission timestamp %q: %w", raw, err)
	}
	*t = unixTime(parsed)
	return nil
}
