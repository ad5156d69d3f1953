package leetcode

// The four read-only queries the aggregator issues per request. Field sets
// are fixed; the recent-submissions list is capped at 20 by the query.

const statsQuery = `
  query getUserStats($username: String!) {
    matchedUser(username: $username) {
      username
      submitStats: submitStatsGlobal {
        acSubmissionNum {
          difficulty
          count
          submissions
        }
      }
      profile {
        userAvatar
        realName
      }
    }
    allQuestionsCount {
      difficulty
      count
    }
  }
`

const contestQuery = `
  query getUserContest($username: String!) {
    userContestRanking(username: $username) {
      attendedContestsCount
      rating
      globalRanking
      totalParticipants
      topPercentage
      badge {
        name
      }
    }
  }
`

const recentSubmissionsQuery = `
  query getRecentSubmissions($username: String!) {
    recentAcSubmissionList(username: $username, limit: 20) {
      id
      title
      titleSlug
      timestamp
    }
  }
`

const calendarQuery = `
  query getUserProfileCalendar($username: String!, $year: Int!) {
    matchedUser(username: $username) {
      userCalendar(year: $year) {
        activeYears
        streak
        totalActiveDays
        dccBadges {
          timestamp
          badge {
            name
            icon
          }
        }
        submissionCalendar
      }
    }
  }
`
