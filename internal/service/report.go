package service

import (
	"context"
	"math"
	"sort"

	"word-guess/internal/model"
	"word-guess/internal/store"

	"github.com/samber/lo"
)

// ReportService computes the admin read models. Reports are recomputed
// from the session records on every call; nothing is cached, so they can
// never drift from the store.
type ReportService struct {
	store store.GameStore
	users store.UserStore
}

func NewReportService(st store.GameStore, users store.UserStore) *ReportService {
	return &ReportService{store: st, users: users}
}

// rate returns wins/total as a percentage rounded to the nearest integer,
// zero when there were no games.
func rate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins) / float64(total) * 100)
}

// DailyReport aggregates every session started on the given UTC calendar
// date. In-progress sessions count as games but not as wins.
func (s *ReportService) DailyReport(ctx context.Context, date string) (*model.DailyReport, error) {
	sessions, err := s.store.ListSessionsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	owners := lo.Uniq(lo.Map(sessions, func(g model.GameSession, _ int) string {
		return g.Username
	}))
	wins := lo.CountBy(sessions, func(g model.GameSession) bool {
		return g.Won()
	})

	return &model.DailyReport{
		Date:           date,
		TotalUsers:     len(owners),
		TotalGames:     len(sessions),
		CorrectGuesses: wins,
		SuccessRate:    rate(wins, len(sessions)),
	}, nil
}

// UserReport aggregates every session a user has ever played, grouped by
// calendar day. Target words are exposed here unconditionally: this is a
// retrospective admin view, not a live session.
func (s *ReportService) UserReport(ctx context.Context, username string) (*model.UserReport, error) {
	if _, err := s.users.GetUser(ctx, username); err != nil {
		return nil, err
	}

	sessions, err := s.store.ListSessionsByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	totalWins := lo.CountBy(sessions, func(g model.GameSession) bool { return g.Won() })

	// Sessions arrive ordered by started_at, so each day's games keep
	// submission order after grouping.
	byDate := lo.GroupBy(sessions, func(g model.GameSession) string { return g.DailyDate })
	dates := lo.Keys(byDate)
	sort.Strings(dates)

	daily := make([]model.UserDailyReport, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		games := lo.Map(day, func(g model.GameSession, _ int) model.GameSummary {
			return model.GameSummary{
				TargetWord:   g.TargetWord,
				Won:          g.Won(),
				GuessesCount: len(g.Guesses),
				StartedAt:    g.StartedAt,
				CompletedAt:  g.CompletedAt,
			}
		})
		daily = append(daily, model.UserDailyReport{
			Date:        date,
			GamesPlayed: len(day),
			GamesWon:    lo.CountBy(day, func(g model.GameSession) bool { return g.Won() }),
			Games:       games,
		})
	}

	return &model.UserReport{
		Username:     username,
		TotalGames:   len(sessions),
		TotalWins:    totalWins,
		WinRate:      rate(totalWins, len(sessions)),
		DailyReports: daily,
	}, nil
}
