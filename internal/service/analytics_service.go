package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus_lms_backend/internal/repository"
	"campus_lms_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const analyticsCacheTTL = 5 * time.Minute

// AnalyticsService serves teacher-facing aggregates. Results are cached
// in redis for a short window; the redis client may be nil, in which
// case every call hits the database.
type AnalyticsService struct {
	Repo  *repository.AnalyticsRepository
	Cache *redis.Client
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{Repo: repo, Cache: cache}
}

func (s *AnalyticsService) cached(ctx context.Context, key string, out interface{}, load func() (interface{}, error)) (interface{}, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Bytes(); err == nil {
			if err := json.Unmarshal(raw, out); err == nil {
				return out, nil
			}
		}
	}

	value, err := load()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(value); err == nil {
			if err := s.Cache.Set(ctx, key, raw, analyticsCacheTTL).Err(); err != nil {
				logger.Log.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return value, nil
}

func (s *AnalyticsService) GetQuizStats(ctx context.Context, quizID string) (*repository.QuizStats, error) {
	var stats repository.QuizStats
	value, err := s.cached(ctx, "analytics:quiz:"+quizID, &stats, func() (interface{}, error) {
		return s.Repo.GetQuizStats(quizID)
	})
	if err != nil {
		return nil, err
	}
	return value.(*repository.QuizStats), nil
}

func (s *AnalyticsService) GetCohortQuizOverview(ctx context.Context, cohortID uint) ([]repository.CohortQuizRow, error) {
	var rows []repository.CohortQuizRow
	key := fmt.Sprintf("analytics:cohort:%d:quizzes", cohortID)
	value, err := s.cached(ctx, key, &rows, func() (interface{}, error) {
		loaded, err := s.Repo.GetCohortQuizOverview(cohortID)
		if err != nil {
			return nil, err
		}
		return &loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return *value.(*[]repository.CohortQuizRow), nil
}

func (s *AnalyticsService) GetAssignmentStats(ctx context.Context, assignmentID uint) (*repository.AssignmentStatsRow, error) {
	var row repository.AssignmentStatsRow
	key := fmt.Sprintf("analytics:assignment:%d", assignmentID)
	value, err := s.cached(ctx, key, &row, func() (interface{}, error) {
		return s.Repo.GetAssignmentStats(assignmentID)
	})
	if err != nil {
		return nil, err
	}
	return value.(*repository.AssignmentStatsRow), nil
}
