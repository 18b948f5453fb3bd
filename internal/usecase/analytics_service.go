package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/cricstats/cricket-dashboard/internal/domain/analytics"
	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
)

const defaultPrecheckWorkers = 4

// AnalyticsService runs the built-in query catalog and operator-edited SQL
// against the warehouse. Statements are restricted to reads; missing tables
// surface as warnings on the result, not as refusals.
type AnalyticsService struct {
	analyticsRepo   analytics.Repository
	logger          *logging.Logger
	precheckWorkers int
}

func NewAnalyticsService(analyticsRepo analytics.Repository, logger *logging.Logger) *AnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalyticsService{
		analyticsRepo:   analyticsRepo,
		logger:          logger,
		precheckWorkers: defaultPrecheckWorkers,
	}
}

func (s *AnalyticsService) ListQuestions(ctx context.Context) ([]analytics.Question, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListQuestions")
	defer span.End()

	return analytics.Catalog(), nil
}

func (s *AnalyticsService) GetQuestion(ctx context.Context, key string) (analytics.Question, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.GetQuestion")
	defer span.End()

	question, ok := analytics.Lookup(strings.TrimSpace(key))
	if !ok {
		return analytics.Question{}, fmt.Errorf("%w: question=%s", ErrNotFound, key)
	}
	return question, nil
}

// RunQuestion executes a catalog question. A non-empty sqlOverride replaces
// the stored statement, mirroring the edit-before-run flow; it goes through
// the same read-only guard as ad-hoc SQL.
func (s *AnalyticsService) RunQuestion(ctx context.Context, key, sqlOverride string) (*analytics.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.RunQuestion")
	defer span.End()

	question, err := s.GetQuestion(ctx, key)
	if err != nil {
		return nil, err
	}

	stmt := question.SQL
	if override := strings.TrimSpace(sqlOverride); override != "" {
		stmt = override
	}

	missing := s.missingTables(ctx, question.Requires)
	result, err := s.run(ctx, stmt)
	if err != nil {
		return nil, err
	}
	result.Missing = missing
	return result, nil
}

// RunSQL executes an operator-supplied statement.
func (s *AnalyticsService) RunSQL(ctx context.Context, stmt string) (*analytics.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.RunSQL")
	defer span.End()

	return s.run(ctx, stmt)
}

func (s *AnalyticsService) run(ctx context.Context, stmt string) (*analytics.Result, error) {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return nil, fmt.Errorf("%w: sql statement is required", ErrInvalidInput)
	}
	if err := ensureReadOnly(stmt); err != nil {
		return nil, err
	}

	result, err := s.analyticsRepo.RunQuery(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("run analytics query: %w", err)
	}
	return result, nil
}

// missingTables checks the question's required tables on a small worker pool.
// Check failures are treated as "table present" so a transient error does not
// produce misleading warnings.
func (s *AnalyticsService) missingTables(ctx context.Context, tables []string) []string {
	if len(tables) == 0 {
		return nil
	}

	pool, err := ants.NewPool(s.precheckWorkers)
	if err != nil {
		s.logger.WarnContext(ctx, "create precheck worker pool failed", "error", err)
		return nil
	}
	defer pool.Release()

	var mu sync.Mutex
	missing := make([]string, 0, len(tables))

	var workers sync.WaitGroup
	for _, table := range tables {
		table := table
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			exists, err := s.analyticsRepo.TableExists(ctx, table)
			if err != nil {
				s.logger.WarnContext(ctx, "table existence check failed", "table", table, "error", err)
				return
			}
			if !exists {
				mu.Lock()
				missing = append(missing, table)
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit precheck task failed", "table", table, "error", err)
		}
	}
	workers.Wait()

	if len(missing) == 0 {
		return nil
	}
	return missing
}

// ExportCSV renders a result as CSV with a header row.
func (s *AnalyticsService) ExportCSV(ctx context.Context, result *analytics.Result) ([]byte, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ExportCSV")
	defer span.End()

	if result == nil {
		return nil, fmt.Errorf("%w: result is required", ErrInvalidInput)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	if err := writer.Write(result.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(result.Columns))
	for _, row := range result.Rows {
		for idx := range record {
			record[idx] = ""
			if idx < len(row) && row[idx] != nil {
				record[idx] = fmt.Sprint(row[idx])
			}
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// ensureReadOnly rejects anything that is not a single SELECT or WITH
// statement.
func ensureReadOnly(stmt string) error {
	trimmed := strings.TrimSuffix(strings.TrimSpace(stmt), ";")
	if strings.Contains(trimmed, ";") {
		return fmt.Errorf("%w: multiple statements are not allowed", ErrInvalidInput)
	}
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return fmt.Errorf("%w: only read statements are allowed", ErrInvalidInput)
	}
	return nil
}
