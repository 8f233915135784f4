package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shenikar/civic_tracker/internal/models"
)

// SortBy - порядок выдачи
type SortBy string

const (
	SortInsertion SortBy = ""
	SortNewest    SortBy = "newest"
	SortOldest    SortBy = "oldest"
	SortPriority  SortBy = "priority"
)

// ParseSortBy разбирает параметр sort
func ParseSortBy(value string) (SortBy, error) {
	switch s := SortBy(strings.ToLower(strings.TrimSpace(value))); s {
	case SortInsertion, SortNewest, SortOldest, SortPriority:
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown sort %q", models.ErrValidation, value)
}

// Sort возвращает новый срез; равные элементы сохраняют исходный порядок
func Sort(records []*models.ProblemRecord, by SortBy) []*models.ProblemRecord {
	result := slices.Clone(records)
	switch by {
	case SortNewest:
		slices.SortStableFunc(result, func(a, b *models.ProblemRecord) int {
			return b.ReportedAt.Compare(a.ReportedAt)
		})
	case SortOldest:
		slices.SortStableFunc(result, func(a, b *models.ProblemRecord) int {
			return a.ReportedAt.Compare(b.ReportedAt)
		})
	case SortPriority:
		slices.SortStableFunc(result, func(a, b *models.ProblemRecord) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	}
	return result
}

// Page - страница выдачи
type Page struct {
	Items    []*models.ProblemRecord
	Total    int
	Page     int
	PageSize int
}

// Paginate режет выдачу на страницы. Некорректные параметры заменяются значениями по умолчанию.
func Paginate(records []*models.ProblemRecord, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total := len(records)
	// сравнение до умножения: большой page не должен переполнить int
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := min(start+pageSize, total)

	return Page{
		Items:    records[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
