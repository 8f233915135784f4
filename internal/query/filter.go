// Package query строит отфильтрованные представления снимка хранилища.
// Пакет ничего не хранит и не меняет записи.
package query

import (
	"slices"
	"strings"

	"github.com/shenikar/civic_tracker/internal/models"
)

// All - значение критерия, которое отключает фильтр
const All = "all"

// Criteria - условия отбора, объединяются через AND
type Criteria struct {
	Status      string
	Category    string
	Priority    string
	SearchText  string
	BoundingBox *models.BoundingBox
	SortBy      SortBy
}

// Empty сообщает, что ни один фильтр не задан
func (c Criteria) Empty() bool {
	return isAll(c.Status) && isAll(c.Category) && isAll(c.Priority) &&
		strings.TrimSpace(c.SearchText) == "" && c.BoundingBox == nil
}

// Filter отбирает записи, сохраняя порядок снимка
func Filter(records []*models.ProblemRecord, c Criteria) []*models.ProblemRecord {
	if c.Empty() {
		return slices.Clone(records)
	}

	category := strings.ToLower(strings.TrimSpace(c.Category))
	search := strings.ToLower(strings.TrimSpace(c.SearchText))

	result := make([]*models.ProblemRecord, 0, len(records))
	for _, r := range records {
		if !isAll(c.Status) && string(r.Status) != strings.TrimSpace(c.Status) {
			continue
		}
		if !isAll(c.Priority) && string(r.Priority) != strings.TrimSpace(c.Priority) {
			continue
		}
		if !isAll(c.Category) && !strings.Contains(strings.ToLower(r.Category), category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Title), search) &&
			!strings.Contains(strings.ToLower(r.Location.Address), search) {
			continue
		}
		if c.BoundingBox != nil && !c.BoundingBox.Contains(r.Location) {
			continue
		}
		result = append(result, r)
	}
	return result
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}
