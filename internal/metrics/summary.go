// Package metrics считает сводную статистику по снимку обращений.
package metrics

import (
	"math"
	"time"

	"github.com/shenikar/civic_tracker/internal/models"
)

// CategoryCount - доля категории. Проценты округляются независимо,
// поэтому их сумма может отличаться от 100.
type CategoryCount struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DepartmentStats - нагрузка на департамент
type DepartmentStats struct {
	Department            string         `json:"department"`
	Active                int            `json:"active"`
	Resolved              int            `json:"resolved"`
	AverageResolutionTime *time.Duration `json:"average_resolution_time,omitempty"`
}

type Metrics struct {
	Total                 int                     `json:"total"`
	Active                int                     `json:"active"`
	ByStatus              map[models.Status]int   `json:"by_status"`
	ByPriority            map[models.Priority]int `json:"by_priority"`
	ByCategory            []CategoryCount         `json:"by_category"`
	ByDepartment          []DepartmentStats       `json:"by_department"`
	ResolutionRate        float64                 `json:"resolution_rate"`
	AverageResolutionTime *time.Duration          `json:"average_resolution_time,omitempty"`
}

type durationSum struct {
	total time.Duration
	n     int
}

func (d *durationSum) add(v time.Duration) {
	d.total += v
	d.n++
}

func (d durationSum) mean() *time.Duration {
	if d.n == 0 {
		return nil
	}
	avg := d.total / time.Duration(d.n)
	return &avg
}

// Summarize пересчитывает метрики целиком при каждом вызове
func Summarize(records []*models.ProblemRecord) Metrics {
	m := Metrics{
		Total:        len(records),
		ByStatus:     make(map[models.Status]int, len(models.Statuses)),
		ByPriority:   make(map[models.Priority]int, len(models.Priorities)),
		ByCategory:   []CategoryCount{},
		ByDepartment: []DepartmentStats{},
	}
	for _, s := range models.Statuses {
		m.ByStatus[s] = 0
	}
	for _, p := range models.Priorities {
		m.ByPriority[p] = 0
	}

	categoryIndex := make(map[string]int)
	departmentIndex := make(map[string]int)
	departmentDurations := make(map[string]*durationSum)
	var resolution durationSum

	for _, r := range records {
		m.ByStatus[r.Status]++
		m.ByPriority[r.Priority]++

		i, ok := categoryIndex[r.Category]
		if !ok {
			i = len(m.ByCategory)
			categoryIndex[r.Category] = i
			m.ByCategory = append(m.ByCategory, CategoryCount{Category: r.Category})
		}
		m.ByCategory[i].Count++

		var elapsed time.Duration
		resolvedAt, resolved := r.ResolvedAt()
		if resolved && r.Status == models.StatusResolved {
			elapsed = resolvedAt.Sub(r.ReportedAt)
			resolution.add(elapsed)
		} else {
			resolved = false
			m.Active++
		}

		if r.AssignedDepartment == "" {
			continue
		}
		j, ok := departmentIndex[r.AssignedDepartment]
		if !ok {
			j = len(m.ByDepartment)
			departmentIndex[r.AssignedDepartment] = j
			m.ByDepartment = append(m.ByDepartment, DepartmentStats{Department: r.AssignedDepartment})
			departmentDurations[r.AssignedDepartment] = &durationSum{}
		}
		if resolved {
			m.ByDepartment[j].Resolved++
			departmentDurations[r.AssignedDepartment].add(elapsed)
		} else {
			m.ByDepartment[j].Active++
		}
	}

	for i := range m.ByCategory {
		m.ByCategory[i].Percentage = percentage(m.ByCategory[i].Count, m.Total)
	}
	for i := range m.ByDepartment {
		m.ByDepartment[i].AverageResolutionTime = departmentDurations[m.ByDepartment[i].Department].mean()
	}

	if m.Total > 0 {
		m.ResolutionRate = float64(m.ByStatus[models.StatusResolved]) / float64(m.Total)
	}
	m.AverageResolutionTime = resolution.mean()
	return m
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}
