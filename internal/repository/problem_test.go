package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertQuery(t *testing.T) {
	// Подготовка
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	record := &models.ProblemRecord{
		ID:                 uuid.New(),
		Sequence:           7,
		Reference:          "RPT-2024-007",
		Title:              "Pothole on main road",
		Category:           "Infrastructure",
		Severity:           4,
		Priority:           models.PriorityHigh,
		Status:             models.StatusAssigned,
		Location:           models.Location{Latitude: 28.6139, Longitude: 77.209, Address: "Connaught Place"},
		ReportedAt:         now,
		AssignedDepartment: "Roads Dept",
		Timeline: []models.TimelineEntry{
			{Status: models.StatusReported, Timestamp: now, Description: "Problem reported by citizen"},
			{Status: models.StatusAIProcessed, Timestamp: now, Description: "Automatically processed"},
			{Status: models.StatusAssigned, Timestamp: now, Description: "Assigned to Roads Dept"},
		},
		Engagement: models.Engagement{Views: 3, Supports: 2},
		UpdatedAt:  now,
	}

	// Действие
	query, args, err := buildUpsertQuery(record)

	// Проверки
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO problems (id,seq,reference,")
	assert.Contains(t, query, "$20")
	assert.NotContains(t, query, "$21")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET priority = EXCLUDED.priority, status = EXCLUDED.status")
	assert.Contains(t, query, "timeline = EXCLUDED.timeline")
	assert.NotContains(t, query, "title = EXCLUDED.title")
	require.Len(t, args, len(problemColumns))

	assert.Equal(t, record.ID, args[0])
	assert.Equal(t, "high", args[7])
	assert.Equal(t, "assigned", args[8])
	assert.Equal(t, "Roads Dept", args[14])

	var timeline []models.TimelineEntry
	require.NoError(t, json.Unmarshal(args[15].([]byte), &timeline))
	assert.Equal(t, record.Timeline, timeline)
}
