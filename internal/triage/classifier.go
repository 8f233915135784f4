// Package triage выполняет автоматическую обработку нового обращения:
// оценивает приоритет по тексту и переводит обращение в ai-processed.
package triage

import (
	"fmt"
	"strings"

	"github.com/shenikar/civic_tracker/internal/lifecycle"
	"github.com/shenikar/civic_tracker/internal/models"
)

// Actor - инициатор автоматического перехода в таймлайне
const Actor = "AI System"

const (
	baseConfidence    = 0.6
	keywordConfidence = 0.1
	maxConfidence     = 0.95
)

// urgentKeywords поднимают приоритет на одну ступень
var urgentKeywords = []string{
	"burst",
	"collapse",
	"electrocution",
	"emergency",
	"exposed wire",
	"fire",
	"flood",
	"gas leak",
	"live wire",
	"sewage overflow",
	"sinkhole",
}

// Prediction - результат классификации
type Prediction struct {
	Category        string          `json:"category"`
	Priority        models.Priority `json:"priority"`
	Confidence      float64         `json:"confidence"`
	MatchedKeywords []string        `json:"matched_keywords,omitempty"`
}

type Classifier struct {
	keywords []string
}

func NewClassifier() *Classifier {
	return &Classifier{keywords: urgentKeywords}
}

// Classify оценивает приоритет: базой служит оценка гражданина,
// совпадение со срочными словами поднимает его на одну ступень.
func (c *Classifier) Classify(record models.ProblemRecord) Prediction {
	text := strings.ToLower(record.Title + " " + record.Description)

	var matched []string
	for _, kw := range c.keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}

	priority := models.PriorityFromSeverity(record.Severity)
	confidence := baseConfidence
	if len(matched) > 0 {
		priority = priority.Escalate()
		confidence += keywordConfidence * float64(len(matched))
	}

	return Prediction{
		Category:        record.Category,
		Priority:        priority,
		Confidence:      min(confidence, maxConfidence),
		MatchedKeywords: matched,
	}
}

// Description - текст записи таймлайна для перехода в ai-processed
func (p Prediction) Description() string {
	return fmt.Sprintf("Automatically categorized as %s - %s Priority", p.Category, p.Priority.Label())
}

// Process переоценивает приоритет и переводит запись в ai-processed.
// Обе операции применяются к одной копии, поэтому их можно выполнить в одном Store.Apply.
func (c *Classifier) Process(m *lifecycle.Machine, record models.ProblemRecord) (models.ProblemRecord, Prediction, error) {
	prediction := c.Classify(record)

	next, err := m.Retriage(record, prediction.Priority)
	if err != nil {
		return record, prediction, err
	}
	next, err = m.Transition(next, lifecycle.Request{
		Target:      models.StatusAIProcessed,
		Actor:       Actor,
		Description: prediction.Description(),
	})
	if err != nil {
		return record, prediction, err
	}
	return next, prediction, nil
}
