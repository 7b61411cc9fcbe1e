package store

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

// LogProductivity records one finished focus session. There is no dedup:
// several sessions on the same day are expected and summed by the stats
// calculator.
func (s *Store) LogProductivity(task string, minutes int, day string) (models.ProductivityLog, error) {
	entry := models.ProductivityLog{
		ID:          uuid.New().String(),
		Task:        task,
		Minutes:     minutes,
		Day:         day,
		CompletedAt: time.Now(),
	}
	if err := s.putJSON(constants.KeyPrefixProdLog+entry.ID, entry); err != nil {
		return models.ProductivityLog{}, err
	}
	return entry, nil
}

// ProductivityLogs returns every focus session, most recent first.
func (s *Store) ProductivityLogs() []models.ProductivityLog {
	var logs []models.ProductivityLog
	s.scan(constants.KeyPrefixProdLog, func(key, raw string) {
		var entry models.ProductivityLog
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			logger.Warn("Skipping corrupt productivity log", "key", key, "error", err)
			return
		}
		logs = append(logs, entry)
	})
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CompletedAt.After(logs[j].CompletedAt)
	})
	return logs
}

// ProductivityLogsForDay returns the focus sessions logged on one day.
func (s *Store) ProductivityLogsForDay(day string) []models.ProductivityLog {
	var logs []models.ProductivityLog
	for _, entry := range s.ProductivityLogs() {
		if entry.Day == day {
			logs = append(logs, entry)
		}
	}
	return logs
}
