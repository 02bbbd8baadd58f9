package database

import (
	"context"
	"sync"
)

// MemorySurveyRepo is the in-process store used for local runs and tests.
type MemorySurveyRepo struct {
	mu      sync.Mutex
	records []SurveyRecord
}

func NewMemorySurveyRepo() *MemorySurveyRepo {
	return &MemorySurveyRepo{}
}

func (r *MemorySurveyRepo) Save(ctx context.Context, rec *SurveyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

// Records returns a copy of everything saved so far.
func (r *MemorySurveyRepo) Records() []SurveyRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SurveyRecord, len(r.records))
	copy(out, r.records)
	return out
}
