package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryScoreStorage keeps scores for the lifetime of the process.
type MemoryScoreStorage struct {
	mu    sync.RWMutex
	items map[string]scoreItem
}

func NewMemoryScoreStorage() *MemoryScoreStorage {
	return &MemoryScoreStorage{items: make(map[string]scoreItem)}
}

func (s *MemoryScoreStorage) Get(_ context.Context, tier string) (*BestScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[tier]
	if !ok {
		return nil, nil
	}
	return decodeItem(item), nil
}

func (s *MemoryScoreStorage) GetAll(_ context.Context) ([]*BestScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := make([]*BestScore, 0, len(s.items))
	for _, item := range s.items {
		if score := decodeItem(item); score != nil {
			scores = append(scores, score)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Tier < scores[j].Tier })
	return scores, nil
}

func (s *MemoryScoreStorage) Put(_ context.Context, score *BestScore) error {
	item, err := encodeItem(score)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[score.Tier] = item
	return nil
}

func (s *MemoryScoreStorage) PutIfLower(_ context.Context, score *BestScore) (bool, error) {
	item, err := encodeItem(score)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.items[score.Tier]; ok {
		if best := decodeItem(current); best != nil && best.Moves <= score.Moves {
			return false, nil
		}
	}
	s.items[score.Tier] = item
	return true, nil
}

func (s *MemoryScoreStorage) Delete(_ context.Context, tier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, tier)
	return nil
}

