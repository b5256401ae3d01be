package notification

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

const pruneAfter = 24 * time.Hour

// MemorySuppressor is the single-instance duplicate-send guard: a mutex map
// of key -> last-send time with a cooldown window. It satisfies Suppressor
// so a shared TTL store can replace it without touching the dispatcher.
type MemorySuppressor struct {
	mu       sync.Mutex
	sent     map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

func NewMemorySuppressor(cooldown time.Duration) *MemorySuppressor {
	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}
	return &MemorySuppressor{
		sent:     make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Claim returns false when the key was already claimed inside the cooldown
// window. Entries older than 24 hours are pruned opportunistically on every
// call, keeping the map bounded at funnel traffic volumes.
func (s *MemorySuppressor) Claim(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, at := range s.sent {
		if now.Sub(at) > pruneAfter {
			delete(s.sent, k)
		}
	}

	if at, ok := s.sent[key]; ok && now.Sub(at) < s.cooldown {
		return false
	}
	s.sent[key] = now
	return true
}

var subjectNormalizer = regexp.MustCompile(`[^\w\s]`)

// EmailKey builds the suppression key. The subject is stripped of
// punctuation and emoji so cosmetic subject edits don't defeat suppression.
func EmailKey(emailType EmailType, recipient, subject, uniqueID string) string {
	normalized := strings.TrimSpace(subjectNormalizer.ReplaceAllString(subject, ""))
	key := fmt.Sprintf("%s:%s:%s", emailType, recipient, normalized)
	if uniqueID != "" {
		key += ":" + uniqueID
	}
	return key
}
