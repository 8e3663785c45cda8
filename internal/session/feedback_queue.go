package session

import (
	"discgolf-session-service/internal/domain"
	"time"
)

// FeedbackQueue holds tag batches in arrival order. The head batch is shown
// for the display duration, then the next one takes its place.
// Time is supplied by the caller so the queue never reads a clock.
type FeedbackQueue struct {
	display time.Duration
	batches [][]domain.Tag
	shownAt time.Time
}

func NewFeedbackQueue(display time.Duration) *FeedbackQueue {
	return &FeedbackQueue{display: display}
}

// Push enqueues a batch. Empty batches are ignored.
func (q *FeedbackQueue) Push(tags []domain.Tag, now time.Time) {
	if len(tags) == 0 {
		return
	}
	q.advance(now)
	if len(q.batches) == 0 {
		q.shownAt = now
	}
	q.batches = append(q.batches, append([]domain.Tag(nil), tags...))
}

// Current returns the batch on display at now, or nil when nothing is showing.
func (q *FeedbackQueue) Current(now time.Time) []domain.Tag {
	q.advance(now)
	if len(q.batches) == 0 {
		return nil
	}
	return append([]domain.Tag(nil), q.batches[0]...)
}

// Len returns the number of batches not yet expired at now, including the
// one on display.
func (q *FeedbackQueue) Len(now time.Time) int {
	q.advance(now)
	return len(q.batches)
}

func (q *FeedbackQueue) advance(now time.Time) {
	for len(q.batches) > 0 && now.Sub(q.shownAt) >= q.display {
		q.batches = q.batches[1:]
		q.shownAt = q.shownAt.Add(q.display)
	}
}
