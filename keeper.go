package scorekeep

import (
	"time"

	"github.com/lazypower/scorekeep/internal/store"
)

// Keeper applies the scoring policy for one counter identity: decay, point
// accumulation, threshold comparison, persistence. It holds no score of its
// own; the score lives in the shared State handle and on disk.
//
// Keeper is not internally synchronized. Two goroutines applying points to
// the same identity concurrently can interleave their read-modify-write
// cycles and lose updates; serialize per identity when that matters.
type Keeper struct {
	identity string
	state    *State
	db       *store.DB
	cfg      Config
}

// Identity returns the counter identity this Keeper is bound to.
func (k *Keeper) Identity() string {
	return k.identity
}

// Score returns the current shared in-memory score.
func (k *Keeper) Score() int {
	return k.state.Score
}

// Apply adds points to the score and reports whether the threshold was
// crossed. The sequence is: refresh from storage, decay by elapsed time,
// add points, compare, persist.
//
// When the post-decay score strictly exceeds the effective threshold, the
// score resets to 0 before the callback runs, the callback (if any) fires
// exactly once, and its value and error are carried out through the Outcome
// and Apply's error. The new score and timestamp are persisted whether or
// not a crossing occurred.
//
// Storage failures propagate unretried. A failed final write leaves the
// in-memory score ahead of the durable copy; there is no transaction
// spanning both.
func (k *Keeper) Apply(points int, opts ...Option) (Outcome, error) {
	cfg := k.cfg
	for _, opt := range opts {
		opt(&cfg)
	}

	rec, err := k.db.ReadScore(k.identity)
	if err != nil {
		return Outcome{}, err
	}
	score := rec.Score

	if cfg.Decay > 0 && rec.UpdatedAt != nil {
		elapsed := time.Since(*rec.UpdatedAt)
		// A clock step backward decays nothing rather than adding points.
		if decayed := int(elapsed / cfg.Decay); decayed > 0 {
			score -= decayed
			if score < 0 {
				score = 0
			}
		}
	}

	score += points

	var out Outcome
	var cbErr error
	if score > cfg.Threshold {
		score = 0
		out.Exceeded = true
		if cfg.Callback != nil {
			out.Value, cbErr = cfg.Callback()
		}
	}

	if score < 0 {
		score = 0
	}

	now := time.Now()
	k.state.Score = score
	k.state.LastUpdated = &now
	if err := k.db.WriteScore(k.identity, score, now); err != nil {
		return out, err
	}
	return out, cbErr
}

// ResetScore zeroes the score and persists immediately. Safe to call
// repeatedly.
func (k *Keeper) ResetScore() error {
	now := time.Now()
	k.state.Score = 0
	k.state.LastUpdated = &now
	return k.db.WriteScore(k.identity, 0, now)
}
