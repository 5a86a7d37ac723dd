package scorekeep

// Scored wraps a success/failure predicate so that every failure feeds
// points into the shared accumulator for identity. The returned operation
// runs the predicate; on false it applies points with the given overrides,
// on true it leaves the score alone. Callback results are discarded — the
// wrapper exists for its scoring side effect — but storage failures surface
// as the wrapped operation's error.
//
//	check := sk.Scored("api-health", 60, probeAPI)
//	for range ticker.C {
//		if err := check(); err != nil { ... }
//	}
func (s *Service) Scored(identity string, points int, pred func() bool, opts ...Option) func() error {
	return func() error {
		if pred() {
			return nil
		}
		k, err := s.Keeper(identity)
		if err != nil {
			return err
		}
		_, err = k.Apply(points, opts...)
		return err
	}
}
