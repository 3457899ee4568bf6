package physics

import "go.uber.org/zap"

// Reporter logs a recoverable condition the first time it is seen for a
// key and stays quiet afterwards. One Reporter may back several resolvers
// so a condition is reported once per session rather than once per level
// rebuild.
type Reporter struct {
	logger *zap.Logger
	seen   map[string]struct{}
}

func NewReporter(logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{logger: logger, seen: make(map[string]struct{})}
}

// once reports whether this is the first sighting of key.
func (r *Reporter) once(key, msg string, err error) bool {
	if _, ok := r.seen[key]; ok {
		return false
	}
	r.seen[key] = struct{}{}
	r.logger.Warn(msg, zap.String("key", key), zap.Error(err))
	return true
}
