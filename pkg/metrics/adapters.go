package metrics

// Convenience recorders so consumers depend on small interfaces instead of
// prometheus types.

// CacheHit records an availability-cache hit for the given entry kind
func (m *Metrics) CacheHit(kind string) {
	m.CacheHitsTotal.WithLabelValues(kind).Inc()
}

// CacheMiss records an availability-cache miss for the given entry kind
func (m *Metrics) CacheMiss(kind string) {
	m.CacheMissesTotal.WithLabelValues(kind).Inc()
}

// WindowClaimed records a window moved to pending
func (m *Metrics) WindowClaimed() {
	m.WindowsClaimedTotal.Inc()
}

// BookingCreated records a successfully persisted booking
func (m *Metrics) BookingCreated() {
	m.BookingsCreatedTotal.Inc()
}

// BookingFailed records a booking submission that failed at storage
func (m *Metrics) BookingFailed() {
	m.BookingsFailedTotal.Inc()
}

// SessionStarted and SessionEnded track live workflow sessions
func (m *Metrics) SessionStarted() {
	m.ActiveWorkflowSessions.Inc()
}

func (m *Metrics) SessionEnded() {
	m.ActiveWorkflowSessions.Dec()
}
