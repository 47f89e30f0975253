package store

// HealthStore reports whether the quote database behind the API is
// reachable.
type HealthStore interface {
	// CheckConnectivity pings the database with a trivial query.
	CheckConnectivity() error
}
