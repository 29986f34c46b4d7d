package model

// StoreStats is the aggregate view of the session store
type StoreStats struct {
	TotalSessions       int       `json:"total_sessions"`
	TotalCreated        int       `json:"total_created"`
	TotalCleared        int       `json:"total_cleared"`
	RecentSessions      int       `json:"recent_sessions"` // active within the last 5 minutes
	TotalMessages       int       `json:"total_messages"`
	MostAccessedSession SessionID `json:"most_accessed_session,omitempty"`
}
