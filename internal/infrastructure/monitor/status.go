package monitor

import "time"

type Status struct {
	Tasks          int             `json:"tareas"`
	Journal        bool            `json:"journal"`
	JournalSize    int             `json:"journal_size"`
	JournalReadTx  int             `json:"journal_read_tx"`
	JournalOpenTx  int             `json:"journal_open_tx"`
	RecentRequests []RecentRequest `json:"recent_requests,omitempty"`
	LastCheck      time.Time       `json:"last_check"`
}

// RecentRequest is a trimmed access journal entry.
type RecentRequest struct {
	At     time.Time `json:"at"`
	Method string    `json:"method"`
	URL    string    `json:"url"`
	Status int       `json:"status"`
}
