package models

// StatsResponse backs the admin dashboard counters.
type StatsResponse struct {
	TotalRooms        int64 `json:"totalRooms"`
	AvailableRooms    int64 `json:"availableRooms"`
	TotalBookings     int64 `json:"totalBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
}
