package response

type AdminStatsResponse struct {
	TotalUsers    int64   `json:"total_users"`
	TotalHotels   int64   `json:"total_hotels"`
	TotalBookings int64   `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}
