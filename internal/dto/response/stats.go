package response

// StatsResponse mirrors the dashboard header: counts for the filtered room
// set and occupancy for today.
type StatsResponse struct {
	TotalRooms    int `json:"totalRooms"`
	TotalBeds     int `json:"totalBeds"`
	TotalGuests   int `json:"totalGuests"`
	OccupancyRate int `json:"occupancyRate"`
}
