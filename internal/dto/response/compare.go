package response

// CompareEntryResponse is one room in the comparison view. The Best* flags
// mark the winning value per attribute across the current selection.
type CompareEntryResponse struct {
	RoomTypeResponse
	BestPrice    bool `json:"best_price"`
	BestCapacity bool `json:"best_capacity"`
	MostAmenity  bool `json:"most_amenities"`
}

type CompareResponse struct {
	Rooms   []CompareEntryResponse `json:"rooms"`
	Count   int                    `json:"count"`
	Limit   int                    `json:"limit"`
	Warning string                 `json:"warning,omitempty"`
}
