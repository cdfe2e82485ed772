package models

// BookingInfo describes the stay the itinerary is planned around. All four
// fields are required; no date-ordering check is performed on purpose, the
// planner tolerates nonsensical but well-typed input.
type BookingInfo struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Location  string `json:"location" binding:"required"`
	PartyType string `json:"party_type" binding:"required"`
}

// PreferencesInfo carries optional guest constraints. Budget defaults to
// "moderate" when omitted.
type PreferencesInfo struct {
	Budget         string   `json:"budget"`
	Interests      []string `json:"interests"`
	MobilityNeeds  string   `json:"mobility_needs"`
	DietaryFilters []string `json:"dietary_filters"`
}

// ConciergeRequest is the unit of validation and of audit logging.
type ConciergeRequest struct {
	Booking     BookingInfo     `json:"booking" binding:"required"`
	Preferences PreferencesInfo `json:"preferences"`
	NLUQuery    string          `json:"nlu_query"`
}

// ApplyDefaults fills preference defaults after binding.
func (r *ConciergeRequest) ApplyDefaults() {
	if r.Preferences.Budget == "" {
		r.Preferences.Budget = "moderate"
	}
}

// LiveContext holds the short factual bullets fetched per request and
// injected into the model prompt. Each list carries at most 3 entries.
type LiveContext struct {
	Weather []string `json:"weather"`
	POIs    []string `json:"pois"`
	Events  []string `json:"events"`
}

// ItineraryResult is the model's parsed JSON output. After normalization the
// four top-level keys (plan, activities, restaurants, packing_checklist) are
// guaranteed present, but the nested shape of each list is only as reliable
// as the model's adherence to the requested schema.
type ItineraryResult map[string]any
