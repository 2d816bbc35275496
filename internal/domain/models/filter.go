package models

// All selects every value of a categorical filter.
const All = "All"

// FilterState is the dashboard's ephemeral filter input. It never touches the loaded snapshot.
type FilterState struct {
	Start  string `query:"start" json:"start" validate:"omitempty,datetime=2006-01-02"`
	End    string `query:"end" json:"end" validate:"omitempty,datetime=2006-01-02"`
	Type   string `query:"type" json:"type" default:"All"`
	Source string `query:"source" json:"source" default:"All"`
}
