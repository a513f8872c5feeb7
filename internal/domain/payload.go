package domain

// ActionData is the per-action response payload. Each action kind carries its
// own payload shape instead of an untyped map, so callers can switch on the
// concrete type.
type ActionData interface {
	actionData()
}

// SearchData carries the free-text query extracted from a search command.
type SearchData struct {
	Query    string   `json:"query"`
	Genres   []string `json:"genres,omitempty"`
	Features []string `json:"features,omitempty"`
}

// FilterData carries the filter phrase extracted from a filter command.
type FilterData struct {
	Filter string `json:"filter"`
}

// PlaybackData identifies the content a player action applies to.
type PlaybackData struct {
	ContentID string `json:"content_id"`
}

// VolumeData carries the inferred volume direction: "up", "down" or "set".
type VolumeData struct {
	ContentID string `json:"content_id"`
	Direction string `json:"direction"`
}

// CaptionsData carries whether captions should be enabled.
type CaptionsData struct {
	ContentID string `json:"content_id"`
	Enable    bool   `json:"enable"`
}

// DescriptionData carries the overview text read back for a content item.
type DescriptionData struct {
	ContentID string `json:"content_id"`
	Overview  string `json:"overview"`
}

// AccessibilityData lists which accessibility features a content item offers.
type AccessibilityData struct {
	ContentID   string   `json:"content_id"`
	Features    []string `json:"features"`
	CanGenerate bool     `json:"can_generate"`
}

// RatingData carries the aggregate rating of a content item.
type RatingData struct {
	ContentID string  `json:"content_id"`
	Average   float64 `json:"average"`
	Votes     int     `json:"votes"`
}

// SimilarData identifies the content a find-similar action starts from.
type SimilarData struct {
	ContentID string `json:"content_id"`
}

// NavigationData names the destination of a navigation action.
type NavigationData struct {
	Destination string `json:"destination"`
}

// AssistantData carries a free-form answer produced by the AI provider.
type AssistantData struct {
	Response  string   `json:"response"`
	FollowUps []string `json:"follow_ups,omitempty"`
}

func (SearchData) actionData()        {}
func (FilterData) actionData()        {}
func (PlaybackData) actionData()      {}
func (VolumeData) actionData()        {}
func (CaptionsData) actionData()      {}
func (DescriptionData) actionData()   {}
func (AccessibilityData) actionData() {}
func (RatingData) actionData()        {}
func (SimilarData) actionData()       {}
func (NavigationData) actionData()    {}
func (AssistantData) actionData()     {}
