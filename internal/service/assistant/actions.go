package assistant

// Action identifiers carried in CommandResponse.Action. Each one has a
// matching ActionData payload shape in the domain package.
const (
	ActionSearch          = "search"
	ActionFilter          = "filter"
	ActionRecommend       = "recommend"
	ActionPlay            = "play"
	ActionPause           = "pause"
	ActionVolume          = "volume"
	ActionCaptions        = "captions"
	ActionDescribe        = "describe"
	ActionReadDescription = "read_description"
	ActionAccessibility   = "accessibility_info"
	ActionRating          = "rating"
	ActionFindSimilar     = "find_similar"
	ActionNavigateHome    = "navigate_home"
	ActionNavigateSearch  = "navigate_search"
	ActionNavigateFavs    = "navigate_favorites"
	ActionNavigateConfig  = "navigate_settings"
	ActionHelp            = "help"
	ActionAssistant       = "assistant"
	ActionUnknown         = "unknown"
)
