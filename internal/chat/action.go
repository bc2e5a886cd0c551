package chat

// Action is the classified intent for the current turn. It determines
// which executor, if any, the dispatcher runs.
type Action string

const (
	ActionSmallTalk     Action = "small_talk"
	ActionClarify       Action = "clarify"
	ActionRecommend     Action = "recommend"
	ActionAnalyze       Action = "analyze"
	ActionCompare       Action = "compare"
	ActionAnswerGeneral Action = "answer_general"
	ActionReject        Action = "reject"
	ActionError         Action = "error"
)

// Classification is the envelope the intent classifier returns.
// Ephemeral: produced and consumed within a single turn.
type Classification struct {
	Action   Action `json:"action"`
	Response string `json:"response"`
}
