package session

// Stage is the conversation's position in its fixed progression. Stages
// only advance; a late-arriving plain reply never rolls CollectingInfo
// back to Chatting. Completed ends the info-collection sub-flow only:
// chatting continues after it, and the collect flow is re-entrant on a
// fresh backend signal.
type Stage int

const (
	StageWelcomed Stage = iota
	StageChatting
	StageCollectingInfo
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageWelcomed:
		return "welcomed"
	case StageChatting:
		return "chatting"
	case StageCollectingInfo:
		return "collecting_info"
	case StageCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
