package session

// Speaker identifies who produced a turn in the dialogue.
type Speaker string

const (
	SpeakerUser Speaker = "User"
	SpeakerAI   Speaker = "AI"
)

// Turn is a single entry in the dialogue history, most recent last.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// DefaultTopic is used before any document has been uploaded.
const DefaultTopic = "General Science"

// historyWindow bounds how many trailing turns Snapshot returns. The full
// history is retained for transcript export; only the tail is used for
// prompt grounding.
const historyWindow = 4
