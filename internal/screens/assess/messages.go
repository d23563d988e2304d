package assess

import (
	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
)

// sessionReadyMsg is sent when question generation finishes.
type sessionReadyMsg struct {
	Session *assessment.Session
	Err     error
}

// feedbackDoneMsg dismisses the adaptive feedback overlay.
type feedbackDoneMsg struct{}

// finishedMsg is sent when post-completion persistence (answer events,
// badge evaluation, snapshot) is done.
type finishedMsg struct {
	Badges []gamification.BadgeAward
}
