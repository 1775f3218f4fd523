package round

// Wellness shows a wellness interruption. The controller stays paused until Resume is
// called on it.
type Wellness interface {
	Pause(message string)
}

type WellnessFunc func(message string)

func (f WellnessFunc) Pause(message string) {
	f(message)
}

// Messages are the prompts a wellness interruption picks from.
var Messages = []string{
	"Stand up and stretch!",
	"Take a deep breath.",
	"Try doing one good deed today!",
}
