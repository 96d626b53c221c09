package invaders

// ScoreSink receives the running score whenever it changes.
type ScoreSink interface {
	SetScore(score int)
}

// ScoreFunc adapts a function to ScoreSink.
type ScoreFunc func(score int)

// SetScore calls f(score).
func (f ScoreFunc) SetScore(score int) {
	f(score)
}

type discardScore struct{}

func (discardScore) SetScore(int) {}
