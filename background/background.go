package background

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// Background is a struct to maintain the simulated asynchronous
// collaborators of the api server
type Background struct {
	Analyzer *Analyzer
	Notifier *Notifier
}

func New(analysisDelay time.Duration, scope tally.Scope) *Background {
	return &Background{
		Analyzer: NewAnalyzer(analysisDelay, scope),
		Notifier: NewNotifier(scope),
	}
}

// Stop cancels the timers which have not fired yet
func (b *Background) Stop() {
	b.Analyzer.Stop()
}
