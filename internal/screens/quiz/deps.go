// Package quiz implements the quiz setup wizard and the active session
// screen.
package quiz

import (
	"go.uber.org/zap"

	"github.com/sdutta/revq/internal/bank"
	"github.com/sdutta/revq/internal/config"
	"github.com/sdutta/revq/internal/match"
	"github.com/sdutta/revq/internal/perf"
	"github.com/sdutta/revq/internal/store"
)

// Deps bundles the collaborators the quiz screens need. Answers may be nil
// when the history database could not be opened; history is best-effort.
type Deps struct {
	Config  *config.Config
	Loader  *bank.Loader
	Matcher *match.Matcher
	Perf    *perf.Store
	Answers *store.AnswerRepo
	Log     *zap.Logger
}
