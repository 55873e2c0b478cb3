package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sdutta/revq/internal/app"
	"github.com/sdutta/revq/internal/bank"
	"github.com/sdutta/revq/internal/logging"
	"github.com/sdutta/revq/internal/match"
	"github.com/sdutta/revq/internal/perf"
	"github.com/sdutta/revq/internal/screens/quiz"
	"github.com/sdutta/revq/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start an interactive quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file next to the database.
	log, err := logging.NewFile(filepath.Join(filepath.Dir(dbPath), "revq.log"))
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync()

	deps := quiz.Deps{
		Config: cfg,
		Loader: bank.NewLoader(cfg.QuestionsDir, log),
		Matcher: match.New(match.Config{
			FuzzyThreshold: cfg.FuzzyThreshold,
			Epsilon:        cfg.NumericEpsilon,
			Scorer:         match.NewScorer(),
		}),
		Perf: perf.NewStore(cfg.PerformancePath, log),
		Log:  log,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		// Answer history is best-effort; the quiz still works without it.
		log.Warn("answer history unavailable", zap.String("path", dbPath), zap.Error(err))
	} else {
		defer st.Close()
		deps.Answers = st.Answers()
	}

	return app.Run(app.Options{Deps: deps})
}
