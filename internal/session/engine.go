package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"sdjquiz/internal/loader"
	"sdjquiz/internal/quiz"
)

// LoadFunc turns user supplied path input into a quiz.
type LoadFunc func(raw string) (*quiz.Quiz, error)

// Engine drives one play-through against a Presenter.
type Engine struct {
	presenter Presenter
	load      LoadFunc
	rng       *rand.Rand
	logger    *zap.Logger
	state     State
	session   *Session
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for sampling and shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLoader replaces the quiz loader.
func WithLoader(load LoadFunc) Option {
	return func(e *Engine) {
		if load != nil {
			e.load = load
		}
	}
}

// NewEngine builds an engine bound to a presenter.
func NewEngine(presenter Presenter, opts ...Option) *Engine {
	e := &Engine{
		presenter: presenter,
		load:      loader.Open,
		logger:    zap.NewNop(),
		state:     StateNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// State returns the current step.
func (e *Engine) State() State { return e.state }

// Session returns the active play-through, nil before questions are selected.
func (e *Engine) Session() *Session { return e.session }

// Run performs a full play-through: ask for a quiz file, load it, greet,
// ask for a question count, present every selected question and report the
// result. Load failures are shown and returned without retry.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if err := e.transition(StateLoading); err != nil {
		return Result{}, err
	}
	if err := e.presenter.Clear(); err != nil {
		return Result{}, e.abort(err)
	}
	raw, err := e.presenter.AskFilePath()
	if err != nil {
		return Result{}, e.abort(fmt.Errorf("ask quiz file: %w", err))
	}
	q, err := e.load(raw)
	if err != nil {
		e.logger.Warn("quiz load failed", zap.String("input", raw), zap.Error(err))
		e.presenter.ShowError(err)
		return Result{}, e.abort(err)
	}
	e.logger.Info("quiz loaded",
		zap.String("title", q.Title()),
		zap.Int("questions", q.QuestionsCount()),
		zap.Int("max_score", q.MaxScore()))

	if err := e.transition(StateAwaitingQuestionCount); err != nil {
		return Result{}, err
	}
	e.presenter.ShowGreeting(Greeting{
		Title:          q.Title(),
		Description:    q.Description(),
		QuestionsCount: q.QuestionsCount(),
		MaxScore:       q.MaxScore(),
	})
	count, err := e.presenter.AskQuestionCount(q.QuestionsCount())
	if err != nil {
		return Result{}, e.abort(fmt.Errorf("ask question count: %w", err))
	}
	e.session = NewSession(q, count, e.rng)
	logger := e.logger.With(zap.String("session", e.session.ID()))
	logger.Info("session started", zap.Int("requested", count), zap.Int("selected", e.session.Len()))

	for !e.session.Done() {
		if err := ctx.Err(); err != nil {
			return e.session.Result(), e.abort(err)
		}
		if err := e.playRound(logger); err != nil {
			return e.session.Result(), e.abort(err)
		}
	}

	if err := e.transition(StateFinished); err != nil {
		return Result{}, err
	}
	result := e.session.Result()
	logger.Info("session finished", zap.Int("score", result.Score), zap.Int("max_score", result.MaxScore))
	e.presenter.ShowResult(result)
	return result, nil
}

// playRound presents the current question and loops until a valid answer is given.
func (e *Engine) playRound(logger *zap.Logger) error {
	if err := e.transition(StatePresentingQuestion); err != nil {
		return err
	}
	round, _ := e.session.Current()
	if err := e.presenter.Clear(); err != nil {
		return err
	}
	e.presenter.ShowQuestion(round.View(e.session.Len()))

	if err := e.transition(StateAwaitingAnswer); err != nil {
		return err
	}
	for {
		raw, err := e.presenter.AskAnswer()
		if err != nil {
			return fmt.Errorf("ask answer: %w", err)
		}
		outcome, err := e.session.Submit(raw)
		if errors.Is(err, ErrInvalidAnswer) {
			logger.Debug("answer rejected", zap.Int("question", round.Index), zap.String("input", raw))
			e.presenter.ShowError(fmt.Errorf("select %d answer(s) between 1 and %d, separated by commas", len(round.Correct), len(round.Answers)))
			continue
		}
		if err != nil {
			return err
		}
		logger.Debug("question answered",
			zap.Int("question", round.Index),
			zap.String("id", outcome.QuestionID),
			zap.Bool("correct", outcome.Correct),
			zap.Int("awarded", outcome.Awarded))
		break
	}
	return e.presenter.Pause()
}

func (e *Engine) transition(next State) error {
	if !canTransition(e.state, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.state, next)
	}
	e.state = next
	return nil
}

func (e *Engine) abort(cause error) error {
	if !e.state.Terminal() {
		e.state = StateAborted
	}
	return cause
}
