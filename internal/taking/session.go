// Package taking implements the quiz-taking state machine.
//
// A Session starts in StateLoading, fetches the quiz's questions once, walks through them in
// StateAnswering and ends in StateComplete, which is terminal. Retaking a quiz requires a new
// Session.
package taking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/quizzle-app/quizzle/internal/quiz"
)

type State int

const (
	StateLoading State = iota
	StateAnswering
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnswering:
		return "answering"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrNoQuestions    = errors.New("quiz has no questions")
	ErrAlreadyLoaded  = errors.New("questions are already loading or loaded")
	ErrInvalidState   = errors.New("action is not allowed in the current state")
	ErrUnknownAnswer  = errors.New("answer is not one of the options")
	ErrClosed         = errors.New("session is closed")
	ErrInvalidQuizSet = errors.New("invalid question set")
)

// Result is the outcome of a completed session.
type Result struct {
	Score int
	Total int
}

// Snapshot is an immutable view of a session handed to observers.
type Snapshot struct {
	State      State
	Index      int
	Total      int
	Question   quiz.Question
	Selections map[string]string
	Result     Result
	LoadErr    error
}

// CompletionFunc is called once when the user leaves a completed session.
type CompletionFunc func(Result)

type Option func(*Session)

// WithCompletion sets the callback invoked by ReturnToDetail.
func WithCompletion(fn CompletionFunc) Option {
	return func(s *Session) {
		s.onComplete = fn
	}
}

// Session is one pass through a quiz's questions.
type Session struct {
	mu sync.Mutex

	id         string
	quizID     string
	repository quiz.QuestionRepository
	onComplete CompletionFunc

	state      State
	loading    bool
	loadErr    error
	closed     bool
	returned   bool
	questions  []quiz.Question
	index      int
	selections map[string]string
	result     Result

	observers      map[int]func(Snapshot)
	nextObserverID int
	version        uint64

	// deliverMu orders deliveries; delivered is the version observers saw last.
	deliverMu sync.Mutex
	delivered uint64
}

// change is a state change captured while holding mu.
type change struct {
	version   uint64
	snapshot  Snapshot
	observers []func(Snapshot)
}

func NewSession(quizID string, repository quiz.QuestionRepository, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		quizID:     quizID,
		repository: repository,
		state:      StateLoading,
		selections: make(map[string]string),
		observers:  make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) QuizID() string {
	return s.quizID
}

// Load fetches the full question list. It must be called at most once; only the first call
// fetches. On failure or an empty list the session stays in StateLoading and the error is
// kept for LoadErr.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.loading || s.state != StateLoading || s.loadErr != nil {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.loading = true
	s.mu.Unlock()

	slog.Default().Debug("loading quiz questions",
		"session", s.id,
		"quizID", s.quizID,
	)
	questions, err := s.repository.FetchAllQuestions(ctx, s.quizID)
	if err == nil {
		err = checkQuestions(questions)
	}

	s.mu.Lock()
	s.loading = false
	if s.closed {
		s.mu.Unlock()
		slog.Default().Debug("discarding questions for closed session", "session", s.id)
		return ErrClosed
	}
	if err != nil {
		s.loadErr = fmt.Errorf("repository.FetchAllQuestions(%s) > %w", s.quizID, err)
		err = s.loadErr
		c := s.changedLocked()
		s.mu.Unlock()
		slog.Default().Warn("unable to load quiz",
			"session", s.id,
			"quizID", s.quizID,
			"error", err,
		)
		s.notify(c)
		return err
	}
	s.questions = questions
	s.index = 0
	s.state = StateAnswering
	c := s.changedLocked()
	s.mu.Unlock()

	s.notify(c)
	return nil
}

func checkQuestions(questions []quiz.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	seen := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidQuizSet, i)
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("%w: duplicate question id %s", ErrInvalidQuizSet, q.ID)
		}
		seen[q.ID] = struct{}{}
		if !q.HasOption(q.CorrectAnswer) {
			return fmt.Errorf("%w: correct answer of %s is not an option", ErrInvalidQuizSet, q.ID)
		}
	}
	return nil
}

// SelectAnswer records the answer for the current question. The first selection wins;
// any later selection on the same question is a no-op, whatever the answer.
func (s *Session) SelectAnswer(answer string) error {
	s.mu.Lock()
	if err := s.requireLocked(StateAnswering); err != nil {
		s.mu.Unlock()
		return err
	}
	question := s.questions[s.index]
	if _, ok := s.selections[question.ID]; ok {
		s.mu.Unlock()
		return nil
	}
	if !question.HasOption(answer) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownAnswer, answer)
	}
	s.selections[question.ID] = answer
	c := s.changedLocked()
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// Advance moves to the next question, or completes the session on the last one.
func (s *Session) Advance() error {
	s.mu.Lock()
	if err := s.requireLocked(StateAnswering); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.index+1 < len(s.questions) {
		s.index++
	} else {
		s.completeLocked()
	}
	c := s.changedLocked()
	s.mu.Unlock()

	s.notify(c)
	return nil
}

// Finish completes the session regardless of unanswered questions.
func (s *Session) Finish() error {
	s.mu.Lock()
	if err := s.requireLocked(StateAnswering); err != nil {
		s.mu.Unlock()
		return err
	}
	s.completeLocked()
	c := s.changedLocked()
	s.mu.Unlock()

	s.notify(c)
	return nil
}

func (s *Session) completeLocked() {
	score := 0
	for _, q := range s.questions {
		if answer, ok := s.selections[q.ID]; ok && q.IsCorrect(answer) {
			score++
		}
	}
	s.result = Result{Score: score, Total: len(s.questions)}
	s.state = StateComplete
	slog.Default().Info("quiz completed",
		"session", s.id,
		"quizID", s.quizID,
		"score", s.result.Score,
		"total", s.result.Total,
	)
}

// ReturnToDetail leaves a completed session and reports its result to the completion
// callback. The callback runs once; the session is closed afterwards.
func (s *Session) ReturnToDetail() error {
	s.mu.Lock()
	if err := s.requireLocked(StateComplete); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.returned {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.returned = true
	s.closed = true
	result := s.result
	onComplete := s.onComplete
	s.mu.Unlock()

	if onComplete != nil {
		onComplete(result)
	}
	return nil
}

// Close discards the session. A fetch still in flight will not touch it.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	clear(s.observers)
}

func (s *Session) requireLocked(want State) error {
	if s.closed {
		return ErrClosed
	}
	if s.state != want {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LoadErr returns why the questions could not be loaded, if they could not.
func (s *Session) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Index returns the position of the current question.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// Current returns the active question while answering.
func (s *Session) Current() (quiz.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAnswering {
		return quiz.Question{}, false
	}
	return s.questions[s.index], true
}

// Selected returns the answer recorded for a question.
func (s *Session) Selected(questionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	answer, ok := s.selections[questionID]
	return answer, ok
}

// Result returns the score once the session is complete.
func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateComplete {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidState, s.state)
	}
	return s.result, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		State:      s.state,
		Index:      s.index,
		Total:      len(s.questions),
		Selections: maps.Clone(s.selections),
		Result:     s.result,
		LoadErr:    s.loadErr,
	}
	if s.state == StateAnswering {
		snapshot.Question = s.questions[s.index]
		snapshot.Question.AnswerOptions = slices.Clone(snapshot.Question.AnswerOptions)
	}
	return snapshot
}

// Subscribe registers fn to receive a snapshot after every state change, in the order the
// changes happened. fn must not call the session's mutating methods.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObserverID
	s.nextObserverID++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// changedLocked bumps the version and captures the snapshot and observers of this change.
func (s *Session) changedLocked() change {
	s.version++
	c := change{
		version:   s.version,
		snapshot:  s.snapshotLocked(),
		observers: make([]func(Snapshot), 0, len(s.observers)),
	}
	for id := 0; id < s.nextObserverID; id++ {
		if fn, ok := s.observers[id]; ok {
			c.observers = append(c.observers, fn)
		}
	}
	return c
}

// notify delivers a change unless a newer one has already been delivered.
func (s *Session) notify(c change) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if c.version <= s.delivered {
		return
	}
	s.delivered = c.version
	for _, fn := range c.observers {
		fn(c.snapshot)
	}
}
