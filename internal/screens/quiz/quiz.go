package quiz

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	qz "github.com/omark/quizdeck/internal/quiz"
	"github.com/omark/quizdeck/internal/router"
	"github.com/omark/quizdeck/internal/screen"
	"github.com/omark/quizdeck/internal/screens/results"
	"github.com/omark/quizdeck/internal/store"
	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/layout"
)

// allLecturesQuestionCount is the target size of an all-lectures quiz.
const allLecturesQuestionCount = 30

type phase int

const (
	phaseLoading phase = iota
	phaseActive
	phaseConfirmSubmit
	phaseError
)

// QuizScreen runs one quiz attempt from loading through submission.
type QuizScreen struct {
	bank      *content.Bank
	prog      *progress.Store
	db        *store.Store
	subjectID string
	lectureID string

	session *qz.Session
	phase   phase
	errMsg  string

	options   components.OptionList
	hintShown bool
	jump      *components.TextInput
	elapsed   time.Duration
	timerGen  int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates a quiz screen for a subject. lectureID "" means all lectures.
func New(bank *content.Bank, prog *progress.Store, db *store.Store, subjectID, lectureID string) *QuizScreen {
	return &QuizScreen{
		bank:      bank,
		prog:      prog,
		db:        db,
		subjectID: subjectID,
		lectureID: lectureID,
		phase:     phaseLoading,
	}
}

// Resume creates a quiz screen from a persisted snapshot.
func Resume(bank *content.Bank, prog *progress.Store, db *store.Store, snap qz.Snapshot) *QuizScreen {
	q := New(bank, prog, db, snap.SubjectID, snap.LectureID)
	sess, err := qz.Restore(snap)
	if err != nil {
		q.phase = phaseError
		q.errMsg = "Saved quiz could not be restored."
		return q
	}
	q.adoptSession(sess)
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.phase == phaseActive {
		return q.tickCmd()
	}
	if q.phase == phaseError {
		return nil
	}
	return q.loadQuestions()
}

// loadQuestions fetches the question set, preferring a resumable snapshot
// for the same subject and lecture.
func (q *QuizScreen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if snap, err := q.db.LoadSession(ctx, time.Now()); err == nil && snap != nil &&
			snap.SubjectID == q.subjectID && snap.LectureID == q.lectureID {
			return restoredMsg{Snap: *snap}
		}

		questions, err := q.bank.QuestionsFor(ctx, q.subjectID, q.lectureID)
		return loadedMsg{Questions: questions, Err: err}
	}
}

// adoptSession installs an in-progress session and syncs the UI state to
// its current question.
func (q *QuizScreen) adoptSession(sess *qz.Session) {
	q.session = sess
	q.phase = phaseActive
	q.syncOptions()
}

// syncOptions rebuilds the option list for the current question.
func (q *QuizScreen) syncOptions() {
	cur := q.session.Current()
	if cur == nil {
		return
	}
	q.options = components.NewOptionList(cur.Options, cur.CorrectIndex)
	if chosen, ok := q.session.Answer(q.session.CurrentIndex()); ok {
		q.options.Chosen = chosen
		q.options.Cursor = chosen
	}
	q.hintShown = false
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return q.handleLoaded(msg)

	case restoredMsg:
		sess, err := qz.Restore(msg.Snap)
		if err != nil {
			// Corrupt snapshot: discard it and start fresh.
			db := q.db
			discard := func() tea.Msg {
				if err := db.ClearSession(context.Background()); err != nil {
					log.Printf("clear session: %v", err)
				}
				return nil
			}
			return q, tea.Batch(discard, q.loadQuestions())
		}
		q.adoptSession(sess)
		return q, tea.Batch(
			q.tickCmd(),
			screen.Toast("Resumed where you left off", false),
		)

	case timerTickMsg:
		return q.handleTick(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.jump != nil {
		var cmd tea.Cmd
		*q.jump, cmd = q.jump.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.phase = phaseError
		if errors.Is(msg.Err, content.ErrContentUnavailable) {
			q.errMsg = "Questions are unavailable right now. Check your content source and try again."
		} else {
			q.errMsg = msg.Err.Error()
		}
		return q, screen.Toast("Could not load questions", true)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	questions := msg.Questions
	if q.lectureID == "" {
		questions = content.GenerateQuestionSet(rng, questions, allLecturesQuestionCount)
	} else {
		target := len(questions)
		if subj := content.SubjectByID(q.subjectID); subj != nil {
			if lec := subj.LectureByID(q.lectureID); lec != nil && lec.QuestionCount > 0 {
				target = lec.QuestionCount
			}
		}
		questions = content.GenerateQuestionSet(rng, questions, target)
	}

	sess := qz.New(q.subjectID, q.lectureID)
	if err := sess.Start(questions, time.Now()); err != nil {
		q.phase = phaseError
		q.errMsg = "No questions available for this lecture."
		return q, nil
	}

	q.adoptSession(sess)
	return q, tea.Batch(q.tickCmd(), q.persistSession())
}

func (q *QuizScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != q.timerGen {
		return q, nil
	}
	if q.session == nil || q.session.Status() != qz.StatusInProgress {
		return q, nil
	}
	q.elapsed = q.session.Elapsed(time.Now())
	return q, q.tickWith(msg.Gen)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.phase == phaseError {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if q.phase == phaseConfirmSubmit {
		switch key {
		case "y", "Y":
			q.phase = phaseActive
			return q.finish()
		case "n", "N":
			q.phase = phaseActive
		}
		return q, nil
	}

	if q.phase != phaseActive || q.session == nil {
		return q, nil
	}

	// Jump box captures input while open.
	if q.jump != nil {
		switch key {
		case "enter":
			n, err := q.jump.NumericValue()
			q.jump = nil
			if err != nil {
				return q, nil
			}
			if err := q.session.GoTo(n - 1); err != nil {
				return q, screen.Toast("No such question", true)
			}
			q.syncOptions()
			return q, q.persistSession()
		default:
			var cmd tea.Cmd
			*q.jump, cmd = q.jump.Update(msg)
			return q, cmd
		}
	}

	switch key {
	case "up", "k":
		q.options.CursorUp()
		return q, nil

	case "down", "j":
		q.options.CursorDown()
		return q, nil

	case "enter", "space":
		if err := q.session.RecordAnswer(q.options.Cursor); err != nil {
			return q, nil
		}
		q.options.Chosen = q.options.Cursor
		return q, q.persistSession()

	case "left", "h":
		q.session.Prev()
		q.syncOptions()
		return q, q.persistSession()

	case "right", "l":
		q.session.Next()
		q.syncOptions()
		return q, q.persistSession()

	case "b":
		if _, err := q.session.ToggleBookmark(q.session.CurrentIndex()); err == nil {
			return q, q.persistSession()
		}
		return q, nil

	case "i":
		q.hintShown = !q.hintShown
		return q, nil

	case "g":
		ti := components.NewTextInput("question #", true, 3)
		q.jump = &ti
		return q, q.jump.Init()

	case "s":
		if q.session.UnansweredCount() > 0 {
			q.phase = phaseConfirmSubmit
			return q, nil
		}
		return q.finish()
	}

	return q, nil
}

// finish submits the session, records the result, and swaps in the
// results screen.
func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	res, err := q.session.Submit(time.Now())
	if err != nil {
		return q, nil
	}
	q.timerGen++ // stop the ticker loop

	ctx := context.Background()
	unlocked := q.prog.RecordQuizResult(ctx,
		res.SubjectID, res.LectureID,
		res.CorrectCount, res.TotalCount, res.ElapsedSeconds, time.Now())
	if err := q.db.ClearSession(ctx); err != nil {
		log.Printf("clear session: %v", err)
	}

	bank, prog, db := q.bank, q.prog, q.db
	subjectID, lectureID := q.subjectID, q.lectureID
	retry := func() screen.Screen {
		return New(bank, prog, db, subjectID, lectureID)
	}

	resultsScreen := results.New(res, q.session.Questions(), q.answers(), unlocked, retry)
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}

// answers copies the recorded answer for every question index.
func (q *QuizScreen) answers() []int {
	out := make([]int, q.session.Len())
	for i := range out {
		if a, ok := q.session.Answer(i); ok {
			out[i] = a
		} else {
			out[i] = qz.Unanswered
		}
	}
	return out
}

// HandleEsc closes the jump box or the confirm prompt before letting the
// router pop the screen. An in-progress quiz is already persisted, so
// backing out is safe.
func (q *QuizScreen) HandleEsc() (bool, tea.Cmd) {
	if q.jump != nil {
		q.jump = nil
		return true, nil
	}
	if q.phase == phaseConfirmSubmit {
		q.phase = phaseActive
		return true, nil
	}
	if q.phase == phaseActive {
		return false, screen.Toast("Progress saved", false)
	}
	return false, nil
}

// persistSession saves the current session snapshot in the background.
func (q *QuizScreen) persistSession() tea.Cmd {
	snap := q.session.Snapshot()
	db := q.db
	return func() tea.Msg {
		if err := db.SaveSession(context.Background(), snap); err != nil {
			log.Printf("save session: %v", err)
		}
		return nil
	}
}

// tickCmd starts a fresh timer loop, invalidating any previous one.
func (q *QuizScreen) tickCmd() tea.Cmd {
	q.timerGen++
	return q.tickWith(q.timerGen)
}

func (q *QuizScreen) tickWith(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Gen: gen}
	})
}

func (q *QuizScreen) Title() string {
	if subj := content.SubjectByID(q.subjectID); subj != nil {
		if q.lectureID != "" {
			if lec := subj.LectureByID(q.lectureID); lec != nil {
				return lec.Title
			}
		}
		return subj.Name
	}
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseConfirmSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseActive:
		if q.jump != nil {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Jump"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "B", Description: "Bookmark"},
			{Key: "I", Description: "Hint"},
			{Key: "G", Description: "Jump"},
			{Key: "S", Description: "Submit"},
		}
	}
	return nil
}
