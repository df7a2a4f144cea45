package session

// Presenter is the front end a play-through talks to. The engine performs no
// I/O itself; every prompt and screen goes through these calls.
type Presenter interface {
	AskFilePath() (string, error)
	Clear() error
	Pause() error
	ShowError(err error)
	ShowGreeting(greeting Greeting)
	AskQuestionCount(defaultCount int) (int, error)
	ShowQuestion(view QuestionView)
	AskAnswer() (string, error)
	ShowResult(result Result)
}

// Greeting describes the loaded quiz before play starts.
type Greeting struct {
	Title          string
	Description    string
	QuestionsCount int
	MaxScore       int
}

// QuestionView is what a presenter shows for one question.
type QuestionView struct {
	Index        int
	Total        int
	Title        string
	Text         string
	Answers      []string
	CorrectCount int
	Single       bool
}

// Outcome records how one question was answered.
type Outcome struct {
	QuestionID string
	Title      string
	Score      int
	Awarded    int
	Correct    bool
	Expected   []int
	Given      []int
}

// Result is the final report of a play-through.
type Result struct {
	Title    string
	Score    int
	MaxScore int
	Outcomes []Outcome
}

// Percent returns the score as a percentage of the maximum.
func (r Result) Percent() float64 {
	if r.MaxScore <= 0 {
		return 0
	}
	return 100 * float64(r.Score) / float64(r.MaxScore)
}
