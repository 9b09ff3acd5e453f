package execution

import (
	"context"
	"time"

	"gtr/internal/browser"
	"gtr/internal/domain"
)

// Round is one question to be played
type Round struct {
	Number   int // 1-based
	Total    int
	Question domain.Question
}

// Policy plays question rounds for one mode.
// PlayRound starts with the game screen's choices about to appear and ends
// after the result screen's next button has been clicked.
type Policy interface {
	Mode() domain.Mode
	PlayRound(ctx context.Context, page browser.Page, round Round) error
}

// NewPolicy returns the policy for mode
func NewPolicy(mode domain.Mode, waiter *Waiter, settle time.Duration) (Policy, error) {
	switch mode {
	case domain.ModeEasy:
		return &easyPolicy{waiter: waiter, settle: settle}, nil
	case domain.ModeHard:
		return &hardPolicy{waiter: waiter}, nil
	default:
		return nil, &UnsupportedModeError{Mode: mode}
	}
}

// hardPolicy always picks the first choice; it checks the flow, not the answers
type hardPolicy struct {
	waiter *Waiter
}

func (p *hardPolicy) Mode() domain.Mode { return domain.ModeHard }

func (p *hardPolicy) PlayRound(ctx context.Context, page browser.Page, round Round) error {
	if err := p.waiter.WaitFor(ctx, page, SelectorChoice); err != nil {
		return err
	}
	if err := Click(ctx, page, ChoiceSelector(0)); err != nil {
		return err
	}
	return advance(ctx, p.waiter, page)
}

// easyPolicy answers correctly, after one deliberate wrong answer on the first question
type easyPolicy struct {
	waiter *Waiter
	settle time.Duration
}

func (p *easyPolicy) Mode() domain.Mode { return domain.ModeEasy }

func (p *easyPolicy) PlayRound(ctx context.Context, page browser.Page, round Round) error {
	if err := p.waiter.WaitFor(ctx, page, SelectorChoice); err != nil {
		return err
	}

	if round.Number == 1 {
		if wrong, ok := WrongChoice(round.Question); ok {
			if err := Click(ctx, page, ChoiceSelector(wrong)); err != nil {
				return err
			}
			// The game stays on the question after a wrong answer
			if err := pause(ctx, p.settle); err != nil {
				return err
			}
		}
	}

	if err := Click(ctx, page, ChoiceSelector(round.Question.CorrectAnswer)); err != nil {
		return err
	}
	return advance(ctx, p.waiter, page)
}

// WrongChoice picks index 0, or 1 when 0 is the correct answer.
// It reports false when the question has a single choice.
func WrongChoice(q domain.Question) (int, bool) {
	if len(q.Choices) < 2 {
		return 0, false
	}
	if q.CorrectAnswer == 0 {
		return 1, true
	}
	return 0, true
}

// advance waits for the result screen and moves on
func advance(ctx context.Context, waiter *Waiter, page browser.Page) error {
	if err := waiter.WaitFor(ctx, page, SelectorResultScreen); err != nil {
		return err
	}
	return Click(ctx, page, SelectorNextButton)
}
