package prompt

import "fmt"

// Scripted answers questions from a fixed list. It records every question
// asked and is meant for tests.
type Scripted struct {
	// Answers are returned in order.
	Answers []string

	// Asked records each question.
	Asked []string
}

func (s *Scripted) next(question string) (string, bool) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return "", false
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, true
}

// Ask implements Prompter.
func (s *Scripted) Ask(question string) (string, error) {
	answer, _ := s.next(question)
	return answer, nil
}

// AskRequired implements Prompter.
func (s *Scripted) AskRequired(question string) (string, error) {
	answer, ok := s.next(question)
	if !ok || answer == "" {
		return "", &RequiredError{Question: question}
	}
	return answer, nil
}

// Choice implements Prompter.
func (s *Scripted) Choice(question string, options []string, def int) (string, error) {
	answer, ok := s.next(question)
	if !ok || answer == "" {
		return defaultOption(options, def)
	}
	if choice, found := matchOption(options, answer); found {
		return choice, nil
	}
	return "", fmt.Errorf("scripted answer %q is not one of %v", answer, options)
}
