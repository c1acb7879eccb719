package domain

import "errors"

var (
	// ErrDataLoad means the word source was unreachable or malformed
	ErrDataLoad = errors.New("failed to load word data")
	// ErrUnknownGrade means the grade is not in the word bank
	ErrUnknownGrade = errors.New("unknown grade")
	// ErrEmptyPool means the grade has no entries
	ErrEmptyPool = errors.New("grade has no words")
	// ErrSessionFinished means every question has been answered
	ErrSessionFinished = errors.New("quiz session is finished")
	// ErrDuplicateGrade means a grade label appears twice in the source
	ErrDuplicateGrade = errors.New("duplicate grade")
	// ErrDuplicateWord means a word appears twice within one grade
	ErrDuplicateWord = errors.New("duplicate word")
	// ErrEmptyGrade means a grade has an empty label
	ErrEmptyGrade = errors.New("empty grade label")
)
