package apperror

import "errors"

var (
	ErrMalformedPersonRecord = errors.New("malformed person record")
	ErrEmptyEvidenceSet      = errors.New("no scenario is consistent with the evidence")
	ErrInvalidProbabilities  = errors.New("invalid probability table")
	ErrPedigreeTooLarge      = errors.New("pedigree is too large to enumerate")

	ErrInvalidMove  = errors.New("invalid move")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
)
