package entity

import "fmt"

// FailureReason — код причины, по которой ввод не удалось разрешить.
type FailureReason string

const (
	FailureEmptyInput FailureReason = "EMPTY_INPUT"
	FailureOutOfRange FailureReason = "OUT_OF_RANGE"
	FailureNotFound   FailureReason = "NOT_FOUND"
)

// ResolutionError — типизированный отказ разрешения персонажа.
// BestScore заполняется только для NOT_FOUND и нужен для диагностики;
// пользователю баллы не показываются.
type ResolutionError struct {
	Reason    FailureReason
	BestScore int
}

func (e *ResolutionError) Error() string {
	if e.Reason == FailureNotFound {
		return fmt.Sprintf("hero not resolved: %s (best score %d)", e.Reason, e.BestScore)
	}
	return fmt.Sprintf("hero not resolved: %s", e.Reason)
}
