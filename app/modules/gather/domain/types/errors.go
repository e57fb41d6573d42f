package gathertypes

import "errors"

// Domain errors surfaced to the command boundary.
var (
	// ErrTimeNotSelected indicates the hour text contained no hours.
	ErrTimeNotSelected = errors.New("time not selected")

	// ErrTooManyHours indicates more than 25 distinct hours.
	ErrTooManyHours = errors.New("too many hours")

	// ErrNotGathering indicates there is nothing to render or reset.
	ErrNotGathering = errors.New("not gathering")
)

var localized = map[error][2]string{
	ErrTimeNotSelected: {"時間が選択されていません。", "Time is not selected."},
	ErrTooManyHours:    {"指定できる時間は25個までです。", "The maximum number of times that can be set is 25."},
	ErrNotGathering:    {"募集している時間はありません。", "There is no recruiting."},
}

// Localize renders a domain error as a user-facing message.
func Localize(err error, ja bool) string {
	for sentinel, text := range localized {
		if errors.Is(err, sentinel) {
			if ja {
				return text[0]
			}
			return text[1]
		}
	}
	return err.Error()
}

// IsUserError reports whether err belongs to the user-facing taxonomy.
func IsUserError(err error) bool {
	for sentinel := range localized {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
