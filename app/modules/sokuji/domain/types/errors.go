package sokujitypes

import "errors"

// Domain errors surfaced to the command boundary. Each has a Japanese
// and a default (English) user-facing form; the passive chat listener
// swallows exactly this set.
var (
	// ErrInvalidRankInput indicates the shorthand text failed to parse or
	// produced an invalid or incomplete rank pair.
	ErrInvalidRankInput = errors.New("invalid rank input")

	// ErrNotAddable indicates the match already has 12 races.
	ErrNotAddable = errors.New("sokuji already finished")

	// ErrNotBackable indicates there is no race to remove.
	ErrNotBackable = errors.New("cannot go back anymore")

	// ErrOutOfRange indicates an explicit race slot outside the valid bounds.
	ErrOutOfRange = errors.New("invalid race number")

	// ErrMogiNotFound indicates no live match exists for the channel.
	ErrMogiNotFound = errors.New("mogi not found")

	// ErrMogiArchived indicates the match exists but has been archived.
	ErrMogiArchived = errors.New("mogi archived")

	// ErrInvalidMessage indicates a message nominated for result
	// registration does not match the summary shape.
	ErrInvalidMessage = errors.New("invalid message")
)

var localized = map[error][2]string{
	ErrInvalidRankInput: {"順位の入力が不正です。", "Invalid rank input."},
	ErrNotAddable:       {"既に12レース終了しています。", "This sokuji has already finished."},
	ErrNotBackable:      {"レースを戻すことができません。", "You cannot go back anymore."},
	ErrOutOfRange:       {"存在しないレース番号です。", "Invalid race number."},
	ErrMogiNotFound:     {"実施している即時が見つかりません。", "Mogi not found."},
	ErrMogiArchived:     {"この即時は既に終了しています。", "This sokuji has already finished."},
	ErrInvalidMessage:   {"メッセージが不正です。", "Invalid message."},
}

// Localize renders a domain error as a user-facing message. Unknown
// errors fall back to their Error string.
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

// IsUserError reports whether err belongs to the user-facing taxonomy
// that the passive listener degrades on silently.
func IsUserError(err error) bool {
	_, ok := localized[err]
	if ok {
		return true
	}
	for sentinel := range localized {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
