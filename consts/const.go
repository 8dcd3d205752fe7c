package consts

const (
	// HandSize is the number of cards dealt to each side at the start of a game.
	HandSize = 8

	// DeckSize is the number of cards in a standard deck.
	DeckSize = 52
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsInvalidTurn       = NewErr(1, "Not your turn. ")
	ErrorsIllegalMove       = NewErr(2, "Card is not legal or not in hand. ")
	ErrorsGameNotInProgress = NewErr(3, "Game is not in progress. ")
	ErrorsInvalidState      = NewErr(4, "Operation invalid in current state. ")
	ErrorsInsufficientCards = NewErr(5, "Not enough cards to deal. ")
)
