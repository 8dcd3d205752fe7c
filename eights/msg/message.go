package msg

import (
	"fmt"

	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card"
	"github.com/sh3210071-glitch/wu-di-mai-dang-dang-s-Crazy-Eight/eights/card/suit"
)

// Message builds the free-form status line shown after every operation.
var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) GameStarted(firstCard card.Card) string {
	return fmt.Sprintf("New game! First card is %s.", firstCard)
}

func (m MessageWriter) SideDrewCard(side string) string {
	return fmt.Sprintf("%s drew a card.", side)
}

func (m MessageWriter) SideCannotDraw(side string) string {
	return fmt.Sprintf("%s cannot draw, both piles are exhausted. Turn passes.", side)
}

func (m MessageWriter) SidePlayedCard(side string, played card.Card) string {
	return fmt.Sprintf("%s played %s.", side, played)
}

func (m MessageWriter) SidePlayedEight(side string, played card.Card) string {
	return fmt.Sprintf("%s played %s, waiting for a suit.", side, played)
}

func (m MessageWriter) SideDeclaredSuit(side string, declared suit.Suit) string {
	return fmt.Sprintf("%s declared %s.", side, declared)
}

func (m MessageWriter) SidePlayedEightAndDeclared(side string, played card.Card, declared suit.Suit) string {
	return fmt.Sprintf("%s played %s and declared %s.", side, played, declared)
}

func (m MessageWriter) SideWon(side string, played card.Card) string {
	return fmt.Sprintf("%s played %s and won the game!", side, played)
}

func (m MessageWriter) PileRecycled(count int) string {
	return fmt.Sprintf("Reshuffled %d discards into the draw pile.", count)
}
