package level

// Card index sentinels. Real cards are suit*13 + rank.
const (
	NoCard    = -1  // slot is waiting for a refill
	EmptyCard = 100 // blank card, tapping it draws a new one
	JokerCard = 101
)

// Number of ranks a newly drawn card can take, counted from the top (8..A).
const drawRanks = 7

const rankLabels = "23456789TJQKA"

var suitLabels = [4]string{"♠", "♥", "♦", "♣"}

// IsCard reports whether idx is a real suited card.
func IsCard(idx int) bool {
	return idx >= 0 && idx < 52
}

// Suit returns 0..3 for a card index.
func Suit(idx int) int { return idx / 13 }

// Rank returns 0..12 for a card index, 0 being a deuce and 12 an ace.
func Rank(idx int) int { return idx % 13 }

// RedSuit reports whether the suit is hearts or diamonds.
func RedSuit(suit int) bool { return suit == 1 || suit == 2 }

// SuitLabel returns the suit symbol.
func SuitLabel(suit int) string {
	if suit < 0 || suit > 3 {
		return "?"
	}
	return suitLabels[suit]
}

// RankLabel returns a one character rank name.
func RankLabel(rank int) string {
	if rank < 0 || rank > 12 {
		return "?"
	}
	return rankLabels[rank : rank+1]
}

// Label returns a short human readable name such as "T♥".
func Label(idx int) string {
	switch {
	case idx == NoCard:
		return "  "
	case idx == EmptyCard:
		return "[]"
	case idx == JokerCard:
		return "**"
	case IsCard(idx):
		return RankLabel(Rank(idx)) + SuitLabel(Suit(idx))
	}
	return "??"
}
