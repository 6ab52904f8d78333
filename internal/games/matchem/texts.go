package matchem

// Shown when no configuration supplies its own.
var defaultCompletedTexts = []string{
	"The first hand is dealt and the table is yours",
	"Luck favours the patient player",
	"Four of a suit make a quiet fortune",
	"Keep the cards moving and the clock follows",
	"A straight line is the shortest way to the next level",
	"The dealer nods. Play on",
	"Three of a kind, three times the smile",
	"Every empty card is a second chance",
	"The deck grows restless. So do you",
	"Halfway to the high roller table",
	"Cards fall, the timer fills, the night is young",
	"Nobody bluffs the clock",
	"The house has noticed you",
	"Aces high and spirits higher",
	"One more round, then one more",
	"Legends are dealt, not born",
}

// An info screen has room for eighteen lines.
var defaultInfoLines = []string{
	"MATCHEM POKER",
	"",
	"SWAP TWO CARDS",
	"TO MAKE A HAND",
	"",
	"4 OF A SUIT",
	"3 OF A KIND",
	"STRAIGHT OF 4",
	"",
	"HANDS FILL THE",
	"TIMER. FILL IT",
	"TO WIN A LEVEL",
	"",
	"TAP A BLANK CARD",
	"TO REDRAW IT",
	"",
	"",
	"TAP TO RETURN",
}
