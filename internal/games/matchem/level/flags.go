package level

// Flags is the per-cell bitset.
type Flags uint8

const (
	FlagSelected      Flags = 1 << iota // picked by the player
	FlagCalcTemp                        // scratch bit, also "settled" during deal and vanish
	FlagMarked                          // scheduled for destruction
	FlagHidden                          // not drawn at all
	FlagPlusStraight                    // member of an ascending run
	FlagMinusStraight                   // member of a descending run
	FlagSameSuit                        // member of a suit run
	FlagSameRank                        // member of a rank group
)

// Composite masks.
const (
	CheckDestroyMask = FlagCalcTemp | FlagPlusStraight | FlagMinusStraight | FlagSameSuit | FlagSameRank
	All              = CheckDestroyMask | FlagSelected | FlagMarked | FlagHidden
	AllButSelected   = All ^ FlagSelected
)

// Has reports whether any bit of mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask != 0
}
