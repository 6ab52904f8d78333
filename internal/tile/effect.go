package tile

// Effect identifies a sound or feedback cue.
type Effect int

const (
	EffectClick Effect = iota + 1
	EffectChanging
	EffectChangeCompleted
	EffectLevelCompleted
	EffectNewLevel
	EffectGameOver
	EffectIllegalMove
	EffectDestroying
	EffectDestroyingBonus
	EffectMenu
	EffectBuyMore
	EffectExit
	EffectBlockBeginFinished
	EffectBlockVanishStarted
	EffectXBonus
	EffectScoreChanged
)

var effectNames = map[Effect]string{
	EffectClick:              "click",
	EffectChanging:           "changing",
	EffectChangeCompleted:    "change_completed",
	EffectLevelCompleted:     "level_completed",
	EffectNewLevel:           "new_level",
	EffectGameOver:           "game_over",
	EffectIllegalMove:        "illegal_move",
	EffectDestroying:         "destroying",
	EffectDestroyingBonus:    "destroying_bonus",
	EffectMenu:               "menu",
	EffectBuyMore:            "buy_more",
	EffectExit:               "exit",
	EffectBlockBeginFinished: "block_begin_finished",
	EffectBlockVanishStarted: "block_vanish_started",
	EffectXBonus:             "x_bonus",
	EffectScoreChanged:       "score_changed",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "unknown"
}
