package matchem

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decode errors.
var (
	ErrShortRecord   = errors.New("matchem: save record is truncated")
	ErrInvalidRecord = errors.New("matchem: save record is invalid")
)

// record is the fixed part of a saved game, in file order.
type record struct {
	Difficulty            int32
	BlockTimerEffect      float32
	TimeTimerEffect       float32
	Level                 int32
	TargetTimer           float32
	Timer                 float32
	Score                 int32
	DisplayScore          int32
	HighScore             int32
	GameIsOn              int32
	WaitBeforeTimerStarts int32
}

// Encode writes the session as a little-endian record followed, while a
// game is on, by one int32 card index per grid cell.
func (s *Session) Encode(w io.Writer) error {
	rec := record{
		Difficulty:            int32(s.difficulty),
		BlockTimerEffect:      float32(s.blockTimerEffect),
		TimeTimerEffect:       float32(s.timeTimerEffect),
		Level:                 int32(s.levelIndex),
		TargetTimer:           float32(s.targetTimer),
		Timer:                 float32(s.timer),
		Score:                 int32(s.score),
		DisplayScore:          int32(s.displayScore),
		HighScore:             int32(s.highScore),
		GameIsOn:              int32(s.gameIsOn),
		WaitBeforeTimerStarts: int32(s.waitBeforeTimerStarts),
	}
	if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("matchem: write record: %w", err)
	}
	if rec.GameIsOn != 1 {
		return nil
	}
	if err := binary.Write(w, binary.LittleEndian, s.grid.Indices()); err != nil {
		return fmt.Errorf("matchem: write grid: %w", err)
	}
	return nil
}

// Decode restores a session written by Encode. The whole record is read
// and checked before anything is applied, so on error the session is left
// exactly as it was.
func (s *Session) Decode(r io.Reader) error {
	var rec record
	if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
		return shortRead("record", err)
	}
	if rec.Level < 0 || rec.Difficulty < 0 || rec.GameIsOn < 0 || rec.GameIsOn > 1 {
		return fmt.Errorf("%w: level %d, difficulty %d, game on %d",
			ErrInvalidRecord, rec.Level, rec.Difficulty, rec.GameIsOn)
	}

	if rec.GameIsOn == 1 {
		w, h := s.grid.Size()
		indices := make([]int32, w*h)
		if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
			return shortRead("grid", err)
		}
		if err := s.grid.RestoreIndices(int(rec.Level), indices); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		s.grid.SetDifficulty(int(rec.Difficulty))
	}

	s.difficulty = int(rec.Difficulty)
	s.blockTimerEffect = float64(rec.BlockTimerEffect)
	s.timeTimerEffect = float64(rec.TimeTimerEffect)
	s.levelIndex = int(rec.Level)
	s.targetTimer = float64(rec.TargetTimer)
	s.timer = float64(rec.Timer)
	s.score = int(rec.Score)
	s.displayScore = int(rec.DisplayScore)
	s.highScore = int(rec.HighScore)
	s.gameIsOn = int(rec.GameIsOn)
	s.waitBeforeTimerStarts = int(rec.WaitBeforeTimerStarts)

	if s.gameIsOn == 1 {
		s.changeBg(-1)
	}
	return nil
}

func shortRead(part string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrShortRecord, part)
	}
	return fmt.Errorf("matchem: read %s: %w", part, err)
}

// Load implements Hooks. It restores the saved game from the store and
// reports whether a game is in progress. A missing or damaged save leaves
// the session fresh.
func (s *Session) Load() bool {
	if s.store == nil {
		return false
	}
	data, err := s.store.LoadSession(s.slot)
	if err != nil {
		s.logger.Warn("load saved game", "slot", s.slot, "err", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := s.Decode(bytes.NewReader(data)); err != nil {
		s.logger.Warn("discard saved game", "slot", s.slot, "err", err)
		return false
	}
	s.logger.Debug("saved game restored", "slot", s.slot, "level", s.levelIndex+1, "playing", s.gameIsOn == 1)
	return s.gameIsOn == 1
}

// SaveState writes the session to the store and reports success.
func (s *Session) SaveState() bool {
	if s.store == nil {
		return false
	}
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		s.logger.Warn("encode saved game", "err", err)
		return false
	}
	if err := s.store.SaveSession(s.slot, buf.Bytes()); err != nil {
		s.logger.Warn("save game", "slot", s.slot, "err", err)
		return false
	}
	return true
}
