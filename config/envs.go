package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kalra1569/MazeSwiper/maze"
)

// User interfaces the mazeswiper command can drive.
const (
	UIEbiten   = "ebiten"
	UITerminal = "terminal"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the game's tunables. Durations are in wall-clock time; one time unit of the
// round countdown is TickInterval.
type Config struct {
	Rows int // Maze rows, odd and at least 5
	Cols int // Maze columns, odd and at least 5

	RoundDuration time.Duration // Countdown length of a round
	RevealDelay   time.Duration // Delay before the goal appears
	TickInterval  time.Duration // Countdown resolution

	WellnessEvery int // Wins between wellness interruptions, 0 disables them

	MaxSlideDuration  time.Duration // Upper bound of a slide animation
	SlideBaseDuration time.Duration // Slide animation for a one cell move before capping
	FrameInterval     time.Duration // Animation step

	CellSize float64 // Cell edge in pixels

	HardMode       bool          // Goal wanders once visible
	WanderInterval time.Duration // Goal wander step

	Strict   bool   // Panic on maze verification failures instead of regenerating
	Seed     int64  // Random seed, 0 picks one from the clock
	LogLevel string // logrus level name
	UI       string // UIEbiten or UITerminal
}

// Default returns the stock tunables: a 21x21 maze and 45 second rounds.
func Default() Config {
	return Config{
		Rows:              21,
		Cols:              21,
		RoundDuration:     45 * time.Second,
		RevealDelay:       10 * time.Second,
		TickInterval:      time.Second,
		WellnessEvery:     3,
		MaxSlideDuration:  1500 * time.Millisecond,
		SlideBaseDuration: 3 * time.Second,
		FrameInterval:     time.Second / 60,
		CellSize:          32,
		HardMode:          false,
		WanderInterval:    time.Second,
		Strict:            false,
		Seed:              0,
		LogLevel:          "info",
		UI:                UIEbiten,
	}
}

// Load reads an optional .env file, applies environment overrides to Default and validates
// the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies overrides found through lookup to Default and validates the result.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	e := envReader{lookup: lookup}

	e.readInt("MAZE_ROWS", &c.Rows)
	e.readInt("MAZE_COLS", &c.Cols)
	e.readDuration("ROUND_DURATION", &c.RoundDuration)
	e.readDuration("GOAL_REVEAL_DELAY", &c.RevealDelay)
	e.readDuration("TICK_INTERVAL", &c.TickInterval)
	e.readInt("WELLNESS_EVERY", &c.WellnessEvery)
	e.readDuration("MAX_SLIDE_DURATION", &c.MaxSlideDuration)
	e.readDuration("SLIDE_BASE_DURATION", &c.SlideBaseDuration)
	e.readDuration("FRAME_INTERVAL", &c.FrameInterval)
	e.readFloat("CELL_SIZE", &c.CellSize)
	e.readBool("HARD_MODE", &c.HardMode)
	e.readDuration("GOAL_WANDER_INTERVAL", &c.WanderInterval)
	e.readBool("MAZE_STRICT", &c.Strict)
	e.readInt64("MAZE_SEED", &c.Seed)
	e.readString("LOG_LEVEL", &c.LogLevel)
	e.readString("MAZE_UI", &c.UI)

	if e.err != nil {
		return Config{}, e.err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if err := maze.ValidDimensions(c.Rows, c.Cols); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	positive := []struct {
		name  string
		value time.Duration
	}{
		{"ROUND_DURATION", c.RoundDuration},
		{"GOAL_REVEAL_DELAY", c.RevealDelay},
		{"TICK_INTERVAL", c.TickInterval},
		{"MAX_SLIDE_DURATION", c.MaxSlideDuration},
		{"SLIDE_BASE_DURATION", c.SlideBaseDuration},
		{"FRAME_INTERVAL", c.FrameInterval},
		{"GOAL_WANDER_INTERVAL", c.WanderInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}
	if c.TickInterval > c.RoundDuration {
		return fmt.Errorf("%w: TICK_INTERVAL %v exceeds ROUND_DURATION %v", ErrInvalid, c.TickInterval, c.RoundDuration)
	}
	if c.WellnessEvery < 0 {
		return fmt.Errorf("%w: WELLNESS_EVERY must not be negative, got %d", ErrInvalid, c.WellnessEvery)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: CELL_SIZE must be positive, got %v", ErrInvalid, c.CellSize)
	}
	if c.UI != UIEbiten && c.UI != UITerminal {
		return fmt.Errorf("%w: MAZE_UI must be %q or %q, got %q", ErrInvalid, UIEbiten, UITerminal, c.UI)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalid, err)
	}
	return nil
}

// CountdownUnits is the number of ticks in one round.
func (c Config) CountdownUnits() int {
	return int(c.RoundDuration / c.TickInterval)
}

// envReader keeps the first parse error so FromEnv can read every key in sequence.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) get(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	return e.lookup(key)
}

func (e *envReader) fail(key, value string, err error) {
	e.err = fmt.Errorf("%w: environment variable %s=%q: %v", ErrInvalid, key, value, err)
}

func (e *envReader) readString(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) readInt(key string, dst *int) {
	if v, ok := e.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) readInt64(key string, dst *int64) {
	if v, ok := e.get(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) readFloat(key string, dst *float64) {
	if v, ok := e.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) readBool(key string, dst *bool) {
	if v, ok := e.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) readDuration(key string, dst *time.Duration) {
	if v, ok := e.get(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = d
	}
}
