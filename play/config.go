package play

import (
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
	"github.com/marisvali/mason/mason"
)

// Config is what data/config.yaml holds. The fields that change the
// simulation are grouped into a Level by Config.Level, everything else is
// about how the game runs.
type Config struct {
	Width         int64  `yaml:"Width"`
	Height        int64  `yaml:"Height"`
	TickFrames    int64  `yaml:"TickFrames"`
	QueueSize     int64  `yaml:"QueueSize"`
	ClearMode     string `yaml:"ClearMode"`
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	CellPixelSize int64  `yaml:"CellPixelSize"`
}

// Level holds the parameters of a simulation. It is stored as is inside
// playthroughs so it only has fixed-size fields.
type Level struct {
	Width      int64
	Height     int64
	TickFrames int64
	QueueSize  int64
	ClearMode  int64
}

// DefaultConfig is a classic 10x20 game that drops the brick every quarter of
// a second at 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        20,
		TickFrames:    15,
		QueueSize:     1,
		ClearMode:     "shift",
		StartState:    "Play",
		CellPixelSize: 32,
	}
}

func DefaultLevel() Level {
	l, err := DefaultConfig().Level()
	Check(err)
	return l
}

func ParseClearMode(s string) (mason.ClearMode, error) {
	switch s {
	case "", "shift":
		return mason.ClearShift, nil
	case "cascade":
		return mason.ClearCascade, nil
	default:
		return mason.ClearShift, fmt.Errorf("invalid clear mode: %q", s)
	}
}

func (c *Config) Level() (l Level, err error) {
	mode, err := ParseClearMode(c.ClearMode)
	if err != nil {
		return
	}
	l = Level{
		Width:      c.Width,
		Height:     c.Height,
		TickFrames: c.TickFrames,
		QueueSize:  c.QueueSize,
		ClearMode:  int64(mode),
	}
	err = l.Validate()
	return
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid wall size: %dx%d", l.Width, l.Height)
	}
	if l.TickFrames <= 0 {
		return fmt.Errorf("TickFrames must be positive, got %d", l.TickFrames)
	}
	if l.QueueSize <= 0 {
		return fmt.Errorf("QueueSize must be positive, got %d", l.QueueSize)
	}
	if l.ClearMode != int64(mason.ClearShift) &&
		l.ClearMode != int64(mason.ClearCascade) {
		return fmt.Errorf("invalid clear mode: %d", l.ClearMode)
	}
	return nil
}

// LoadYAML decodes a YAML file from fsys into v. Fields missing from the file
// keep the values v already has.
func LoadYAML(fsys fs.FS, filename string, v any) error {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	if err = yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filename, err)
	}
	return nil
}

// LoadConfig reads a Config, starting from DefaultConfig.
func LoadConfig(fsys fs.FS, filename string) (Config, error) {
	c := DefaultConfig()
	if err := LoadYAML(fsys, filename, &c); err != nil {
		return c, err
	}
	if _, err := c.Level(); err != nil {
		return c, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}
