// Package asset loads sprite images and tracks their loading state.
//
// Sprites are small YAML documents describing glyph rows and the pixel size
// of the artwork they stand for. The shipped sprites are embedded; a
// directory on disk may replace them.
package asset

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sprite names used by the game.
const (
	Ship  = "ship"
	Alien = "alien"
)

//go:embed sprites/*.yaml
var embedded embed.FS

// ErrInvalidSprite is returned for sprite files that decode but cannot be drawn.
var ErrInvalidSprite = errors.New("invalid sprite")

// spriteFile is the on-disk sprite format.
type spriteFile struct {
	Name      string   `yaml:"name"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	Color     string   `yaml:"color"`
	Rows      []string `yaml:"rows"`
	TiltLeft  []string `yaml:"tilt_left"`
	TiltRight []string `yaml:"tilt_right"`
}

// Loader decodes sprites from a file system.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader reading sprites from fsys.
// A nil fsys uses the embedded sprites; a nil logger discards output.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if fsys == nil {
		sub, err := fs.Sub(embedded, "sprites")
		if err != nil {
			panic(err) // embedded layout is fixed at compile time
		}
		fsys = sub
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fsys: fsys, logger: logger}
}

// NewDirLoader creates a loader for sprites stored in dir.
// An empty dir uses the embedded sprites.
func NewDirLoader(dir string, logger *log.Logger) *Loader {
	if dir == "" {
		return NewLoader(nil, logger)
	}
	return NewLoader(os.DirFS(dir), logger)
}

// Load decodes the named sprite synchronously.
func (l *Loader) Load(name string) (*core.Image, error) {
	file := name + ".yaml"
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("asset: cannot read %s: %w", file, err)
	}

	var sf spriteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("asset: cannot parse %s: %w", file, err)
	}
	if sf.Name == "" {
		sf.Name = name
	}
	return sf.image()
}

func (sf spriteFile) image() (*core.Image, error) {
	if sf.Width <= 0 || sf.Height <= 0 {
		return nil, fmt.Errorf("asset: %s: %w: size %vx%v", sf.Name, ErrInvalidSprite, sf.Width, sf.Height)
	}
	if len(sf.Rows) == 0 || strings.TrimSpace(strings.Join(sf.Rows, "")) == "" {
		return nil, fmt.Errorf("asset: %s: %w: no glyphs", sf.Name, ErrInvalidSprite)
	}

	color := core.ColorWhite
	if sf.Color != "" {
		c, ok := core.ParseColor(sf.Color)
		if !ok {
			return nil, fmt.Errorf("asset: %s: %w: unknown color %q", sf.Name, ErrInvalidSprite, sf.Color)
		}
		color = c
	}

	return &core.Image{
		Name:      sf.Name,
		Width:     sf.Width,
		Height:    sf.Height,
		Color:     color,
		Rows:      sf.Rows,
		TiltLeft:  sf.TiltLeft,
		TiltRight: sf.TiltRight,
	}, nil
}

// LoadAsync starts decoding the named sprite in the background.
// The returned handle reports Loading until the decode finishes.
func (l *Loader) LoadAsync(name string) *Handle {
	h := newHandle(name)
	go func() {
		img, err := l.Load(name)
		if err != nil {
			l.logger.Error("asset load failed", "asset", name, "err", err)
		} else {
			l.logger.Info("asset loaded", "asset", name, "width", img.Width, "height", img.Height)
		}
		h.finish(img, err)
	}()
	return h
}
