package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ClipDef describes one named animation strip on the sheet. Frames run
// left to right starting at ColStart on the given row.
type ClipDef struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Sprite is the sprite/animation handle for one entity: a sheet, a clip
// table, and playback position. Advance moves the internal clock by
// exactly one tick; the animation system calls it once per tick
// regardless of state.
type Sprite struct {
	Sheet      *ebiten.Image
	Defs       map[string]ClipDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
	FlipX      float64 // +1 or -1 horizontal scale
}

// Play starts the named clip from its first frame.
func (s *Sprite) Play(name string) {
	s.Current = name
	s.Frame = 0
	s.FrameTimer = 0
	s.Playing = true
}

// IsPlaying reports whether the named clip is the current one. A
// one-shot clip that has run out still answers true until another clip
// is played; finish detection uses WillFinish, not this.
func (s *Sprite) IsPlaying(name string) bool {
	return s.Current == name
}

// FrameIndex returns the local frame index within the current clip.
func (s *Sprite) FrameIndex() int {
	return s.Frame
}

func (s *Sprite) ticksPerFrame(def ClipDef) int {
	if def.FPS <= 0 {
		return 1
	}
	t := int(60.0 / def.FPS)
	if t < 1 {
		t = 1
	}
	return t
}

// WillFinish reports whether the Advance call later this same tick
// completes a non-looping clip.
func (s *Sprite) WillFinish() bool {
	def, ok := s.Defs[s.Current]
	if !ok || def.Loop || !s.Playing || def.FrameCount <= 0 {
		return false
	}
	return s.Frame >= def.FrameCount-1 && s.FrameTimer+1 >= s.ticksPerFrame(def)
}

// Finished reports whether a non-looping clip has already run out on an
// earlier tick. Together with WillFinish this makes finish detection
// safe for clips short enough to complete before their first check.
func (s *Sprite) Finished() bool {
	def, ok := s.Defs[s.Current]
	if !ok || def.Loop {
		return false
	}
	return !s.Playing
}

// Advance moves the animation clock by one tick. Looping clips wrap;
// one-shot clips hold their last frame and stop.
func (s *Sprite) Advance() {
	def, ok := s.Defs[s.Current]
	if !ok || !s.Playing || def.FrameCount <= 0 {
		return
	}
	s.FrameTimer++
	if s.FrameTimer < s.ticksPerFrame(def) {
		return
	}
	s.FrameTimer = 0
	s.Frame++
	if s.Frame < def.FrameCount {
		return
	}
	if def.Loop {
		s.Frame = 0
	} else {
		s.Frame = def.FrameCount - 1
		s.Playing = false
	}
}

// FrameRect returns the source rectangle of the current frame on the
// sheet.
func (s *Sprite) FrameRect() (image.Rectangle, bool) {
	def, ok := s.Defs[s.Current]
	if !ok {
		return image.Rectangle{}, false
	}
	x := (def.ColStart + s.Frame) * def.FrameW
	y := def.Row * def.FrameH
	return image.Rect(x, y, x+def.FrameW, y+def.FrameH), true
}

var SpriteComponent = NewComponent[Sprite]()
