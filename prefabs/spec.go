package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tactical/ecs/component"
)

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// ClipSpec describes one animation strip on the sprite sheet.
type ClipSpec struct {
	Name     string  `yaml:"name"`
	Row      int     `yaml:"row"`
	ColStart int     `yaml:"col_start"`
	Frames   int     `yaml:"frames"`
	FrameW   int     `yaml:"frame_w"`
	FrameH   int     `yaml:"frame_h"`
	FPS      float64 `yaml:"fps"`
	Loop     bool    `yaml:"loop"`
}

type SpriteSpec struct {
	Sheet string     `yaml:"sheet"`
	Start string     `yaml:"start"` // clip to play on spawn
	Clips []ClipSpec `yaml:"clips"`
}

type PlayerSpec struct {
	Name        string        `yaml:"name"`
	WalkSpeed   float64       `yaml:"walk_speed"`
	Behavior    string        `yaml:"behavior"` // optional tengo script path
	Transform   TransformSpec `yaml:"transform"`
	RenderLayer int           `yaml:"render_layer"`
	Sprite      SpriteSpec    `yaml:"sprite"`
}

// requiredClips are the clips the animation states play. A table missing
// one would leave a state with nothing to advance, so it never finishes.
var requiredClips = []string{
	component.ClipAim,
	component.ClipWalk,
	component.ClipCrouch,
	component.ClipFire,
	component.ClipWalkFire,
	component.ClipCrouchFire,
	component.ClipReload,
}

// Validate rejects specs a builder could not act on.
func (s *PlayerSpec) Validate() error {
	if s.WalkSpeed <= 0 {
		return fmt.Errorf("prefabs: player walk_speed must be positive, got %v", s.WalkSpeed)
	}
	if s.Sprite.Sheet == "" {
		return fmt.Errorf("prefabs: player sprite sheet is required")
	}
	if len(s.Sprite.Clips) == 0 {
		return fmt.Errorf("prefabs: player needs at least one clip")
	}
	have := make(map[string]bool, len(s.Sprite.Clips))
	for _, c := range s.Sprite.Clips {
		if c.Name == "" || c.Frames <= 0 || c.FrameW <= 0 || c.FrameH <= 0 {
			return fmt.Errorf("prefabs: bad clip %+v", c)
		}
		have[c.Name] = true
	}
	for _, name := range requiredClips {
		if !have[name] {
			return fmt.Errorf("prefabs: player is missing clip %s", name)
		}
	}
	return nil
}

// LoadSpec reads a yaml prefab into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
