package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/misopet/pkg/embedded"
	"github.com/decker502/misopet/pkg/pet"
)

// DefaultPetConfigPath 内置配置在 embed.FS 中的路径
const DefaultPetConfigPath = "data/pet.yaml"

// AudioCue 动作触发的音频类型
type AudioCue string

const (
	// AudioCueOneShot 先停止循环音，再播放一次性音效
	AudioCueOneShot AudioCue = "oneshot"
	// AudioCueLoop 启动循环音（不播放一次性音效）
	AudioCueLoop AudioCue = "loop"
)

// 动作标识
const (
	ActionTreat    = "treat"
	ActionPlay     = "play"
	ActionExercise = "exercise"
	ActionSleep    = "sleep"
)

// ErrInvalidPetConfig 配置校验失败
var ErrInvalidPetConfig = errors.New("invalid pet config")

// MuteKey 静音开关快捷键，动作不能绑定
const MuteKey = "M"

// PetDefaults 宠物初始状态
type PetDefaults struct {
	Name      string  `yaml:"name" toml:"name"`
	Weight    float64 `yaml:"weight" toml:"weight"`
	Happiness float64 `yaml:"happiness" toml:"happiness"`
	Sleep     float64 `yaml:"sleep" toml:"sleep"`
}

// ActionConfig 单个动作的行为定义
//
// 示例（YAML）：
//
//	- name: treat
//	  deltas: {happiness: 2, weight: 1}
//	  audio: oneshot
//	  message: "Yummy!"
//	  photo: images/Treat.jpg
//	  nudge: 60
//	  key: T
type ActionConfig struct {
	Name    string             `yaml:"name" toml:"name"`
	Deltas  map[string]float64 `yaml:"deltas" toml:"deltas"`
	Audio   AudioCue           `yaml:"audio" toml:"audio"`
	Message string             `yaml:"message" toml:"message"`
	Photo   string             `yaml:"photo" toml:"photo"`
	Nudge   float64            `yaml:"nudge" toml:"nudge"`
	Key     string             `yaml:"key,omitempty" toml:"key,omitempty"` // 键盘快捷键（单个字母）
}

// SoundClip 音频文件及其基础音量
type SoundClip struct {
	Path   string  `yaml:"path" toml:"path"`
	Volume float64 `yaml:"volume" toml:"volume"`
	Loop   bool    `yaml:"loop,omitempty" toml:"loop,omitempty"`
}

// SoundConfig 一次性音效 + 循环音
type SoundConfig struct {
	OneShot SoundClip `yaml:"oneshot" toml:"oneshot"`
	Loop    SoundClip `yaml:"loop" toml:"loop"`
}

// PetConfig 宠物小部件的完整配置
// 内置默认值见 data/pet.yaml，可以用 YAML 或 TOML 文件覆盖
type PetConfig struct {
	Version       string         `yaml:"version" toml:"version"`
	Pet           PetDefaults    `yaml:"pet" toml:"pet"`
	DefaultPhoto  string         `yaml:"defaultPhoto" toml:"defaultPhoto"`
	RevertDelayMS int            `yaml:"revertDelayMs" toml:"revertDelayMs"`
	Actions       []ActionConfig `yaml:"actions" toml:"actions"`
	Collage       []string       `yaml:"collage" toml:"collage"`
	Sounds        SoundConfig    `yaml:"sounds" toml:"sounds"`
}

// DefaultPetConfig 返回与 data/pet.yaml 一致的默认配置
func DefaultPetConfig() *PetConfig {
	return &PetConfig{
		Version: "1.0",
		Pet: PetDefaults{
			Name:      "Miso",
			Weight:    3,
			Happiness: 10,
			Sleep:     5,
		},
		DefaultPhoto:  "images/Miso.jpg",
		RevertDelayMS: 2000,
		Actions: []ActionConfig{
			{
				Name:    ActionTreat,
				Deltas:  map[string]float64{"happiness": 2, "weight": 1},
				Audio:   AudioCueOneShot,
				Message: "Yummy!",
				Photo:   "images/Treat.jpg",
				Nudge:   60,
				Key:     "T",
			},
			{
				Name:    ActionPlay,
				Deltas:  map[string]float64{"happiness": 3, "weight": -1},
				Audio:   AudioCueOneShot,
				Message: "Play! Play! Play!",
				Photo:   "images/Play.jpg",
				Nudge:   120,
				Key:     "P",
			},
			{
				Name:    ActionExercise,
				Deltas:  map[string]float64{"happiness": -2, "weight": -2},
				Audio:   AudioCueOneShot,
				Message: "So tiring...",
				Photo:   "images/Exercise.png",
				Nudge:   -80,
				Key:     "E",
			},
			{
				Name:    ActionSleep,
				Deltas:  map[string]float64{"happiness": 1, "sleep": 2},
				Audio:   AudioCueLoop,
				Message: "Zzz...",
				Photo:   "images/Sleep.jpg",
				Nudge:   -40,
				Key:     "S",
			},
		},
		Collage: []string{
			"images/Blanket.jpg",
			"images/Laptop.jpg",
			"images/Paws.jpg",
			"images/Pose.jpg",
			"images/Sassy.jpg",
			"images/Sit.jpg",
			"images/Stare.jpg",
		},
		Sounds: SoundConfig{
			OneShot: SoundClip{Path: "sounds/meow.mp3", Volume: 0.6},
			Loop:    SoundClip{Path: "sounds/purr.mp3", Volume: 0.35, Loop: true},
		},
	}
}

// LoadEmbeddedPetConfig 读取内置的 data/pet.yaml
func LoadEmbeddedPetConfig() (*PetConfig, error) {
	data, err := embedded.ReadFile(DefaultPetConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded pet config: %w", err)
	}
	return ParsePetConfig(data, ".yaml")
}

// LoadPetConfig 从磁盘读取配置文件，按扩展名选择 YAML 或 TOML
func LoadPetConfig(path string) (*PetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pet config %s: %w", path, err)
	}
	cfg, err := ParsePetConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParsePetConfig 解析配置数据并校验
//
// 参数：
//   - data: 文件内容
//   - ext: 扩展名（".yaml"、".yml" 或 ".toml"）
//
// 文件中缺省的字段使用默认值。
func ParsePetConfig(data []byte, ext string) (*PetConfig, error) {
	cfg := DefaultPetConfig()
	// 动作和拼贴列表整体替换，不与默认值合并
	cfg.Actions = nil
	cfg.Collage = nil

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML pet config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML pet config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported pet config format: %q (supported: .yaml, .yml, .toml)", ext)
	}

	if len(cfg.Actions) == 0 {
		cfg.Actions = DefaultPetConfig().Actions
	}
	if cfg.Collage == nil {
		cfg.Collage = DefaultPetConfig().Collage
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
// 动作数不超过按钮区域容量，动作名必须唯一，增量只能作用于已知属性，音量在 0.0 ~ 1.0 之间
func (c *PetConfig) Validate() error {
	if c.Pet.Name == "" {
		return fmt.Errorf("%w: pet name is empty", ErrInvalidPetConfig)
	}
	if c.RevertDelayMS <= 0 {
		return fmt.Errorf("%w: revertDelayMs must be positive, got %d", ErrInvalidPetConfig, c.RevertDelayMS)
	}
	if c.DefaultPhoto == "" {
		return fmt.Errorf("%w: defaultPhoto is empty", ErrInvalidPetConfig)
	}

	if n := len(c.Actions); n > 0 && !ButtonFits(n-1) {
		return fmt.Errorf("%w: %d actions configured, at most %d buttons fit", ErrInvalidPetConfig, n, MaxActionButtons)
	}

	seen := make(map[string]bool, len(c.Actions))
	keys := make(map[string]string, len(c.Actions))
	for i, a := range c.Actions {
		if a.Name == "" {
			return fmt.Errorf("%w: action #%d has no name", ErrInvalidPetConfig, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate action %q", ErrInvalidPetConfig, a.Name)
		}
		seen[a.Name] = true

		for attr := range a.Deltas {
			if _, err := pet.ParseAttribute(attr); err != nil {
				return fmt.Errorf("%w: action %q: %v", ErrInvalidPetConfig, a.Name, err)
			}
		}
		switch a.Audio {
		case AudioCueOneShot, AudioCueLoop:
		default:
			return fmt.Errorf("%w: action %q: unknown audio cue %q", ErrInvalidPetConfig, a.Name, a.Audio)
		}
		if a.Photo == "" {
			return fmt.Errorf("%w: action %q has no photo", ErrInvalidPetConfig, a.Name)
		}
		if a.Key != "" {
			k := strings.ToUpper(a.Key)
			if len(k) != 1 || k[0] < 'A' || k[0] > 'Z' {
				return fmt.Errorf("%w: action %q: key must be a single letter, got %q", ErrInvalidPetConfig, a.Name, a.Key)
			}
			if k == MuteKey {
				return fmt.Errorf("%w: action %q: key %q is reserved for mute", ErrInvalidPetConfig, a.Name, k)
			}
			if other, dup := keys[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %q and %q", ErrInvalidPetConfig, k, other, a.Name)
			}
			keys[k] = a.Name
		}
	}

	for _, clip := range []SoundClip{c.Sounds.OneShot, c.Sounds.Loop} {
		if clip.Volume < 0 || clip.Volume > 1 {
			return fmt.Errorf("%w: sound %s volume %.2f out of range", ErrInvalidPetConfig, clip.Path, clip.Volume)
		}
	}
	return nil
}

// Action 按名字查找动作配置
func (c *PetConfig) Action(name string) (ActionConfig, bool) {
	for _, a := range c.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return ActionConfig{}, false
}
