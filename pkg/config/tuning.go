package config

import (
	"fmt"
	"time"

	"github.com/decker502/fishcatch/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TuningPath 嵌入的调参文件路径
const TuningPath = "data/tuning.yaml"

// Tuning 动画与玩法的可调参数
//
// 默认值由 DefaultTuning 给出，data/tuning.yaml 在编译时嵌入，
// 只需要写出要覆盖的字段。
type Tuning struct {
	Countdown CountdownTuning `yaml:"countdown"`
	Fish      FishTuning      `yaml:"fish"`
	Waves     WaveTuning      `yaml:"waves"`
	Plants    PlantTuning     `yaml:"plants"`
	Bubbles   BubbleTuning    `yaml:"bubbles"`
	Crab      CrabTuning      `yaml:"crab"`
	Net       NetTuning       `yaml:"net"`
	Decor     DecorTuning     `yaml:"decor"`
	Audio     AudioTuning     `yaml:"audio"`
}

// CountdownTuning 倒计时 tick 的随机间隔
type CountdownTuning struct {
	TickMinMs int `yaml:"tickMinMs"`
	TickMaxMs int `yaml:"tickMaxMs"`
}

// FishTuning 鱼的出生区域与抖动位移
type FishTuning struct {
	JitterX           []float64 `yaml:"jitterX"`
	JitterY           []float64 `yaml:"jitterY"`
	SpawnMarginX      float64   `yaml:"spawnMarginX"`      // 出生区左右边距
	SpawnTop          float64   `yaml:"spawnTop"`          // 出生区上沿
	SpawnBottomMargin float64   `yaml:"spawnBottomMargin"` // 出生区下边距
}

// WaveTuning 波浪层参数
type WaveTuning struct {
	IntervalMs   int       `yaml:"intervalMs"`
	Colors       []string  `yaml:"colors"` // 每层一个颜色，层数等于颜色数
	Baseline     float64   `yaml:"baseline"`
	LayerSpacing float64   `yaml:"layerSpacing"`
	Amplitude    float64   `yaml:"amplitude"`
	Frequency    float64   `yaml:"frequency"`
	SampleStep   float64   `yaml:"sampleStep"`
	PhaseStep    float64   `yaml:"phaseStep"`
	SpeedBase    float64   `yaml:"speedBase"`
	SpeedStep    float64   `yaml:"speedStep"`
	Widths       []float64 `yaml:"widths"`
}

// PlantTuning 水草参数
type PlantTuning struct {
	IntervalMs   int     `yaml:"intervalMs"`
	StartX       float64 `yaml:"startX"`
	Spacing      float64 `yaml:"spacing"`
	BaseOffset   float64 `yaml:"baseOffset"` // 根部距窗口底部的距离
	Height       float64 `yaml:"height"`
	Amplitude    float64 `yaml:"amplitude"`
	SwayStep     float64 `yaml:"swayStep"`
	SpatialPhase float64 `yaml:"spatialPhase"`
	Color        string  `yaml:"color"`
}

// BubbleTuning 气泡参数
type BubbleTuning struct {
	IntervalMs  int     `yaml:"intervalMs"`
	SpawnChance float64 `yaml:"spawnChance"`
	SpawnMargin float64 `yaml:"spawnMargin"`
	FloorOffset float64 `yaml:"floorOffset"` // 出生点距窗口底部的距离
	MinSize     int     `yaml:"minSize"`
	MaxSize     int     `yaml:"maxSize"`
	MinSpeed    float64 `yaml:"minSpeed"`
	MaxSpeed    float64 `yaml:"maxSpeed"`
}

// CrabTuning 螃蟹参数
type CrabTuning struct {
	IntervalMs int     `yaml:"intervalMs"`
	Speed      float64 `yaml:"speed"`
	StartX     float64 `yaml:"startX"`
	FloorDepth float64 `yaml:"floorDepth"` // 身体上沿距窗口底部的距离
}

// NetTuning 渔网下落参数
type NetTuning struct {
	IntervalMs int     `yaml:"intervalMs"`
	Step       float64 `yaml:"step"`
	Padding    float64 `yaml:"padding"`
	Color      string  `yaml:"color"`
}

// DecorTuning 静态装饰数量
type DecorTuning struct {
	Shells int `yaml:"shells"`
	Rocks  int `yaml:"rocks"`
}

// AudioTuning 音效参数
type AudioTuning struct {
	Volume   float64 `yaml:"volume"`   // 音效音量，0.0 ~ 1.0
	WinSound string  `yaml:"winSound"` // 获胜音乐路径，先查嵌入的 data/，再查本地文件
}

// DefaultTuning 返回默认参数，与 data/tuning.yaml 保持一致
func DefaultTuning() *Tuning {
	return &Tuning{
		Countdown: CountdownTuning{TickMinMs: 100, TickMaxMs: 300},
		Fish: FishTuning{
			JitterX:           []float64{-40, -25, 0, 25, 40},
			JitterY:           []float64{-30, -20, 0, 20, 30},
			SpawnMarginX:      100,
			SpawnTop:          150,
			SpawnBottomMargin: 120,
		},
		Waves: WaveTuning{
			IntervalMs:   50,
			Colors:       []string{"#0099cc", "#0077aa", "#005577"},
			Widths:       []float64{2, 3, 4},
			Baseline:     80,
			LayerSpacing: 25,
			Amplitude:    8,
			Frequency:    0.05,
			SampleStep:   20,
			PhaseStep:    0.2,
			SpeedBase:    0.5,
			SpeedStep:    0.5,
		},
		Plants: PlantTuning{
			IntervalMs:   80,
			StartX:       50,
			Spacing:      60,
			BaseOffset:   20,
			Height:       60,
			Amplitude:    12,
			SwayStep:     0.15,
			SpatialPhase: 0.01,
			Color:        "sea green",
		},
		Bubbles: BubbleTuning{
			IntervalMs:  50,
			SpawnChance: 0.3,
			SpawnMargin: 50,
			FloorOffset: 30,
			MinSize:     5,
			MaxSize:     12,
			MinSpeed:    1,
			MaxSpeed:    3,
		},
		Crab: CrabTuning{IntervalMs: 50, Speed: 2, StartX: 100, FloorDepth: 50},
		Net:  NetTuning{IntervalMs: 100, Step: 5, Padding: 20, Color: "darkgreen"},
		Decor: DecorTuning{Shells: 10, Rocks: 15},
		Audio: AudioTuning{Volume: 1, WinSound: WinSoundPath},
	}
}

// LoadTuning 解析 YAML 调参数据，未出现的字段保留默认值
func LoadTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}
	return t, nil
}

// LoadTuningFile 从嵌入文件系统加载调参文件
func LoadTuningFile(path string) (*Tuning, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config %s: %w", path, err)
	}
	return LoadTuning(data)
}

// Validate 验证参数有效性
//
// 检查：
//   - 所有间隔为正
//   - 随机范围 min <= max
//   - 抖动位移集合非空
//   - 概率在 [0, 1] 内
//   - 出生区域能容纳一条鱼，且整条鱼（含尾巴和背鳍）严格位于游动区域内
//   - 气泡出生范围非空
func (t *Tuning) Validate() error {
	intervals := map[string]int{
		"countdown.tickMinMs": t.Countdown.TickMinMs,
		"waves.intervalMs":    t.Waves.IntervalMs,
		"plants.intervalMs":   t.Plants.IntervalMs,
		"bubbles.intervalMs":  t.Bubbles.IntervalMs,
		"crab.intervalMs":     t.Crab.IntervalMs,
		"net.intervalMs":      t.Net.IntervalMs,
	}
	for name, v := range intervals {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}

	if t.Countdown.TickMinMs > t.Countdown.TickMaxMs {
		return fmt.Errorf("countdown tick range invalid: min(%d) > max(%d)",
			t.Countdown.TickMinMs, t.Countdown.TickMaxMs)
	}

	if len(t.Fish.JitterX) == 0 || len(t.Fish.JitterY) == 0 {
		return fmt.Errorf("fish jitter offsets must not be empty")
	}

	minX, maxX := t.Fish.SpawnMarginX, GameWindowWidth-FishWidth-t.Fish.SpawnMarginX
	if minX > maxX {
		return fmt.Errorf("fish spawn x range invalid: min(%.1f) > max(%.1f)", minX, maxX)
	}
	minY, maxY := t.Fish.SpawnTop, GameWindowHeight-FishHeight-t.Fish.SpawnBottomMargin
	if minY > maxY {
		return fmt.Errorf("fish spawn y range invalid: min(%.1f) > max(%.1f)", minY, maxY)
	}
	pfMinX, pfMinY, pfMaxX, pfMaxY := PlayfieldBounds()
	if minX-FishTailLength <= pfMinX || maxX+FishWidth >= pfMaxX ||
		minY-FishFinHeight <= pfMinY || maxY+FishHeight >= pfMaxY {
		return fmt.Errorf("fish spawn area must lie strictly inside the playfield (%.0f,%.0f)-(%.0f,%.0f)",
			pfMinX, pfMinY, pfMaxX, pfMaxY)
	}

	if len(t.Waves.Colors) == 0 {
		return fmt.Errorf("waves.colors must list at least one layer")
	}
	if t.Waves.SampleStep <= 0 {
		return fmt.Errorf("waves.sampleStep must be positive, got %.1f", t.Waves.SampleStep)
	}

	if t.Plants.Spacing <= 0 {
		return fmt.Errorf("plants.spacing must be positive, got %.1f", t.Plants.Spacing)
	}

	if t.Bubbles.SpawnChance < 0 || t.Bubbles.SpawnChance > 1 {
		return fmt.Errorf("bubbles.spawnChance must be within [0, 1], got %.2f", t.Bubbles.SpawnChance)
	}
	if lo, hi := int(t.Bubbles.SpawnMargin), GameWindowWidth-int(t.Bubbles.SpawnMargin); t.Bubbles.SpawnMargin < 0 || lo > hi {
		return fmt.Errorf("bubbles.spawnMargin must be within [0, %d], got %.1f", GameWindowWidth/2, t.Bubbles.SpawnMargin)
	}
	if t.Bubbles.MinSize <= 0 || t.Bubbles.MinSize > t.Bubbles.MaxSize {
		return fmt.Errorf("bubble size range invalid: min(%d) max(%d)", t.Bubbles.MinSize, t.Bubbles.MaxSize)
	}
	if t.Bubbles.MinSpeed <= 0 || t.Bubbles.MinSpeed > t.Bubbles.MaxSpeed {
		return fmt.Errorf("bubble speed range invalid: min(%.1f) max(%.1f)", t.Bubbles.MinSpeed, t.Bubbles.MaxSpeed)
	}

	if t.Crab.Speed <= 0 {
		return fmt.Errorf("crab.speed must be positive, got %.1f", t.Crab.Speed)
	}
	if t.Net.Step <= 0 {
		return fmt.Errorf("net.step must be positive, got %.1f", t.Net.Step)
	}

	if t.Audio.Volume < 0 || t.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %.2f", t.Audio.Volume)
	}

	return nil
}

// CountdownRange 返回倒计时 tick 的间隔范围
func (t *Tuning) CountdownRange() (time.Duration, time.Duration) {
	return ms(t.Countdown.TickMinMs), ms(t.Countdown.TickMaxMs)
}

// WaveInterval 波浪 tick 间隔
func (t *Tuning) WaveInterval() time.Duration { return ms(t.Waves.IntervalMs) }

// PlantInterval 水草 tick 间隔
func (t *Tuning) PlantInterval() time.Duration { return ms(t.Plants.IntervalMs) }

// BubbleInterval 气泡 tick 间隔
func (t *Tuning) BubbleInterval() time.Duration { return ms(t.Bubbles.IntervalMs) }

// CrabInterval 螃蟹 tick 间隔
func (t *Tuning) CrabInterval() time.Duration { return ms(t.Crab.IntervalMs) }

// NetInterval 渔网 tick 间隔
func (t *Tuning) NetInterval() time.Duration { return ms(t.Net.IntervalMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
