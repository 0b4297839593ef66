package game

import (
	"log"

	"github.com/decker502/misopet/pkg/config"
)

// soundPlayer 音频播放器的最小能力集合
// *audio.Player 满足该接口；测试中使用假实现
type soundPlayer interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// playerFactory 按路径创建播放器
type playerFactory func(path string) (soundPlayer, error)

// AudioManager 音频管理器
// 职责：
//   - 一次性音效：每次播放都创建独立的播放器，快速连点时声音可以重叠
//   - 循环音：同一时间最多一个实例，启动前先停止并倒带
//   - 与设置联动：最终音量 = clip 音量 × 设置中的倍率
//
// 所有播放失败都只记录日志，不向调用方返回错误。
// AudioManager 实现 widget.AudioPlayer。
type AudioManager struct {
	settingsManager *SettingsManager // 设置管理器，可为 nil
	sounds          config.SoundConfig

	newOneShot playerFactory
	newLoop    playerFactory

	oneShots []soundPlayer // 仍在播放的一次性音效
	loop     soundPlayer   // 循环音播放器（延迟创建，重复使用）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于解码音频文件）
//   - sm: SettingsManager 实例（可为 nil）
//   - sounds: 一次性音效和循环音的配置
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, sounds config.SoundConfig) *AudioManager {
	am := &AudioManager{
		settingsManager: sm,
		sounds:          sounds,
	}
	am.newOneShot = func(path string) (soundPlayer, error) {
		return rm.NewSoundPlayer(path)
	}
	am.newLoop = func(path string) (soundPlayer, error) {
		if !sounds.Loop.Loop {
			return rm.NewSoundPlayer(path)
		}
		return rm.NewLoopPlayer(path)
	}
	return am
}

// PlayOneShot 播放一次性音效
// 每次调用创建新的播放器实例，不会打断仍在播放的旧实例
func (am *AudioManager) PlayOneShot() {
	am.pruneFinished()

	settings := am.settings()
	if !settings.SoundEnabled {
		return
	}

	player, err := am.newOneShot(am.sounds.OneShot.Path)
	if err != nil {
		log.Printf("[AudioManager] Warning: one-shot %s unavailable: %v", am.sounds.OneShot.Path, err)
		return
	}
	player.SetVolume(am.sounds.OneShot.Volume * settings.SoundVolume)
	player.Play()
	am.oneShots = append(am.oneShots, player)
}

// StartLoop 从头开始播放循环音
// 先强制停止并倒带当前实例，保证同一时间只有一个循环音
func (am *AudioManager) StartLoop() {
	am.StopLoop()

	settings := am.settings()
	if !settings.LoopEnabled {
		return
	}

	if am.loop == nil {
		player, err := am.newLoop(am.sounds.Loop.Path)
		if err != nil {
			log.Printf("[AudioManager] Warning: loop %s unavailable: %v", am.sounds.Loop.Path, err)
			return
		}
		am.loop = player
	}

	am.loop.SetVolume(am.sounds.Loop.Volume * settings.LoopVolume)
	if err := am.loop.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind loop: %v", err)
	}
	am.loop.Play()
	log.Printf("[AudioManager] Loop started: %s", am.sounds.Loop.Path)
}

// StopLoop 暂停并倒带循环音
// 可以重复调用，从未启动时也安全
func (am *AudioManager) StopLoop() {
	if am.loop == nil {
		return
	}
	am.loop.Pause()
	if err := am.loop.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind loop: %v", err)
	}
}

// ApplySettings 设置变化后立即更新循环音音量，静音时停止循环音
func (am *AudioManager) ApplySettings() {
	if am.loop == nil {
		return
	}
	settings := am.settings()
	if !settings.LoopEnabled {
		am.StopLoop()
		return
	}
	am.loop.SetVolume(am.sounds.Loop.Volume * settings.LoopVolume)
}

// pruneFinished 关闭并移除已经播放完的一次性音效
func (am *AudioManager) pruneFinished() {
	kept := am.oneShots[:0]
	for _, p := range am.oneShots {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close one-shot player: %v", err)
		}
	}
	// 清除尾部引用
	for i := len(kept); i < len(am.oneShots); i++ {
		am.oneShots[i] = nil
	}
	am.oneShots = kept
}

func (am *AudioManager) settings() *AudioSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}
