package scenes

import (
	"bytes"
	"log"
	"math"

	"github.com/decker502/sleighdash/pkg/game"
	"github.com/decker502/sleighdash/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// SoundID 音效标识
type SoundID int

const (
	// SoundDoubleJump 二段跳
	SoundDoubleJump SoundID = iota
	// SoundLetter 收集字母
	SoundLetter
	// SoundCrash 撞上障碍物
	SoundCrash
)

// 背景音乐旋律（Jingle Bells 主题），单位 Hz，0 表示休止
var jingleMelody = []float64{
	659.25, 659.25, 659.25, 0,
	659.25, 659.25, 659.25, 0,
	659.25, 783.99, 523.25, 587.33,
	659.25, 0, 0, 0,
	698.46, 698.46, 698.46, 698.46,
	698.46, 659.25, 659.25, 659.25,
	659.25, 587.33, 587.33, 659.25,
	587.33, 0, 783.99, 0,
}

const jingleNoteSeconds = 0.18

// AudioManager 背景音乐和音效管理器
//
// 所有声音都在启动时用代码合成为 16 位立体声 PCM，不依赖音频资源文件。
// 背景音乐只在 Playing 且未静音时播放，撞车后回到开头；其余状态暂停。
// audioContext 为 nil 时所有方法都是空操作（无头模式和测试）。
type AudioManager struct {
	music     *audio.Player
	sounds    map[SoundID]*audio.Player
	lastState game.State
	volume    float64
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - audioContext: ebiten 音频上下文，可为 nil
//   - volume: 背景音乐音量 (0.0 ~ 1.0)
func NewAudioManager(audioContext *audio.Context, volume float64) *AudioManager {
	am := &AudioManager{
		sounds:    make(map[SoundID]*audio.Player),
		lastState: game.StateStart,
		volume:    game.ClampVolume(volume),
	}
	if audioContext == nil {
		return am
	}

	pcm := synthMelody(jingleMelody, jingleNoteSeconds)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := audioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player: %v", err)
	} else {
		music.SetVolume(am.volume)
		am.music = music
	}

	am.sounds[SoundDoubleJump] = audioContext.NewPlayerFromBytes(synthTone(1046.5, 0.08, 8))
	am.sounds[SoundLetter] = audioContext.NewPlayerFromBytes(synthTone(1318.5, 0.25, 4))
	am.sounds[SoundCrash] = audioContext.NewPlayerFromBytes(synthTone(196, 0.45, 3))

	return am
}

// musicShouldPlay 返回给定状态下背景音乐是否应当播放
func musicShouldPlay(state game.State, muted bool) bool {
	return state == game.StatePlaying && !muted
}

// Sync 让背景音乐与游戏状态和静音设置保持一致，每帧调用
func (am *AudioManager) Sync(state game.State, muted bool) {
	defer func() { am.lastState = state }()

	if am.music == nil {
		return
	}

	if musicShouldPlay(state, muted) {
		if !am.music.IsPlaying() {
			am.music.Play()
		}
		return
	}

	if am.music.IsPlaying() {
		am.music.Pause()
	}

	// 撞车后下一次尝试从头播放
	if state == game.StateGameOver && am.lastState != game.StateGameOver {
		if err := am.music.Rewind(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
		}
	}
}

// PlayEvents 为一帧内的事件播放音效
func (am *AudioManager) PlayEvents(ev game.Events, muted bool) {
	if muted {
		return
	}
	if ev.Jump == systems.JumpDouble {
		am.PlaySound(SoundDoubleJump)
	}
	if len(ev.LettersCollected) > 0 {
		am.PlaySound(SoundLetter)
	}
	if ev.GameOver {
		am.PlaySound(SoundCrash)
	}
}

// PlaySound 从头播放一个音效
func (am *AudioManager) PlaySound(id SoundID) {
	player, ok := am.sounds[id]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %d: %v", id, err)
	}
	player.SetVolume(am.volume)
	player.Play()
}

// SetVolume 设置音量
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = game.ClampVolume(volume)
	if am.music != nil {
		am.music.SetVolume(am.volume)
	}
}

// synthTone 合成一个指数衰减的正弦音
func synthTone(freq, seconds, decay float64) []byte {
	n := int(AudioSampleRate * seconds)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / AudioSampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * math.Exp(-decay*t))
		putStereoSample(buf, i, v)
	}
	return buf
}

// synthMelody 合成带三度和声的旋律，每个音符长度相同
func synthMelody(notes []float64, noteSeconds float64) []byte {
	perNote := int(AudioSampleRate * noteSeconds)
	buf := make([]byte, perNote*len(notes)*4)

	for n, freq := range notes {
		if freq == 0 {
			continue
		}
		for j := 0; j < perNote; j++ {
			t := float64(j) / AudioSampleRate
			env := math.Exp(-4 * t)
			v := math.Sin(2*math.Pi*freq*t)*2200*env + math.Sin(2*math.Pi*freq*1.25*t)*900*env
			putStereoSample(buf, n*perNote+j, int16(v))
		}
	}
	return buf
}

func putStereoSample(buf []byte, i int, v int16) {
	idx := i * 4
	buf[idx] = byte(v)
	buf[idx+1] = byte(v >> 8)
	buf[idx+2] = byte(v)
	buf[idx+3] = byte(v >> 8)
}
