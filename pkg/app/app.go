// Package app 提供小部件应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端和浏览器通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/misopet/pkg/config"
	"github.com/decker502/misopet/pkg/game"
	"github.com/decker502/misopet/pkg/scenes"
	"github.com/decker502/misopet/pkg/utils"
	"github.com/decker502/misopet/pkg/widget"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "misopet"

// VolumeStep 每次按 - / = 调整的音量倍率
const VolumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 宠物配置文件（.yaml/.yml/.toml），为空则使用内置 data/pet.yaml
	ConfigPath string
	// AssetRoot 图片和声音所在目录，Assets 为 nil 时使用
	AssetRoot string
	// Assets 图片和声音所在的文件系统（移动端传入嵌入资源）
	Assets fs.FS
	// Name 覆盖配置中的宠物名字
	Name string
	// RevertDelay 覆盖配置中的主图恢复延迟
	RevertDelay time.Duration
	// AppName gdata 存储使用的应用名，为空则为 DefaultAppName
	AppName string
}

// App 是小部件应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	statusFace      *text.GoTextFace
	title           string

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
// 配置错误会返回 error；缺失的图片和声音文件不是错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	petConfig, err := LoadPetConfig(cfg)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	assets := cfg.Assets
	if assets == nil {
		root := cfg.AssetRoot
		if root == "" {
			root = "."
		}
		assets = os.DirFS(root)
	}
	resourceManager := game.NewResourceManager(audioContext, assets)

	// 设置存储失败时降级为仅内存设置
	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := game.NewAudioManager(resourceManager, settingsManager, petConfig.Sounds)
	log.Printf("[App] AudioManager initialized")

	scene := scenes.NewPetScene(resourceManager, petConfig.DefaultPhoto)
	petWidget, err := widget.New(widget.Options{
		Config:    petConfig,
		View:      scene,
		Audio:     audioManager,
		Preloader: resourceManager,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pet widget: %w", err)
	}
	scene.Bind(petWidget)
	petWidget.Start()

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	statusFace, err := resourceManager.UIFont(config.LogFontSize)
	if err != nil {
		log.Printf("[App] Warning: status font unavailable: %v", err)
	}

	log.Printf("[App] Started: pet=%s config=%q", petConfig.Pet.Name, cfg.ConfigPath)
	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		statusFace:      statusFace,
		title:           petConfig.Pet.Name + " - misopet",
	}, nil
}

// LoadPetConfig 读取宠物配置并应用命令行覆盖项
func LoadPetConfig(cfg Config) (*config.PetConfig, error) {
	var (
		petConfig *config.PetConfig
		err       error
	)
	if cfg.ConfigPath != "" {
		petConfig, err = config.LoadPetConfig(cfg.ConfigPath)
	} else {
		petConfig, err = config.LoadEmbeddedPetConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pet config: %w", err)
	}

	if cfg.Name != "" {
		petConfig.Pet.Name = cfg.Name
	}
	if cfg.RevertDelay < 0 {
		return nil, fmt.Errorf("%w: revert delay must be positive, got %s", config.ErrInvalidPetConfig, cfg.RevertDelay)
	}
	if cfg.RevertDelay > 0 {
		petConfig.RevertDelayMS = int(cfg.RevertDelay / time.Millisecond)
	}
	if err := petConfig.Validate(); err != nil {
		return nil, err
	}
	return petConfig, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Close()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// M 切换静音，- / = 调整音量，立即保存
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.AdjustVolume(-VolumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.AdjustVolume(VolumeStep)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// ToggleMute 切换静音并保存设置
func (a *App) ToggleMute() bool {
	muted := a.settingsManager.ToggleMute()
	a.audioManager.ApplySettings()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Muted: %v", muted)
	return muted
}

// AdjustVolume 同时调整两个音量倍率（0.0 ~ 1.0）并保存
// 静音时调高音量会同时解除静音
func (a *App) AdjustVolume(step float64) {
	settings := a.settingsManager.GetSettings()
	sound, loop := roundVolume(settings.SoundVolume+step), roundVolume(settings.LoopVolume+step)
	a.settingsManager.SetSoundVolume(sound)
	a.settingsManager.SetLoopVolume(loop)
	if step > 0 && a.settingsManager.IsMuted() {
		a.settingsManager.SetSoundEnabled(true)
		a.settingsManager.SetLoopEnabled(true)
	}
	a.audioManager.ApplySettings()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Volume: sound=%.1f loop=%.1f", settings.SoundVolume, settings.LoopVolume)
}

// roundVolume 消除反复加减 VolumeStep 带来的浮点误差
func roundVolume(v float64) float64 {
	return math.Round(v*100) / 100
}

// Close 通知场景退出并保存设置
func (a *App) Close() {
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.settingsManager.IsMuted() && a.statusFace != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(config.ScreenWidth-config.PanelPadding, config.ScreenHeight-config.LogFontSize-4)
		op.ColorScale.ScaleWithColor(config.MutedTextColor)
		label := "Muted [M]"
		if utils.IsMobile() {
			label = "Muted"
		}
		text.Draw(screen, label, a.statusFace, op)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Title 窗口标题
func (a *App) Title() string {
	return a.title
}
