package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/misopet/pkg/app"
	"github.com/decker502/misopet/pkg/config"
	"github.com/decker502/misopet/pkg/embedded"
)

var (
	verbose     bool
	configPath  string
	assetRoot   string
	petName     string
	revertDelay time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "misopet",
	Short: "Miso 虚拟宠物小部件",
	Long: `misopet 是一个桌面虚拟宠物小部件。

按钮或快捷键执行动作：Treat [T]、Play [P]、Exercise [E]、Sleep [S]。
M 切换静音，F11 切换全屏。`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "宠物配置文件（.yaml/.yml/.toml），默认使用内置配置")
	rootCmd.PersistentFlags().StringVar(&assetRoot, "assets", "assets", "图片和声音所在目录")
	rootCmd.PersistentFlags().StringVar(&petName, "name", "", "覆盖宠物名字")
	rootCmd.PersistentFlags().DurationVar(&revertDelay, "revert-delay", 0, "覆盖主图恢复延迟（如 2s、1500ms）")
}

func run(cmd *cobra.Command, args []string) error {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	petApp, err := app.NewApp(app.Config{
		Verbose:     verbose,
		ConfigPath:  configPath,
		AssetRoot:   assetRoot,
		Assets:      bundledAssets(),
		Name:        petName,
		RevertDelay: revertDelay,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(petApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(petApp); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	log.Printf("[main] Bye")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
