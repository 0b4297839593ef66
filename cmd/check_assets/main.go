// check_assets 检查宠物配置引用的图片和声音是否存在且能解码
//
// 用法：
//
//	go run ./cmd/check_assets --assets assets --config my_pet.toml
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/misopet/pkg/config"
	"github.com/decker502/misopet/pkg/embedded"
)

var (
	assetRoot  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:          "check_assets",
	Short:        "检查宠物配置引用的资源文件",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		problems := checkAssets(os.DirFS(assetRoot), cfg)
		for _, p := range problems {
			fmt.Fprintln(cmd.OutOrStdout(), "✗", p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d asset problem(s) under %s", len(problems), assetRoot)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ all assets present under %s\n", assetRoot)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&assetRoot, "assets", "assets", "资源目录")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "宠物配置文件，默认使用 data/pet.yaml")
}

func loadConfig() (*config.PetConfig, error) {
	if configPath != "" {
		return config.LoadPetConfig(configPath)
	}
	embedded.Init(os.DirFS("."))
	if !embedded.Exists(config.DefaultPetConfigPath) {
		return nil, fmt.Errorf("%s not found: run from the repository root or pass --config", config.DefaultPetConfigPath)
	}
	return config.LoadEmbeddedPetConfig()
}

// referencedAssets 按出现顺序返回配置引用的所有资源路径（去重）
func referencedAssets(cfg *config.PetConfig) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	add(cfg.DefaultPhoto)
	for _, a := range cfg.Actions {
		add(a.Photo)
	}
	for _, p := range cfg.Collage {
		add(p)
	}
	add(cfg.Sounds.OneShot.Path)
	add(cfg.Sounds.Loop.Path)
	return paths
}

// checkAssets 返回每个缺失或无法解码的资源的描述
func checkAssets(assets fs.FS, cfg *config.PetConfig) []string {
	var problems []string
	for _, p := range referencedAssets(cfg) {
		name := filepath.ToSlash(strings.TrimPrefix(p, "/"))
		switch strings.ToLower(filepath.Ext(name)) {
		case ".png", ".jpg", ".jpeg":
			f, err := assets.Open(name)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", p, err))
				continue
			}
			_, _, err = image.DecodeConfig(f)
			f.Close()
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: not a decodable image: %v", p, err))
			}
		default:
			info, err := fs.Stat(assets, name)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", p, err))
				continue
			}
			if info.Size() == 0 {
				problems = append(problems, fmt.Sprintf("%s: empty file", p))
			}
		}
	}
	return problems
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
