// Package scenes 实现小部件的 Ebitengine 场景
package scenes

import (
	"github.com/decker502/misopet/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查
var (
	_ Scene       = (*PetScene)(nil)
	_ game.Closer = (*PetScene)(nil)
)
