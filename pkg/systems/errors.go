package systems

import (
	"errors"

	"github.com/decker502/fishcatch/pkg/game"
)

var (
	// ErrNoFish 没有可供选择的鱼
	ErrNoFish = errors.New("no fish to choose from")

	// ErrUnknownColor 鱼的颜色无法解析
	ErrUnknownColor = errors.New("unknown fish color")

	// ErrTargetAlreadyChosen 目标鱼已经选过
	ErrTargetAlreadyChosen = game.ErrTargetAlreadyChosen
)
