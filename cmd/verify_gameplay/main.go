// verify_gameplay 在没有窗口的情况下跑一局抓鱼游戏并报告结果
//
// 用法:
//
//	go run ./cmd/verify_gameplay -click=target -after=2s
//	go run ./cmd/verify_gameplay -click=wrong -seed=7 -verbose
//	go run ./cmd/verify_gameplay -click=none
//	go run ./cmd/verify_gameplay -sound=data/audio/win.ogg
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/fishcatch/pkg/app"
	"github.com/decker502/fishcatch/pkg/config"
	"github.com/decker502/fishcatch/pkg/ecs"
	"github.com/decker502/fishcatch/pkg/game"
	"github.com/decker502/fishcatch/pkg/scenes"
)

const frameSeconds = 1.0 / 60.0

var (
	seed    = flag.Int64("seed", 1, "随机种子")
	click   = flag.String("click", "target", "点击哪条鱼: target | wrong | none")
	after   = flag.Duration("after", 2*time.Second, "开局后多久点击")
	runFor  = flag.Duration("run", 15*time.Second, "总共模拟的游戏时间")
	sound   = flag.String("sound", "", "获胜音乐路径，为空时使用调参默认值")
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
)

// consoleSound 只记录播放请求的音效播放器
type consoleSound struct {
	logger *log.Logger
}

func (c consoleSound) PlaySound(path string) bool {
	c.logger.Info("play sound", "path", path)
	return true
}

func main() {
	flag.Parse()

	logger := app.NewLogger(*verbose)
	tuning := config.DefaultTuning()
	if *sound != "" {
		tuning.Audio.WinSound = *sound
	}
	scene, err := scenes.NewAquariumScene(nil, consoleSound{logger: logger.WithPrefix("Sound")},
		tuning, rand.New(rand.NewSource(*seed)), logger)
	if err != nil {
		logger.Fatal("failed to create scene", "err", err)
	}

	clicked := false
	scene.Input().SetPointerSource(func() (bool, int, int) {
		if clicked || *click == "none" || scene.Now() < *after {
			return false, 0, 0
		}
		clicked = true
		x, y, ok := pickPoint(scene, *click == "target")
		if !ok {
			logger.Warn("no clickable point found", "click", *click)
			return false, 0, 0
		}
		logger.Info("clicking", "x", x, "y", y, "at", scene.Now())
		return true, x, y
	})

	for scene.Now() < *runFor {
		scene.Update(frameSeconds)
	}

	session := scene.Session()
	color, _ := scene.Registry().Color(scene.Target())
	fmt.Printf("target:  %s\n", color)
	fmt.Printf("state:   %s\n", session.State())
	fmt.Printf("reason:  %s\n", session.Reason())
	fmt.Printf("ticks:   %d\n", scene.Controller().Ticks())
	fmt.Printf("net:     finished=%v\n", scene.Controller().NetFinished())

	want := game.SessionLost
	if *click == "target" {
		want = game.SessionWon
	}
	if session.State() != want {
		logger.Error("unexpected outcome", "want", want, "got", session.State())
		os.Exit(1)
	}
}

// pickPoint 找一个命中测试结果属于目标鱼（或任意非目标鱼）的点
func pickPoint(scene *scenes.AquariumScene, target bool) (int, int, bool) {
	for _, id := range scene.Registry().Fish() {
		if (id == scene.Target()) != target {
			continue
		}
		if x, y, ok := pointOn(scene, id); ok {
			return x, y, true
		}
	}
	return 0, 0, false
}

func pointOn(scene *scenes.AquariumScene, fish ecs.EntityID) (int, int, bool) {
	r, ok := scene.Registry().Bounds(fish)
	if !ok {
		return 0, 0, false
	}
	cv := scene.Canvas()
	for y := int(r.MinY); y <= int(r.MaxY); y++ {
		for x := int(r.MinX); x <= int(r.MaxX); x++ {
			shape, hit := cv.HitTest(float64(x), float64(y))
			if !hit {
				continue
			}
			if owner, owned := cv.Owner(shape); owned && owner == fish {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
