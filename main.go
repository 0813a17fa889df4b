package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/dimologo/pkg/app"
	"github.com/decker502/dimologo/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部配置文件路径（默认使用内嵌 data/dimo.yaml）")
	scene := flag.String("scene", "logo", "启动场景: logo 或 hud")
	memory := flag.Bool("memory", false, "不读写已保存的设置")
	duration := flag.Float64("duration", 0, "覆盖动画时长（秒）")
	interval := flag.Float64("interval", 0, "覆盖周期间停顿（秒）")
	foreground := flag.String("color", "", "覆盖前景色 #RRGGBB[AA]")
	title := flag.String("title", "", "覆盖 HUD 文字")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Scene:      *scene,
		Memory:     *memory,
		Duration:   *duration,
		Interval:   *interval,
		Foreground: *foreground,
		HUDTitle:   *title,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	cfg := gameApp.AppConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(gameApp.TPS())
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
