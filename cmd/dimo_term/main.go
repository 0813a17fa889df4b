// cmd/dimo_term/main.go
// 终端预览：以半块字符在终端中播放 Logo 动画
//
// 用法：
//
//	go run ./cmd/dimo_term --duration=1.2 --color=#FFB000
//
// 按键：Space 播放/暂停，←/→ 拖动进度，↑/↓ 调整时长，Esc/q 退出
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/logo"
	"github.com/decker502/dimologo/pkg/raster"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "配置文件路径（默认使用内置默认值）")
	duration   = flag.Float64("duration", 0, "覆盖动画时长（秒）")
	fgColor    = flag.String("color", "", "覆盖前景色 #RRGGBB")
	logFile    = flag.String("log", "", "日志文件（终端被占用，默认丢弃日志）")
)

// coverageThreshold 覆盖率不低于该值的像素显示为点亮
const coverageThreshold = 128

// Preview 终端预览
type Preview struct {
	screen tcell.Screen
	clock  *logo.Clock
	cfg    *config.AppConfig
	style  tcell.Style

	renderer *raster.Renderer
	dirty    bool
}

// NewPreview 创建终端预览并初始化屏幕
func NewPreview(cfg *config.AppConfig) (*Preview, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	fg := cfg.ForegroundColor()
	p := &Preview{
		screen: screen,
		clock:  logo.NewClock(cfg.Logo.Duration, cfg.Logo.Interval, cfg.Playback.TickStep),
		cfg:    cfg,
		style:  tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(cfg.BackgroundColor())),
		dirty:  true,
	}
	p.clock.SetRedrawFunc(func() { p.dirty = true })
	p.resize()
	if cfg.Logo.AutoPlay == nil || *cfg.Logo.AutoPlay {
		p.clock.Play()
	}
	return p, nil
}

// toTcell 将预乘颜色转换为终端颜色
func toTcell(c color.RGBA) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// resize 按终端尺寸重建栅格化器
func (p *Preview) resize() {
	cols, rows := p.screen.Size()
	n := logoPixels(cols, rows)
	p.renderer = raster.NewRenderer(n, n, p.cfg.ForegroundColor(), p.cfg.BackgroundColor())
	p.dirty = true
}

// draw 绘制当前帧与状态栏
func (p *Preview) draw() {
	p.screen.SetStyle(p.style)
	p.screen.Clear()
	cols, _ := p.screen.Size()

	if p.renderer.Width > 0 {
		frame := p.renderer.FrameAt(p.clock.Time(), p.clock.Duration())
		cells := maskToCells(p.renderer.Mask(frame), coverageThreshold)
		left := (cols - p.renderer.Width) / 2
		for y, line := range cells {
			for x, r := range line {
				p.screen.SetContent(left+x, y+1, r, nil, p.style)
			}
		}
	}

	status := fmt.Sprintf(" %s  progress %.2f  duration %.1fs  [space] [←→] [↑↓] [q]",
		p.clock.State(), p.clock.Progress(), p.clock.Duration())
	for x, r := range []rune(status) {
		p.screen.SetContent(x, 0, r, nil, p.style.Reverse(true))
	}

	p.screen.Show()
	p.dirty = false
}

// handleInput 处理输入，返回 false 表示退出
func (p *Preview) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.clock.SetProgress(p.clock.Progress() - config.ProgressScrubStep)
		case tcell.KeyRight:
			p.clock.SetProgress(p.clock.Progress() + config.ProgressScrubStep)
		case tcell.KeyUp:
			p.setDuration(p.clock.Duration() + config.DurationAdjustStep)
		case tcell.KeyDown:
			p.setDuration(p.clock.Duration() - config.DurationAdjustStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				if p.clock.IsRunning() {
					p.clock.Stop()
				} else {
					p.clock.Play()
				}
				p.dirty = true
			}
		}

	case *tcell.EventResize:
		p.screen.Sync()
		p.resize()
	}
	return true
}

func (p *Preview) setDuration(d float64) {
	d = math.Max(config.MinLogoDuration, math.Round(d*100)/100)
	p.clock.SetDuration(d)
	p.dirty = true
}

// run 主循环：按 tick 频率推进时钟，事件由独立 goroutine 投递
func (p *Preview) run() {
	period := time.Second / time.Duration(p.cfg.Playback.TickRate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}
		case <-ticker.C:
			p.clock.Tick()
		}
		if p.dirty {
			p.draw()
		}
	}
}

func loadConfig() (*config.AppConfig, error) {
	cfg := config.DefaultAppConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadAppConfig(*configPath); err != nil {
			return nil, err
		}
	}
	if *duration > 0 {
		cfg.Logo.Duration = math.Max(config.MinLogoDuration, *duration)
	}
	if *fgColor != "" {
		if _, err := config.ParseHexColor(*fgColor); err != nil {
			return nil, fmt.Errorf("--color 无效: %w", err)
		}
		cfg.Logo.Foreground = *fgColor
	}
	if cfg.Playback.TickRate <= 0 {
		cfg.Playback.TickRate = config.DefaultLogoTickRate
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	preview, err := NewPreview(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[DimoTerm] started: duration=%.2f tick_rate=%d", cfg.Logo.Duration, cfg.Playback.TickRate)

	preview.run()
	preview.screen.Fini()
	log.Printf("[DimoTerm] exited")
}
