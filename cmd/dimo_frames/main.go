// cmd/dimo_frames/main.go
// 离线导出：将一个动画周期逐 tick 栅格化为 PNG 序列或精灵图
//
// 用法：
//
//	go run ./cmd/dimo_frames --out=build/frames --size=120
//	go run ./cmd/dimo_frames --sheet=build/dimo_sheet.png --columns=9
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/decker502/dimologo/pkg/config"
	"github.com/decker502/dimologo/pkg/raster"
)

var (
	outDir     = flag.String("out", "", "PNG 序列输出目录")
	sheetPath  = flag.String("sheet", "", "精灵图输出文件")
	columns    = flag.Int("columns", 0, "精灵图列数（默认单行）")
	size       = flag.Int("size", int(config.LogoIntrinsicSize), "帧边长（像素）")
	duration   = flag.Float64("duration", config.DefaultLogoDuration, "动画时长（秒）")
	interval   = flag.Float64("interval", config.DefaultLogoInterval, "周期间停顿（秒）")
	step       = flag.Float64("step", config.DefaultLogoTickStep, "每帧推进的动画时间（秒）")
	foreground = flag.String("color", config.DefaultForeground, "前景色 #RRGGBB[AA]")
	background = flag.String("background", "#00000000", "背景色 #RRGGBB[AA]（默认透明）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// exportOptions 导出参数
type exportOptions struct {
	OutDir    string
	SheetPath string
	Columns   int
	Size      int
	Duration  float64
	Interval  float64
	Step      float64
	FG, BG    string
}

// export 执行导出，返回写出的文件列表
func export(opts exportOptions) ([]string, error) {
	if opts.OutDir == "" && opts.SheetPath == "" {
		return nil, fmt.Errorf("至少需要指定 --out 或 --sheet")
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid size %d, must be positive", opts.Size)
	}
	if opts.Step <= 0 {
		return nil, fmt.Errorf("invalid step %v, must be positive", opts.Step)
	}
	fg, err := config.ParseHexColor(opts.FG)
	if err != nil {
		return nil, fmt.Errorf("前景色无效: %w", err)
	}
	bg, err := config.ParseHexColor(opts.BG)
	if err != nil {
		return nil, fmt.Errorf("背景色无效: %w", err)
	}

	r := raster.NewRenderer(opts.Size, opts.Size, fg, bg)
	frames := r.CycleFrames(opts.Duration, opts.Interval, opts.Step)
	log.Printf("[DimoFrames] %d frames, size=%d duration=%.2f interval=%.2f step=%.3f",
		len(frames), opts.Size, opts.Duration, opts.Interval, opts.Step)

	var written []string
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", opts.OutDir, err)
		}
		for i, f := range frames {
			path := filepath.Join(opts.OutDir, fmt.Sprintf("frame_%03d.png", i))
			if err := raster.SavePNG(path, r.Render(f)); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}

	if opts.SheetPath != "" {
		if dir := filepath.Dir(opts.SheetPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		if err := raster.SavePNG(opts.SheetPath, r.SpriteSheet(frames, opts.Columns)); err != nil {
			return written, err
		}
		written = append(written, opts.SheetPath)
	}
	return written, nil
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	written, err := export(exportOptions{
		OutDir:    *outDir,
		SheetPath: *sheetPath,
		Columns:   *columns,
		Size:      *size,
		Duration:  *duration,
		Interval:  *interval,
		Step:      *step,
		FG:        *foreground,
		BG:        *background,
	})
	if err != nil {
		log.Fatalf("导出失败: %v", err)
	}
	fmt.Printf("✓ 已写出 %d 个文件\n", len(written))
}
