package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/decker502/dimologo/pkg/logo"
)

// CycleFrames 计算一个动画周期内逐 tick 的帧几何
func (r *Renderer) CycleFrames(duration, interval, step float64) []logo.Frame {
	schedule := logo.ComputeSchedule(duration)
	metrics := logoMetrics(r.Width, r.Height)
	bounds := r.Bounds()

	times := logo.CycleTimes(duration, interval, step)
	frames := make([]logo.Frame, 0, len(times))
	for _, t := range times {
		frames = append(frames, logo.ComputeFrame(t, schedule, metrics, bounds))
	}
	return frames
}

// SpriteSheet 将多帧按行优先排布为一张精灵图
// columns <= 0 时所有帧排成一行
func (r *Renderer) SpriteSheet(frames []logo.Frame, columns int) *image.RGBA {
	if len(frames) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if columns <= 0 || columns > len(frames) {
		columns = len(frames)
	}
	rows := (len(frames) + columns - 1) / columns

	sheet := image.NewRGBA(image.Rect(0, 0, columns*r.Width, rows*r.Height))
	for i, f := range frames {
		origin := image.Pt((i%columns)*r.Width, (i/columns)*r.Height)
		r.RenderInto(sheet, origin, f)
	}
	return sheet
}

// EncodePNG 以 PNG 格式写出图像
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG 将图像保存为 PNG 文件
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// FrameAt 计算给定时长下 t 时刻的帧几何
func (r *Renderer) FrameAt(t, duration float64) logo.Frame {
	return logo.ComputeFrame(t, logo.ComputeSchedule(duration), logoMetrics(r.Width, r.Height), r.Bounds())
}
