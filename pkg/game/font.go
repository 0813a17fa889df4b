package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontLoader 字体加载器，按 (来源, 字号) 缓存字体
type FontLoader struct {
	sources map[string]*text.GoTextFaceSource
	faces   map[string]*text.GoTextFace
}

// NewFontLoader 创建字体加载器
func NewFontLoader() *FontLoader {
	return &FontLoader{
		sources: make(map[string]*text.GoTextFaceSource),
		faces:   make(map[string]*text.GoTextFace),
	}
}

// DefaultFontName 内置字体（Go Regular）的名称
const DefaultFontName = "goregular"

// LoadFont 加载字体
//
// 参数：
//   - path: TTF/OTF 文件路径，为空或 DefaultFontName 时使用内置字体
//   - size: 字号
func (fl *FontLoader) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	if path == "" {
		path = DefaultFontName
	}
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if face, ok := fl.faces[cacheKey]; ok {
		return face, nil
	}

	source, ok := fl.sources[path]
	if !ok {
		data := goregular.TTF
		if path != DefaultFontName {
			var err error
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		fl.sources[path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fl.faces[cacheKey] = face
	return face, nil
}
