//go:build mobile

// embed.go 移动端资源嵌入声明
//
// 仅在使用 -tags mobile 构建时编译，mobile/data 与根目录 data 保持一致。
package mobile

import "embed"

//go:embed data/dimo.yaml
var dataFS embed.FS
