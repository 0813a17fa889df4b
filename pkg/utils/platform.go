//go:build !mobile

package utils

import "os"

// IsMobile 是否以移动端模式运行
// 桌面端可设置环境变量 DIMO_MOBILE_EMULATE=1 模拟移动端布局
func IsMobile() bool {
	return os.Getenv("DIMO_MOBILE_EMULATE") == "1"
}
