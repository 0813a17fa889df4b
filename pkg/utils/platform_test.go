//go:build !mobile

package utils

import "testing"

// TestIsMobileDesktop 测试桌面端默认不是移动端，环境变量可模拟
func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("DIMO_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("桌面端 IsMobile() 应返回 false")
	}

	t.Setenv("DIMO_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("设置 DIMO_MOBILE_EMULATE=1 后 IsMobile() 应返回 true")
	}
}
