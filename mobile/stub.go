//go:build !mobile

// stub.go 非移动端构建时的占位文件
// 实际入口在 mobile.go 与 embed.go 中，仅在 -tags mobile 时编译
package mobile

// Dummy 空导出函数，保证包在非移动端构建时也能被引用
func Dummy() {}
