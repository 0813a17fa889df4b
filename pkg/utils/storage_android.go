//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保应用私有目录存在并可写
// gdata 在 Android 上写入 /data/data/{package}/，但不会预先创建目录
func EnsureStorageDir() error {
	root := GetStoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect android package name")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", root, err)
	}

	probe := filepath.Join(root, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", root, err)
	}
	return os.Remove(probe)
}

// GetStoragePath Android 应用私有目录，包名无法识别时返回空字符串
func GetStoragePath() string {
	pkg, err := androidPackageName()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackageName 从 /proc/self/cmdline 读取包名（以 NUL 结尾的首个参数）
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
