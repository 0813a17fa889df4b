package embedded

import (
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest(t)
	if IsInitialized() {
		t.Error("Init() 之前 IsInitialized() 应返回 false")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Init() 之后 IsInitialized() 应返回 true")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) 之后 IsInitialized() 应返回 false")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest(t)
	if _, err := ReadFile("data/dimo.yaml"); err == nil {
		t.Error("未初始化时 ReadFile() 应返回错误")
	}
	if _, err := Open("data/dimo.yaml"); err == nil {
		t.Error("未初始化时 Open() 应返回错误")
	}
}

// TestReadFile 测试路径标准化与前缀校验
func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/dimo.yaml": {Data: []byte("logo:\n  duration: 1.2\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/dimo.yaml", false},
		{"./ 前缀", "./data/dimo.yaml", false},
		{"未知前缀", "assets/dimo.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) 返回空内容", tt.path)
			}
		})
	}

	if !Exists("data/dimo.yaml") || Exists("data/missing.yaml") {
		t.Error("Exists() 结果不正确")
	}
}
