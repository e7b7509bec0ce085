package embedded

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func resetEmbedded() {
	dataFS = nil
	initialized = false
}

// TestNotInitialized 测试未初始化时的访问
func TestNotInitialized(t *testing.T) {
	resetEmbedded()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	if _, err := ReadFile("data/tuning.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() before Init: expected ErrNotInitialized, got %v", err)
	}
	if _, err := Open("data/tuning.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() before Init: expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/tuning.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试路径规范化和前缀校验
func TestReadFile(t *testing.T) {
	resetEmbedded()
	t.Cleanup(resetEmbedded)

	Init(fstest.MapFS{
		"data/tuning.yaml": &fstest.MapFile{Data: []byte("speed:\n  max: 22\n")},
	})

	tests := []struct {
		name        string
		path        string
		wantErr     bool
		errContains string
	}{
		{name: "标准路径", path: "data/tuning.yaml"},
		{name: "带 ./ 前缀", path: "./data/tuning.yaml"},
		{name: "未知前缀", path: "assets/tuning.yaml", wantErr: true, errContains: "unknown resource path prefix"},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(string(data), "max: 22") {
				t.Errorf("unexpected content %q", data)
			}
		})
	}

	if !Exists("data/tuning.yaml") {
		t.Error("Exists() should find data/tuning.yaml")
	}
	if _, err := ReadFile("data/missing.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file should wrap fs.ErrNotExist, got %v", err)
	}
}
