package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte("version: \"1.0\"\n")},
		"assets/images/mole.png":       {Data: []byte("png")},
		"assets/images/trap.png":       {Data: []byte("png")},
		"other/secret.txt":             {Data: []byte("nope")},
	}
}

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Cleanup(func() {
		assetsFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil): got initialized, want not initialized")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的调用
func TestNotInitialized(t *testing.T) {
	reset(t)
	Init(nil)

	if _, err := Open("assets/images/mole.png"); !errors.Is(err, errNotInitialized) {
		t.Errorf("Open: got %v, want %v", err, errNotInitialized)
	}
	if _, err := ReadFile("assets/images/mole.png"); !errors.Is(err, errNotInitialized) {
		t.Errorf("ReadFile: got %v, want %v", err, errNotInitialized)
	}
	if _, err := Glob("assets/images/*.png"); !errors.Is(err, errNotInitialized) {
		t.Errorf("Glob: got %v, want %v", err, errNotInitialized)
	}
	if Exists("assets/images/mole.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试路径标准化与读取
func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())

	for _, path := range []string{"assets/config/resources.yaml", "./assets/config/resources.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Errorf("ReadFile(%q) failed: %v", path, err)
			continue
		}
		if string(data) != "version: \"1.0\"\n" {
			t.Errorf("ReadFile(%q): got %q", path, data)
		}
	}

	if _, err := ReadFile("assets/missing.png"); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestInvalidPrefix 测试无效路径前缀
func TestInvalidPrefix(t *testing.T) {
	reset(t)
	Init(testFS())

	want := "unknown resource path prefix: other/secret.txt (must start with 'assets/')"
	if _, err := ReadFile("other/secret.txt"); err == nil || err.Error() != want {
		t.Errorf("ReadFile: got %v, want %s", err, want)
	}
	if _, err := Open("other/secret.txt"); err == nil {
		t.Error("Open: expected error for invalid path prefix")
	}
	if Exists("other/secret.txt") {
		t.Error("Exists: got true for path outside assets/")
	}
}

func TestExistsAndGlob(t *testing.T) {
	reset(t)
	Init(testFS())

	if !Exists("assets/images/mole.png") {
		t.Error("Exists(mole.png): got false, want true")
	}
	if Exists("assets/images/mallet.png") {
		t.Error("Exists(mallet.png): got true, want false")
	}

	matches, err := Glob("assets/images/*.png")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob: got %v, want 2 matches", matches)
	}
}
