//go:build !android

package utils

// EnsureStorageDir gdata 在非 Android 平台上会自行创建存储目录
func EnsureStorageDir() error {
	return nil
}
