//go:build !darwin

package permissions

// Check 非 macOS 系统不需要特殊权限
func Check() *Status {
	return &Status{ScreenRecording: true}
}

// RequestScreenRecording 非 macOS 系统无操作
func RequestScreenRecording() bool {
	return true
}

// OpenScreenRecordingSettings 非 macOS 系统无操作
func OpenScreenRecordingSettings() error {
	return nil
}
