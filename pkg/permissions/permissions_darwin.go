//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <CoreGraphics/CoreGraphics.h>

int preflightScreenCapture() {
    if (__builtin_available(macOS 10.15, *)) {
        return CGPreflightScreenCaptureAccess() ? 1 : 0;
    }
    return 1;
}

int requestScreenCapture() {
    if (__builtin_available(macOS 10.15, *)) {
        return CGRequestScreenCaptureAccess() ? 1 : 0;
    }
    return 1;
}
*/
import "C"

import "os/exec"

// Check 检查屏幕录制权限（不触发弹窗）
func Check() *Status {
	return &Status{ScreenRecording: C.preflightScreenCapture() == 1}
}

// RequestScreenRecording 请求屏幕录制权限（触发系统弹窗）
func RequestScreenRecording() bool {
	return C.requestScreenCapture() == 1
}

// OpenScreenRecordingSettings 打开屏幕录制设置页面
func OpenScreenRecordingSettings() error {
	return exec.Command("open", "x-apple.systempreferences:com.apple.preference.security?Privacy_ScreenCapture").Run()
}
