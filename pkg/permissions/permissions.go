// Package permissions 检查截屏所需的系统权限
package permissions

// Status 权限状态
type Status struct {
	ScreenRecording bool `json:"screen_recording"`
}

// Instructions 权限缺失时的提示，已授权时返回空字符串
func Instructions(s *Status) string {
	if s == nil || s.ScreenRecording {
		return ""
	}
	return "放大镜需要屏幕录制权限才能截屏:\n" +
		"  系统设置 > 隐私与安全性 > 屏幕录制\n" +
		"授权后需要重启应用才能生效。"
}
