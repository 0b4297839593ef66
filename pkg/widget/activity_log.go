package widget

import "time"

// LogTimeLayout 日志时间格式，如 "3:04:05 PM"
const LogTimeLayout = "3:04:05 PM"

// LogEntry 一条日志
type LogEntry struct {
	Timestamp string
	Message   string
}

// String 返回 "[<时间>] <消息>"
func (e LogEntry) String() string {
	return "[" + e.Timestamp + "] " + e.Message
}

// ActivityLog 只追加的活动日志
type ActivityLog struct {
	view View
	now  func() time.Time
}

// NewActivityLog 创建活动日志，now 为 nil 时使用 time.Now
func NewActivityLog(view View, now func() time.Time) *ActivityLog {
	if now == nil {
		now = time.Now
	}
	return &ActivityLog{view: view, now: now}
}

// Speak 追加一条带时间戳的消息，并把面板滚动到底部
// 日志面板不存在时什么也不做
func (l *ActivityLog) Speak(message string) {
	panel := l.view.Log()
	if panel == nil {
		return
	}
	entry := LogEntry{
		Timestamp: l.now().Local().Format(LogTimeLayout),
		Message:   message,
	}
	panel.AppendLine(entry.String())
	panel.SetScrollTop(panel.ScrollHeight())
}
