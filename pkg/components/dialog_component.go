package components

// DialogComponent 对话框组件
// 用于显示模态对话框（胜负结果提示），与 PositionComponent 一起挂在对话框实体上
type DialogComponent struct {
	Title       string  // 对话框标题（如 "Game Over"）
	Message     string  // 对话框消息（如 "Time's up! Final score: 7"）
	ButtonLabel string  // 按钮文字
	IsVisible   bool    // 是否可见
	Width       float64 // 对话框宽度
	Height      float64 // 对话框高度
	OnClose     func()  // 关闭回调，可为 nil
}
