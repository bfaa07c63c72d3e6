package theme

const (
	Padding = float32(20)

	CornerRadius   = float32(0.2)
	CornerSegments = int32(8)

	BorderWidth      = float32(1)
	BorderWidthFocus = float32(2)

	InputPadding  = float32(10)
	ButtonPadding = float32(12)
)
