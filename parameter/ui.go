package parameter

// Buttons
const (
	// ControlWidth/Height size the start and restart buttons
	ControlWidth  = 200.0
	ControlHeight = 60.0

	// StartButtonOffsetY is the start button's top edge relative to canvas mid-height
	StartButtonOffsetY = 50.0

	// RestartButtonOffsetY is the restart button's top edge relative to canvas mid-height
	RestartButtonOffsetY = 150.0

	// AnswerWidth/Height size each of the four answer buttons
	AnswerWidth  = 350.0
	AnswerHeight = 80.0

	// AnswerGap separates answer buttons in the 2x2 grid
	AnswerGap = 20.0

	// AnswerOriginX/Y anchor the top-left answer button
	AnswerOriginX = 40.0
	AnswerOriginY = 250.0

	// StartLabel and RestartLabel caption the control buttons
	StartLabel   = "開始測驗"
	RestartLabel = "重新開始"

	// ButtonCornerRadius rounds all buttons
	ButtonCornerRadius = 10.0
)

// Burst Placement
const (
	// BurstMarginX keeps answer and entry bursts away from the side edges
	BurstMarginX = 100.0

	// AnswerBurstMarginY keeps answer bursts away from top and bottom
	AnswerBurstMarginY = 150.0

	// EntryBurstTop is the upper bound of perfect-entry burst heights
	EntryBurstTop = 80.0
)

// Text
const (
	// TitleSize and friends are nominal font sizes; the terminal rasterizer bolds anything >= BoldTextSize
	TitleSize    = 48.0
	SubtitleSize = 24.0
	HeaderSize   = 20.0
	PromptSize   = 28.0
	ButtonSize   = 20.0
	ResultSize   = 50.0
	ScoreSize    = 36.0
	CaptionSize  = 16.0
	BoldTextSize = 28.0

	// EncourageText is tiled behind a non-perfect result
	EncourageText = "請繼續加油 "

	// EncourageSize is the nominal size of the tiled text
	EncourageSize = 12.0

	// EncourageSpacing separates tiles horizontally and vertically
	EncourageSpacing = 5.0

	// DefaultTitle is shown on the start screen unless configured
	DefaultTitle = "題庫測驗"
)

// Text Placement
const (
	// TitleOffsetY/SubtitleOffsetY place start screen text relative to canvas mid-height
	TitleOffsetY    = -100.0
	SubtitleOffsetY = -30.0

	// HeaderX/HeaderY anchor the question counter
	HeaderX = 40.0
	HeaderY = 40.0

	// PromptY/PromptHeight bound the wrapped question text
	PromptY      = 80.0
	PromptHeight = 150.0

	ResultTitleY   = 120.0
	ResultScoreY   = 200.0
	ResultMessageY = 260.0

	CaptionX = 10.0
	CaptionY = 10.0
)
