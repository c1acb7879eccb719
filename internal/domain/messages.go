package domain

// User-facing texts shared by the presentation adapters
const (
	MsgLoadFailed      = "単語データの読み込みに失敗しました。"
	MsgCorrect         = "正解！"
	MsgIncorrect       = "不正解！"
	MsgCorrectAnswerIs = "正解は: "
)
