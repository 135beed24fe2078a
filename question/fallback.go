package question

// Fallback returns the built-in bank used when no external source yields rows
func Fallback() []Record {
	return []Record{
		{Prompt: "測試題：1 + 1 = ?", Options: [4]string{"1", "2", "3", "4"}, Correct: LabelB},
		{Prompt: "測試題：2 + 2 = ?", Options: [4]string{"2", "3", "4", "5"}, Correct: LabelC},
		{Prompt: "測試題：3 + 3 = ?", Options: [4]string{"5", "6", "7", "8"}, Correct: LabelB},
		{Prompt: "測試題：4 + 1 = ?", Options: [4]string{"4", "5", "6", "7"}, Correct: LabelB},
		{Prompt: "測試題：5 + 0 = ?", Options: [4]string{"5", "4", "3", "2"}, Correct: LabelA},
	}
}
