package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素，按未缩放的字体测量）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行），空白文本返回 nil
//
// 换行规则:
//   - 只在空白处断行，连续空白合并为一个空格
//   - 单个单词超过最大宽度时独占一行，不拆分
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return nil
	}
	if face == nil || maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	currentLine := words[0]

	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if measureTextWidth(testLine, face) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
			continue
		}
		currentLine = testLine
	}

	return append(lines, currentLine)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, face text.Face) float64 {
	width, _ := text.Measure(textStr, face, 0)
	return width
}
