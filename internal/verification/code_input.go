package verification

import "strings"

// CodeInput моделирует ввод одноразового кода, разбитый на независимо
// адресуемые ячейки по одному символу.
type CodeInput struct {
	cells []rune // 0 = пустая ячейка
	focus int
}

func NewCodeInput(length int) *CodeInput {
	return &CodeInput{
		cells: make([]rune, length),
	}
}

// Length возвращает фиксированную длину кода
func (c *CodeInput) Length() int {
	return len(c.cells)
}

// Focus возвращает индекс ячейки в фокусе
func (c *CodeInput) Focus() int {
	return c.focus
}

// SetFocus переводит фокус на ячейку (клик пользователя)
func (c *CodeInput) SetFocus(index int) {
	if index < 0 || index >= len(c.cells) {
		return
	}
	c.focus = index
}

// SetCell - одиночный ввод символа: ячейка заполняется,
// фокус автоматически переходит на следующую.
func (c *CodeInput) SetCell(index int, ch rune) {
	if index < 0 || index >= len(c.cells) {
		return
	}
	c.cells[index] = ch

	if index+1 < len(c.cells) {
		c.focus = index + 1
	} else {
		c.focus = index
	}
}

// ClearCell - backspace: ячейка очищается, фокус уходит назад
func (c *CodeInput) ClearCell(index int) {
	if index < 0 || index >= len(c.cells) {
		return
	}
	c.cells[index] = 0

	if index > 0 {
		c.focus = index - 1
	}
}

// Paste распределяет вставленный текст начиная с ячейки в фокусе.
// Лишние символы отбрасываются (clamp к фиксированной длине), фокус
// встает на последнюю заполненную ячейку либо на финальную.
func (c *CodeInput) Paste(text string) {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return
	}

	index := c.focus
	last := index
	for _, ch := range runes {
		if index >= len(c.cells) {
			break
		}
		c.cells[index] = ch
		last = index
		index++
	}

	if last+1 < len(c.cells) {
		c.focus = last + 1
	} else {
		c.focus = len(c.cells) - 1
	}
}

// Value собирает введенный код (пустые ячейки пропускаются)
func (c *CodeInput) Value() string {
	var b strings.Builder
	for _, ch := range c.cells {
		if ch != 0 {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// IsComplete - true, когда заполнены ВСЕ ячейки
func (c *CodeInput) IsComplete() bool {
	for _, ch := range c.cells {
		if ch == 0 {
			return false
		}
	}
	return true
}

// Reset очищает все ячейки и возвращает фокус в начало
func (c *CodeInput) Reset() {
	for i := range c.cells {
		c.cells[i] = 0
	}
	c.focus = 0
}
