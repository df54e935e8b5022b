package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeInput_AutoAdvance(t *testing.T) {
	c := NewCodeInput(6)

	c.SetCell(0, '1')
	assert.Equal(t, 1, c.Focus())

	c.SetCell(1, '2')
	c.SetCell(2, '3')
	assert.Equal(t, 3, c.Focus())
	assert.Equal(t, "123", c.Value())
	assert.False(t, c.IsComplete())
}

func TestCodeInput_FocusStaysAtLastCell(t *testing.T) {
	c := NewCodeInput(6)
	for i := 0; i < 6; i++ {
		c.SetCell(i, '0'+rune(i))
	}

	assert.Equal(t, 5, c.Focus(), "с последней ячейки фокус дальше не уходит")
	assert.True(t, c.IsComplete())
}

func TestCodeInput_Backspace(t *testing.T) {
	c := NewCodeInput(6)
	c.SetCell(0, '1')
	c.SetCell(1, '2')

	c.ClearCell(1)
	assert.Equal(t, 0, c.Focus())
	assert.Equal(t, "1", c.Value())

	// Backspace в первой ячейке фокус не двигает
	c.ClearCell(0)
	assert.Equal(t, 0, c.Focus())
	assert.Equal(t, "", c.Value())
}

func TestCodeInput_PasteFromStart(t *testing.T) {
	c := NewCodeInput(6)
	c.Paste("483920")

	assert.Equal(t, "483920", c.Value())
	assert.True(t, c.IsComplete())
	assert.Equal(t, 5, c.Focus())
}

func TestCodeInput_PasteFromMiddle(t *testing.T) {
	c := NewCodeInput(6)
	c.SetCell(0, '1')
	c.SetCell(1, '2')

	// Фокус на ячейке 2 - вставка идет оттуда
	c.Paste("34")

	assert.Equal(t, "1234", c.Value())
	assert.Equal(t, 4, c.Focus())
}

func TestCodeInput_PasteClampsOverflow(t *testing.T) {
	c := NewCodeInput(6)
	c.Paste("123456789")

	assert.Equal(t, "123456", c.Value())
	assert.Equal(t, 5, c.Focus())
}

func TestCodeInput_PasteTrimsWhitespace(t *testing.T) {
	c := NewCodeInput(6)
	c.Paste("  483920\n")
	assert.Equal(t, "483920", c.Value())
}

func TestCodeInput_Reset(t *testing.T) {
	c := NewCodeInput(6)
	c.Paste("483920")

	c.Reset()

	assert.Equal(t, "", c.Value())
	assert.Equal(t, 0, c.Focus())
	assert.False(t, c.IsComplete())
}
