package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	words := amountInWords(50.0)
	assert.Contains(t, words, "euros")
	assert.NotContains(t, words, "céntimos")

	words = amountInWords(125.50)
	assert.Contains(t, words, "euros con 50 céntimos")
}
