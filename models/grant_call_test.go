package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdFor(t *testing.T) {
	call := GrantCall{
		IncomeThresholds: IncomeThresholds{8849, 13288, 18032, 21398},
	}

	assert.Equal(t, 8849.0, call.ThresholdFor(1))
	assert.Equal(t, 13288.0, call.ThresholdFor(2))
	assert.Equal(t, 21398.0, call.ThresholdFor(4))

	// За пределами таблицы действует последний порог
	assert.Equal(t, 21398.0, call.ThresholdFor(9))

	// Некорректный размер домохозяйства приводится к минимальному
	assert.Equal(t, 8849.0, call.ThresholdFor(0))
	assert.Equal(t, 8849.0, call.ThresholdFor(-3))
}

func TestThresholdForEmptyTable(t *testing.T) {
	call := GrantCall{}
	assert.Zero(t, call.ThresholdFor(3))
}

func TestIncompatibilityListScanRejectsNonBytes(t *testing.T) {
	var l IncompatibilityList
	err := l.Scan("not bytes")
	assert.Error(t, err)
}
