package rules

import "errors"

var (
	// ErrUnknownCategory возвращается, когда уровень обучения или отрасль
	// соискателя не входят в набор правил.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidInput возвращается для числовых данных вне допустимого
	// диапазона (отрицательные кредиты, средний балл вне шкалы 0-10).
	ErrInvalidInput = errors.New("invalid input")
)
