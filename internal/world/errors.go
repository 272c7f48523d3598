package world

import "errors"

var (
	// ErrOutOfBounds - координата вне мира. Не путать с пустой клеткой.
	ErrOutOfBounds = errors.New("coordinate outside world")

	// ErrNoGround - в колонке нет ни одного блока
	ErrNoGround = errors.New("no ground found in column")

	// ErrMalformedWorld - массив тайлов не соответствует размерам мира
	ErrMalformedWorld = errors.New("malformed world")

	// ErrUnknownEnemy - фабрика не знает такого ID
	ErrUnknownEnemy = errors.New("unknown enemy id")
)
