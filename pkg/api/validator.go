package api

import (
	"errors"
	"math"
)

// MaxScreenSide - максимальная сторона экрана наблюдателя в пикселях
const MaxScreenSide = 8192

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p CameraPayload) Validate() error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return errors.New("camera position must be finite")
	}
	return nil
}

func (p ResizePayload) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New("screen size must be positive")
	}
	if p.Width > MaxScreenSide || p.Height > MaxScreenSide {
		return errors.New("screen size too large")
	}
	return nil
}

func (p SpawnEnemyPayload) Validate() error {
	if p.Enemy == 0 {
		return errors.New("enemy is required")
	}
	return nil
}

func (p SpawnDropPayload) Validate() error {
	if p.Item == 0 {
		return errors.New("item is required")
	}
	if p.Count <= 0 {
		return errors.New("count must be positive")
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return errors.New("drop position must be finite")
	}
	return nil
}

func (p SetBlockPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("coordinates must not be negative")
	}
	return nil
}

func (p SetWallPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("coordinates must not be negative")
	}
	return nil
}
