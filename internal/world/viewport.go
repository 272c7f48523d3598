package world

import (
	"math"
	"tileworld-server/internal/domain"
)

// Margin - отступы окна в тайлах
type Margin struct {
	// Pad добавляется со всех сторон, чтобы тайлы не "выпрыгивали" на краю экрана
	Pad int
	// Ahead дополнительно расширяет MaxX (зона спавна впереди экрана)
	Ahead int
}

var (
	// RenderMargin - окно отрисовки и сканирования биома
	RenderMargin = Margin{Pad: 2}
	// ActiveMargin - активная зона для спавна: на 25 тайлов дальше видимой части
	ActiveMargin = Margin{Pad: 2, Ahead: 25}
)

// Window - прямоугольник в координатах тайлов. Границы включительные.
type Window struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`
}

// ComputeWindow - единственный расчёт окна видимости в проекте.
// Камера указывает на центр экрана. Все границы зажаты в [0, w-1] x [0, h-1].
func ComputeWindow(view domain.View, tileSize, worldW, worldH int, m Margin) Window {
	ts := float64(tileSize)
	tcx := int(math.Floor((view.Camera.X - float64(view.Screen.Width)/2) / ts))
	tcy := int(math.Floor((view.Camera.Y - float64(view.Screen.Height)/2) / ts))
	tww := view.Screen.Width / tileSize
	twh := view.Screen.Height / tileSize

	return Window{
		MinX: clamp(tcx-m.Pad, 0, worldW-1),
		MaxX: clamp(tcx+tww+m.Pad+m.Ahead, 0, worldW-1),
		MinY: clamp(tcy-m.Pad, 0, worldH-1),
		MaxY: clamp(tcy+twh+m.Pad, 0, worldH-1),
	}
}

// Contains - клетка внутри окна
func (w Window) Contains(x, y int) bool {
	return x >= w.MinX && x <= w.MaxX && y >= w.MinY && y <= w.MaxY
}

// Width - число колонок окна
func (w Window) Width() int { return w.MaxX - w.MinX + 1 }

// Height - число рядов окна
func (w Window) Height() int { return w.MaxY - w.MinY + 1 }

// Intersects - отсечение сущностей: bbox (gx, gy, gw, gh) в тайлах задевает окно
func (w Window) Intersects(gx, gy, gw, gh int) bool {
	return gx > w.MinX-gw && gx < w.MaxX+gw &&
		gy > w.MinY-gh && gy < w.MaxY+gh
}

// ForEach обходит клетки окна построчно
func (w Window) ForEach(fn func(x, y int)) {
	for y := w.MinY; y <= w.MaxY; y++ {
		for x := w.MinX; x <= w.MaxX; x++ {
			fn(x, y)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
