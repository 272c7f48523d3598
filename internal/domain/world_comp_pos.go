package domain

// Vec2 - позиция или скорость в единицах сетки (1.0 = один тайл)
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect - прямоугольник в пикселях (ось Y направлена вниз)
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Intersects - строгое пересечение AABB: касание краями пересечением не считается
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Camera - центр экрана в пикселях мира
type Camera struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Screen - размер экрана в пикселях
type Screen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// View - всё, что нужно для расчёта окна видимости
type View struct {
	Camera Camera `json:"camera"`
	Screen Screen `json:"screen"`
}

// CameraAtTile ставит камеру на левый верхний угол тайла (x, y)
func CameraAtTile(x, y, tileSize int) Camera {
	return Camera{X: float64(x * tileSize), Y: float64(y * tileSize)}
}
