package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"
)

// Load читает мир по имени. Битый файл - фатальная ошибка, частичный мир не создаётся.
func (s *Store) Load(name string, opts ...world.Option) (*world.World, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrWorldNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	wld, err := DecodeSized(bufio.NewReader(f), info.Size(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	s.log.WithField("world", wld.Name()).Info("World loaded")
	return wld, nil
}

// EncodedSize - сколько байт занимает мир с таким заголовком
func (h WorldFileHeader) EncodedSize() int64 {
	return headerSize + int64(h.NameLen) + int64(h.Width)*int64(h.Height)*tileRecordSize
}

// Decode читает мир, записанный Encode. Все ошибки формата оборачивают world.ErrMalformedWorld.
// Клетки читаются по рядам: память растёт только вместе с реально прочитанными данными.
func Decode(r io.Reader, opts ...world.Option) (*world.World, error) {
	header, name, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return decodeTiles(r, header, name, false, opts...)
}

// DecodeSized - Decode для источника известной длины (файл, blob из redis).
// Несовпадение длины с заголовком отклоняется до чтения клеток.
func DecodeSized(r io.Reader, size int64, opts ...world.Option) (*world.World, error) {
	header, name, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if want := header.EncodedSize(); size != want {
		return nil, fmt.Errorf("%w: size %d bytes, header declares %d", world.ErrMalformedWorld, size, want)
	}
	return decodeTiles(r, header, name, true, opts...)
}

func readHeader(r io.Reader) (WorldFileHeader, string, error) {
	// 1. Читаем заголовок целиком
	var header WorldFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return header, "", fmt.Errorf("%w: failed to read header: %v", world.ErrMalformedWorld, err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return header, "", fmt.Errorf("%w: invalid magic %q", world.ErrMalformedWorld, header.Magic[:])
	}
	if header.Version == 0 || header.Version > world.CurrentVersion {
		return header, "", fmt.Errorf("%w: unsupported version: %d (max %d)",
			world.ErrMalformedWorld, header.Version, world.CurrentVersion)
	}
	if header.Width == 0 || header.Height == 0 || header.Width > MaxWorldSide || header.Height > MaxWorldSide ||
		uint64(header.Width)*uint64(header.Height) > MaxWorldTiles {
		return header, "", fmt.Errorf("%w: invalid size %dx%d", world.ErrMalformedWorld, header.Width, header.Height)
	}
	evil := domain.EvilType(header.Evil)
	if evil != domain.EvilCorruption && evil != domain.EvilCrimson {
		return header, "", fmt.Errorf("%w: unknown evil type %d", world.ErrMalformedWorld, header.Evil)
	}

	nameBuf := make([]byte, header.NameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return header, "", fmt.Errorf("%w: failed to read name: %v", world.ErrMalformedWorld, err)
	}
	return header, string(nameBuf), nil
}

// sized=true: длина уже сверена с заголовком, массив клеток можно выделить сразу
func decodeTiles(r io.Reader, header WorldFileHeader, name string, sized bool, opts ...world.Option) (*world.World, error) {
	// 2. Клетки, по одному ряду
	w, h := int(header.Width), int(header.Height)
	row := make([]TileRecord, w)
	capacity := w
	if sized {
		capacity = w * h
	}
	tiles := make([]domain.TileData, 0, capacity)
	for y := 0; y < h; y++ {
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("%w: truncated tile data at row %d: %v", world.ErrMalformedWorld, y, err)
		}
		for x, rec := range row {
			var t domain.TileData
			if err := fromRecord(rec, &t); err != nil {
				return nil, fmt.Errorf("%w: tile (%d,%d): %v", world.ErrMalformedWorld, x, y, err)
			}
			tiles = append(tiles, t)
		}
	}

	opts = append(opts, world.WithVersion(int(header.Version)), world.WithExpert(header.Expert != 0))
	return world.NewFromTiles(name, w, h, domain.EvilType(header.Evil), tiles, opts...)
}

func fromRecord(rec TileRecord, t *domain.TileData) error {
	block, ok := domain.BlockByID(domain.BlockID(rec.Block))
	if !ok {
		return fmt.Errorf("unknown block id %d", rec.Block)
	}
	wall, ok := domain.WallByID(domain.WallID(rec.Wall))
	if !ok {
		return fmt.Errorf("unknown wall id %d", rec.Wall)
	}

	*t = domain.TileData{
		Block:   block,
		Wall:    wall,
		BlockHP: rec.BlockHP,
		WallHP:  rec.WallHP,
		Data:    rec.Data,
	}
	return nil
}
