package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"tileworld-server/internal/domain"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `LTWD` // 4 байта
	FileExt     string = ".ltwd"

	// MaxWorldSide и MaxWorldTiles ограничивают размер мира из заголовка
	MaxWorldSide  = 1 << 14
	MaxWorldTiles = 1 << 25 // хватает на 8400x2400
	MaxNameLen    = 255

	headerSize     = 20 // binary.Size(WorldFileHeader{})
	tileRecordSize = 9  // binary.Size(TileRecord{})
)

var (
	// ErrWorldNotFound - сохранения с таким именем нет
	ErrWorldNotFound = errors.New("world not found")
	// ErrInvalidName - имя нельзя использовать как имя файла/ключа
	ErrInvalidName = errors.New("invalid world name")
)

// WorldFileHeader - точное представление заголовка файла.
// binary.Write пишет его целиком: внутри только массивы и числа.
type WorldFileHeader struct {
	Magic   [4]byte // 4 байта
	Version uint32  // 4 байта
	Width   uint32  // 4 байта
	Height  uint32  // 4 байта
	Evil    uint8   // 1 байт
	Expert  uint8   // 1 байт
	NameLen uint16  // 2 байта
}

// TileRecord - одна клетка на диске (9 байт)
type TileRecord struct {
	Block   uint16
	Wall    uint16
	BlockHP int16
	WallHP  int16
	Data    uint8
}

// Store хранит миры в файлах <dir>/<name>.ltwd
type Store struct {
	SaveDir string
	log     *logrus.Entry
}

func NewStore(dir string) (*Store, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &Store{
		SaveDir: dir,
		log:     logger.Log.WithFields(logrus.Fields{"component": "world_store", "dir": dir}),
	}, nil
}

// ValidateName проверяет, что имя мира годится как имя файла и ключ redis
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLen || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\:`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.SaveDir, name+FileExt)
}

// Save пишет мир во временный файл и атомарно переименовывает его
func (s *Store) Save(w *world.World) error {
	if err := ValidateName(w.Name()); err != nil {
		return err
	}

	path := s.path(w.Name())
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(f)
	if err := Encode(buf, w); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"world":  w.Name(),
		"width":  w.Width(),
		"height": w.Height(),
	}).Info("World saved")
	return nil
}

// Delete удаляет сохранение
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrWorldNotFound, name)
	}
	return err
}

// List возвращает имена всех сохранённых миров
func (s *Store) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.SaveDir, "*"+FileExt))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), FileExt))
	}
	return names, nil
}

// Encode пишет мир в бинарном формате: заголовок, имя, затем width*height записей клеток
func Encode(w io.Writer, wld *world.World) error {
	name := []byte(wld.Name())
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: name too long: %d", ErrInvalidName, len(name))
	}

	// 1. Заголовок
	header := WorldFileHeader{
		Version: uint32(wld.Version()),
		Width:   uint32(wld.Width()),
		Height:  uint32(wld.Height()),
		Evil:    uint8(wld.EvilType()),
		NameLen: uint16(len(name)),
	}
	if wld.IsExpert() {
		header.Expert = 1
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(name); err != nil {
		return fmt.Errorf("failed to write name: %w", err)
	}

	// 2. Клетки одним куском
	tiles := wld.CopyTiles()
	records := make([]TileRecord, len(tiles))
	for i := range tiles {
		records[i] = toRecord(&tiles[i])
	}
	if err := binary.Write(w, binary.LittleEndian, records); err != nil {
		return fmt.Errorf("failed to write tiles: %w", err)
	}
	return nil
}

func toRecord(t *domain.TileData) TileRecord {
	return TileRecord{
		Block:   uint16(t.BlockID()),
		Wall:    uint16(t.WallID()),
		BlockHP: t.BlockHP,
		WallHP:  t.WallHP,
		Data:    t.Data,
	}
}
