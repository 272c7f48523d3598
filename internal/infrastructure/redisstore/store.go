// Package redisstore хранит миры в Redis в том же бинарном формате, что и файловое хранилище.
package redisstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"tileworld-server/internal/infrastructure/storage"
	"tileworld-server/internal/world"
	"tileworld-server/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const DefaultPrefix = "tileworld"

// Client - то, что нужно стору от go-redis. Подходит и *redis.Client, и кластер.
type Client interface {
	redis.UniversalClient
}

// NewClient создает клиент для одного инстанса Redis. Соединение ленивое.
func NewClient(addr string) (Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

// Store: ключ <prefix>:world:<name> - бинарный blob, <prefix>:worlds - множество имён
type Store struct {
	client Client
	prefix string
	log    *logrus.Entry
}

func New(client Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{
		client: client,
		prefix: prefix,
		log:    logger.Log.WithFields(logrus.Fields{"component": "redis_store", "prefix": prefix}),
	}
}

func (s *Store) worldKey(name string) string { return s.prefix + ":world:" + name }
func (s *Store) indexKey() string           { return s.prefix + ":worlds" }

// Save кодирует мир и пишет blob и индекс одной транзакцией
func (s *Store) Save(ctx context.Context, w *world.World) error {
	if err := storage.ValidateName(w.Name()); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := storage.Encode(&buf, w); err != nil {
		return err
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.worldKey(w.Name()), buf.Bytes(), 0)
		pipe.SAdd(ctx, s.indexKey(), w.Name())
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save %s: %w", w.Name(), err)
	}

	s.log.WithFields(logrus.Fields{"world": w.Name(), "bytes": buf.Len()}).Info("World saved")
	return nil
}

// Load читает и декодирует мир
func (s *Store) Load(ctx context.Context, name string, opts ...world.Option) (*world.World, error) {
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, s.worldKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", storage.ErrWorldNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("redis load %s: %w", name, err)
	}

	w, err := storage.DecodeSized(bytes.NewReader(data), int64(len(data)), opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return w, nil
}

// List - имена сохранённых миров по алфавиту
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Delete удаляет мир и его запись в индексе
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}

	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.worldKey(name))
		pipe.SRem(ctx, s.indexKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete %s: %w", name, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", storage.ErrWorldNotFound, name)
	}
	return nil
}
