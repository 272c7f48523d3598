package main

import (
	"context"
	"fmt"
	"tileworld-server/internal/engine"
	"tileworld-server/internal/infrastructure/redisstore"
	"tileworld-server/internal/infrastructure/storage"
	"tileworld-server/internal/world"
)

// worldStore - общий интерфейс файлового и redis хранилищ для команд CLI
type worldStore interface {
	Load(ctx context.Context, name string, opts ...world.Option) (*world.World, error)
	Save(ctx context.Context, w *world.World) error
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

// fileStore приводит файловое хранилище к интерфейсу с контекстом
type fileStore struct {
	*storage.Store
}

func (f fileStore) Load(_ context.Context, name string, opts ...world.Option) (*world.World, error) {
	return f.Store.Load(name, opts...)
}

func (f fileStore) Save(_ context.Context, w *world.World) error {
	return f.Store.Save(w)
}

func (f fileStore) List(_ context.Context) ([]string, error) {
	return f.Store.List()
}

func (f fileStore) Delete(_ context.Context, name string) error {
	return f.Store.Delete(name)
}

func (f fileStore) Close() error { return nil }

type redisWorldStore struct {
	*redisstore.Store
	client redisstore.Client
}

func (r redisWorldStore) Close() error { return r.client.Close() }

// openStore: если задан адрес redis, миры живут там, иначе в каталоге сохранений
func openStore(cfg engine.Config) (worldStore, error) {
	if cfg.RedisAddr != "" {
		client, err := redisstore.NewClient(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return redisWorldStore{Store: redisstore.New(client, redisstore.DefaultPrefix), client: client}, nil
	}

	s, err := storage.NewStore(cfg.SaveDir)
	if err != nil {
		return nil, fmt.Errorf("open save dir: %w", err)
	}
	return fileStore{Store: s}, nil
}
