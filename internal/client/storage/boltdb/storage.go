package boltdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/iudanet/gophsync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketQueue         = []byte("queue")
	bucketQueueByStatus = []byte("queue_idx_status")
	bucketQueueByTime   = []byte("queue_idx_ts")
	bucketCache         = []byte("cache")
	bucketCacheByExpiry = []byte("cache_idx_expires")
	bucketMapping       = []byte("mapping")
	bucketMappingServer = []byte("mapping_idx_server")
	bucketMappingByType = []byte("mapping_idx_type")
	bucketMetadata      = []byte("meta")
)

var allBuckets = [][]byte{
	bucketQueue, bucketQueueByStatus, bucketQueueByTime,
	bucketCache, bucketCacheByExpiry,
	bucketMapping, bucketMappingServer, bucketMappingByType,
	bucketMetadata,
}

// DefaultLockTimeout время ожидания файловой блокировки другого процесса
const DefaultLockTimeout = time.Second

var _ storage.DurableStore = (*Storage)(nil)

// Options параметры хранилища
type Options struct {
	Logger      *slog.Logger
	Now         func() time.Time // источник времени для TTL кеша
	Passphrase  string           // непустая фраза включает шифрование записей
	LockTimeout time.Duration
}

// Storage represents BoltDB storage implementation for client.
// Файл открывается лениво при первом обращении; неудачное открытие повторяется при следующем.
type Storage struct {
	db     *bbolt.DB
	codec  *codec
	logger *slog.Logger
	now    func() time.Time
	path   string
	opts   Options
	mu     sync.Mutex
	closed bool
}

// New creates a new BoltDB storage instance without touching the file.
// dbPath is the path to the BoltDB database file
func New(dbPath string, opts Options) (*Storage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = DefaultLockTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Storage{
		path:   dbPath,
		opts:   opts,
		now:    opts.Now,
		logger: opts.Logger,
	}, nil
}

// Open открывает файл и создает buckets. Повторные вызовы ничего не делают.
func (s *Storage) Open(ctx context.Context) error {
	_, _, err := s.handle(ctx)
	return err
}

// handle возвращает открытую БД, открывая ее при первом обращении.
func (s *Storage) handle(ctx context.Context) (*bbolt.DB, *codec, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil, storage.ErrStorageClosed
	}
	if s.db != nil {
		return s.db, s.codec, nil
	}

	db, err := bbolt.Open(s.path, 0600, &bbolt.Options{Timeout: s.opts.LockTimeout})
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, nil, fmt.Errorf("failed to open boltdb %s: %w", s.path, storage.ErrStoreLocked)
		}
		return nil, nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	// Инициализируем buckets
	if err := initBuckets(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	c, err := newCodec(db, s.opts.Passphrase)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	s.db = db
	s.codec = c
	s.logger.Debug("store opened", "path", s.path, "sealed", c.sealed())

	return s.db, s.codec, nil
}

// Close closes the database connection. Subsequent calls return ErrStorageClosed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func initBuckets(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// update выполняет запись в одной транзакции
func (s *Storage) update(ctx context.Context, fn func(tx *bbolt.Tx, c *codec) error) error {
	db, c, err := s.handle(ctx)
	if err != nil {
		return err
	}
	return db.Update(func(tx *bbolt.Tx) error { return fn(tx, c) })
}

// view выполняет чтение в одной транзакции
func (s *Storage) view(ctx context.Context, fn func(tx *bbolt.Tx, c *codec) error) error {
	db, c, err := s.handle(ctx)
	if err != nil {
		return err
	}
	return db.View(func(tx *bbolt.Tx) error { return fn(tx, c) })
}

// resetBuckets удаляет и заново создает buckets внутри транзакции
func resetBuckets(tx *bbolt.Tx, names ...[]byte) error {
	for _, name := range names {
		if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, berrors.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete %s bucket: %w", name, err)
		}
		if _, err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", name, err)
		}
	}
	return nil
}
