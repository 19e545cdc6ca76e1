package boltdb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/crypto"
)

const (
	keySalt      = "salt"
	keySealCheck = "seal_check"
)

// sealCheckValue контрольное значение, по которому проверяется парольная фраза
var sealCheckValue = []byte("gophsync-store-v1")

// codec сериализует записи: JSON -> snappy -> (AES-GCM).
type codec struct {
	sealer *crypto.Sealer
}

// newCodec готовит codec для открытой БД. При непустой фразе соль создается
// при первом открытии и сохраняется в meta bucket.
func newCodec(db *bbolt.DB, passphrase string) (*codec, error) {
	var (
		salt  []byte
		check []byte
		empty bool
	)
	err := db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		salt = cloneBytes(meta.Get([]byte(keySalt)))
		check = cloneBytes(meta.Get([]byte(keySealCheck)))
		empty = isDataEmpty(tx)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read store metadata: %w", err)
	}

	if passphrase == "" {
		if check != nil {
			return nil, fmt.Errorf("store is encrypted, passphrase required: %w", storage.ErrWrongPassphrase)
		}
		return &codec{}, nil
	}

	if check == nil {
		if !empty {
			return nil, fmt.Errorf("store holds unencrypted records: %w", storage.ErrWrongPassphrase)
		}
		return initSealing(db, passphrase)
	}

	key, err := crypto.DeriveStoreKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}
	sealer, err := crypto.NewSealer(key)
	if err != nil {
		return nil, err
	}
	opened, err := sealer.Open(check)
	if err != nil || !bytes.Equal(opened, sealCheckValue) {
		return nil, storage.ErrWrongPassphrase
	}

	return &codec{sealer: sealer}, nil
}

// initSealing создает соль и контрольную запись для нового зашифрованного хранилища
func initSealing(db *bbolt.DB, passphrase string) (*codec, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveStoreKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}
	sealer, err := crypto.NewSealer(key)
	if err != nil {
		return nil, err
	}
	check, err := sealer.Seal(sealCheckValue)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMetadata)
		if err := meta.Put([]byte(keySalt), salt); err != nil {
			return err
		}
		return meta.Put([]byte(keySealCheck), check)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save store salt: %w", err)
	}

	return &codec{sealer: sealer}, nil
}

func (c *codec) sealed() bool {
	return c.sealer != nil
}

func (c *codec) encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	data = snappy.Encode(nil, data)

	if c.sealer != nil {
		if data, err = c.sealer.Seal(data); err != nil {
			return nil, fmt.Errorf("failed to seal record: %w", err)
		}
	}
	return data, nil
}

func (c *codec) decode(data []byte, v any) error {
	var err error
	if c.sealer != nil {
		if data, err = c.sealer.Open(data); err != nil {
			return fmt.Errorf("failed to open record: %w", err)
		}
	}

	if data, err = snappy.Decode(nil, data); err != nil {
		return fmt.Errorf("failed to decompress record: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return nil
}

// isDataEmpty reports whether no queue, cache or mapping records exist.
func isDataEmpty(tx *bbolt.Tx) bool {
	for _, name := range [][]byte{bucketQueue, bucketCache, bucketMapping} {
		b := tx.Bucket(name)
		if b == nil {
			continue
		}
		if k, _ := b.Cursor().First(); k != nil {
			return false
		}
	}
	return true
}

// cloneBytes копирует значение, полученное из транзакции, чтобы оно пережило ее
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
