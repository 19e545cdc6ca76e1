package storage

// DurableStore объединяет все коллекции локального хранилища.
type DurableStore interface {
	QueueStorage
	CacheStorage
	MappingStorage
	MetadataStorage

	// Close releases the store file
	Close() error
}
