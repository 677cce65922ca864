package repository

import (
	"iter"

	"github.com/box1bs/speller/pkg/logger"
	"github.com/dgraph-io/badger/v3"
)

const (
	WordKeyPrefix = "word:"
	maxWordsInTXN = 1000
)

// WordRepository keeps dictionary words in badger under WordKeyPrefix.
type WordRepository struct {
	DB 		*badger.DB
	log 	*logger.Logger
}

// NewWordRepository opens the store at path. An empty path opens an
// in-memory store.
func NewWordRepository(path string, log *logger.Logger) (*WordRepository, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &WordRepository{
		DB: 	db,
		log: 	log,
	}, nil
}

// ImportWords stores every word and returns how many were read.
func (wr *WordRepository) ImportWords(words iter.Seq[string]) (int, error) {
	n := 0
	buf := make([]string, 0, maxWordsInTXN)
	for w := range words {
		n++
		buf = append(buf, w)
		if len(buf) >= maxWordsInTXN {
			if err := wr.flushChunk(buf); err != nil {
				return n, err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if err := wr.flushChunk(buf); err != nil {
			return n, err
		}
	}
	wr.log.Write(logger.NewMessage(logger.REPOSITORY_LAYER, logger.DEBUG, "imported %d words", n))
	return n, nil
}

func (wr *WordRepository) flushChunk(words []string) error {
	wb := wr.DB.NewWriteBatch()
	defer wb.Cancel()

	for _, w := range words {
		if err := wb.Set([]byte(WordKeyPrefix + w), nil); err != nil {
			wr.log.Write(logger.NewMessage(logger.REPOSITORY_LAYER, logger.ERROR, "error writing word %q: %v", w, err))
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		wr.log.Write(logger.NewMessage(logger.REPOSITORY_LAYER, logger.CRITICAL_ERROR, "error flushing %d words: %v", len(words), err))
		return err
	}
	return nil
}

// Words returns the stored words in key order.
func (wr *WordRepository) Words() ([]string, error) {
	words := []string{}
	prefix := []byte(WordKeyPrefix)

	err := wr.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

func (wr *WordRepository) Count() (int, error) {
	var count int
	prefix := []byte(WordKeyPrefix)

	err := wr.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (wr *WordRepository) Close() error {
	return wr.DB.Close()
}
