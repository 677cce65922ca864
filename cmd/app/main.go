package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/box1bs/speller/configs"
	"github.com/box1bs/speller/internal/app/dictionary"
	"github.com/box1bs/speller/internal/app/spellChecker"
	"github.com/box1bs/speller/internal/logo"
	"github.com/box1bs/speller/internal/repository"
	"github.com/box1bs/speller/pkg/hashMap"
	"github.com/box1bs/speller/pkg/logger"
)

type flags struct {
	configFile 	string
	dictFile 	string
	storePath 	string
	importFile 	string
	hashName 	string
	capacity 	int
	printMap 	bool
}

func main() {
	var f flags
	flag.StringVar(&f.configFile, "config", "", "Path to configuration file")
	flag.StringVar(&f.dictFile, "dict", "", "Path to dictionary file")
	flag.StringVar(&f.storePath, "store", "", "Path to badger word store, used as the dictionary when set")
	flag.StringVar(&f.importFile, "import", "", "Import words from this file into the store and exit")
	flag.StringVar(&f.hashName, "hash", "", "Hash function: sum or weighted")
	flag.IntVar(&f.capacity, "capacity", 0, "Initial bucket count")
	flag.BoolVar(&f.printMap, "print", false, "Print the bucket layout after loading")
	flag.Parse()

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger(os.Stdout, os.Stderr, cfg.LogCapacity)
	log.SetDebug(cfg.Debug)

	if err := run(cfg, f, log); err != nil {
		log.Write(logger.NewMessage(logger.MAIN_LAYER, logger.CRITICAL_ERROR, "%v", err))
		log.Close()
		os.Exit(1)
	}
	log.Close()
}

// loadConfig layers defaults, the JSON file, the environment and flags, in
// that order.
func loadConfig(f flags) (*configs.ConfigData, error) {
	cfg := configs.DefaultConfig()
	if f.configFile != "" {
		var err error
		if cfg, err = configs.UploadLocalConfiguration(f.configFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if f.dictFile != "" {
		cfg.DictionaryPath = f.dictFile
	}
	if f.storePath != "" {
		cfg.StorePath = f.storePath
	}
	if f.hashName != "" {
		cfg.HashFunction = f.hashName
	}
	if f.capacity != 0 {
		cfg.InitialCapacity = f.capacity
	}

	return cfg, cfg.Validate()
}

func run(cfg *configs.ConfigData, f flags, log *logger.Logger) error {
	if f.importFile != "" {
		return importDictionary(cfg, f.importFile, log)
	}

	hash, err := hashMap.HashFuncByName(cfg.HashFunction)
	if err != nil {
		return err
	}
	sc := spellChecker.NewSpellChecker(cfg.InitialCapacity, hash, log)

	log.Write(logger.NewMessage(logger.MAIN_LAYER, logger.INFO, "loading dictionary..."))
	t := time.Now()
	n, err := loadDictionary(cfg, sc, log)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	dict := sc.Dictionary()
	log.Write(logger.NewMessage(logger.MAIN_LAYER, logger.INFO,
		"dictionary loaded in %v: %d words, %d distinct, capacity %d, empty buckets %d, load %.3f",
		time.Since(t), n, dict.Size(), dict.Capacity(), dict.EmptyBuckets(), dict.TableLoad()))

	if f.printMap {
		if err := dict.Print(os.Stdout); err != nil {
			return err
		}
	}

	logo.PrintLogo(os.Stdout)
	return runRepl(os.Stdin, os.Stdout, sc, log)
}

func loadDictionary(cfg *configs.ConfigData, sc *spellChecker.SpellChecker, log *logger.Logger) (int, error) {
	if cfg.StorePath != "" {
		repo, err := repository.NewWordRepository(cfg.StorePath, log)
		if err != nil {
			return 0, err
		}
		defer repo.Close()

		words, err := repo.Words()
		if err != nil {
			return 0, err
		}
		if len(words) == 0 {
			return 0, fmt.Errorf("store %s: %w", cfg.StorePath, dictionary.ErrEmptyDictionary)
		}
		return sc.LoadDictionary(slices.Values(words)), nil
	}

	r, err := dictionary.Open(cfg.DictionaryPath, cfg.Encoding)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	n := sc.LoadDictionary(r.All())
	if err := r.Err(); err != nil {
		return n, fmt.Errorf("read %s: %w", cfg.DictionaryPath, err)
	}
	return n, nil
}

func importDictionary(cfg *configs.ConfigData, file string, log *logger.Logger) error {
	if cfg.StorePath == "" {
		return errors.New("-import needs a store path")
	}

	r, err := dictionary.Open(file, cfg.Encoding)
	if err != nil {
		return err
	}
	defer r.Close()

	repo, err := repository.NewWordRepository(cfg.StorePath, log)
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := repo.ImportWords(r.All())
	if err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	count, err := repo.Count()
	if err != nil {
		return err
	}
	log.Write(logger.NewMessage(logger.MAIN_LAYER, logger.INFO, "imported %d words into %s, %d distinct stored", n, cfg.StorePath, count))
	return nil
}
