package configs

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/xyproto/env/v2"
)

type ConfigData struct {
	DictionaryPath 	string 	`json:"dictionary_path" validate:"len=0:4096"`
	StorePath 		string 	`json:"store_path" validate:"len=0:4096"`
	Encoding 		string 	`json:"encoding"`
	InitialCapacity int 	`json:"initial_capacity" validate:"min=1,max=100000000"`
	HashFunction 	string 	`json:"hash_function" validate:"required,oneof=sum|weighted"`
	LogCapacity 	int 	`json:"log_capacity" validate:"min=1,max=1000000"`
	Debug 			bool 	`json:"debug"`
}

var ErrNoDictionarySource = errors.New("neither dictionary_path nor store_path is set")

func DefaultConfig() *ConfigData {
	return &ConfigData{
		DictionaryPath: 	"dictionary.txt",
		InitialCapacity: 	1000,
		HashFunction: 		"sum",
		LogCapacity: 		1000,
	}
}

func (cfg *ConfigData) Validate() error {
	if err := New("validate").Validate(*cfg); err != nil {
		return err
	}
	if cfg.DictionaryPath == "" && cfg.StorePath == "" {
		return ErrNoDictionarySource
	}
	return nil
}

// UploadLocalConfiguration reads a JSON config on top of DefaultConfig, so
// omitted fields keep their defaults.
func UploadLocalConfiguration(fileName string) (*ConfigData, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv loads the dotenv files (".env" when none are given, a missing one
// is not an error) and overrides cfg with SPELLER_* variables.
func (cfg *ConfigData) ApplyEnv(dotenv ...string) error {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	env.Load()

	cfg.DictionaryPath = env.Str("SPELLER_DICTIONARY", cfg.DictionaryPath)
	cfg.StorePath = env.Str("SPELLER_STORE", cfg.StorePath)
	cfg.Encoding = env.Str("SPELLER_ENCODING", cfg.Encoding)
	cfg.HashFunction = env.Str("SPELLER_HASH", cfg.HashFunction)
	cfg.InitialCapacity = env.Int("SPELLER_CAPACITY", cfg.InitialCapacity)
	cfg.LogCapacity = env.Int("SPELLER_LOG_CAPACITY", cfg.LogCapacity)
	if env.Has("SPELLER_DEBUG") {
		cfg.Debug = env.Bool("SPELLER_DEBUG")
	}
	return nil
}
