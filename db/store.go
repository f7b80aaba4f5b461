package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/KaustubhAs/student-alumni-connect-app/models"
)

// ErrCorruptData indicates the persisted database file exists but cannot be
// parsed. Unlike a missing file, this is never silently reset: startup treats
// it as fatal so a broken file is not overwritten with an empty one.
var ErrCorruptData = errors.New("database file is corrupt")

// ErrIO indicates the database file could not be written. The request that
// triggered the write must fail; the in-memory mutation is not durable.
var ErrIO = errors.New("database write failed")

// Store abstracts the persistence of the whole database document. There is no
// partial update and no query language: callers load the full document,
// transform it in memory, and save the full document back.
type Store interface {
	// Load returns the current document. A store with no persisted document
	// yet returns one with all collections empty and a nil error. Unparseable
	// content returns an error wrapping ErrCorruptData.
	Load() (*models.Database, error)
	// Save durably overwrites the entire persisted document. A failed write
	// returns an error wrapping ErrIO.
	Save(doc *models.Database) error
}

// FileStore persists the document as one JSON file on disk, the same flat
// pseudo-database layout the original deployment used.
type FileStore struct {
	path         string
	enableBackup bool
}

// NewFileStore creates a FileStore for the given file path. When enableBackup
// is set, the previous file is kept as <path>.bak on every save.
func NewFileStore(path string, enableBackup bool) *FileStore {
	return &FileStore{path: path, enableBackup: enableBackup}
}

// Load reads and parses the database file. A missing file is not an error:
// the document simply does not exist yet.
func (fs *FileStore) Load() (*models.Database, error) {
	fileData, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := &models.Database{}
			doc.Normalize()
			return doc, nil
		}
		log.Printf("ERROR: Failed to read database file '%s': %v", fs.path, err)
		return nil, fmt.Errorf("reading database file '%s': %w", fs.path, err)
	}

	doc := &models.Database{}
	if err := json.Unmarshal(fileData, doc); err != nil {
		log.Printf("CRITICAL: Failed to parse JSON data from database file '%s': %v", fs.path, err)
		return nil, fmt.Errorf("parsing database file '%s': %v: %w", fs.path, err, ErrCorruptData)
	}

	doc.Normalize()
	return doc, nil
}

// Save marshals the document and atomically replaces the database file
// (write to a temporary file, then rename over the original).
func (fs *FileStore) Save(doc *models.Database) error {
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("ERROR: Failed to marshal database state to JSON: %v", err)
		return fmt.Errorf("marshalling database: %v: %w", err, ErrIO)
	}

	tempFilePath := fs.path + ".tmp"
	backupFilePath := fs.path + ".bak"

	if err := os.WriteFile(tempFilePath, jsonData, 0644); err != nil {
		log.Printf("ERROR: Failed to write temporary database file '%s': %v", tempFilePath, err)
		return fmt.Errorf("writing temporary database file: %v: %w", err, ErrIO)
	}

	if fs.enableBackup {
		if _, err := os.Stat(fs.path); err == nil {
			if err := os.Rename(fs.path, backupFilePath); err != nil {
				// A failed backup should not abort the save itself.
				log.Printf("WARN: Failed to rename '%s' to '%s' for backup: %v. Proceeding with save.", fs.path, backupFilePath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Error checking status of database file '%s' before backup: %v", fs.path, err)
		}
	}

	if err := os.Rename(tempFilePath, fs.path); err != nil {
		log.Printf("ERROR: Failed to rename temporary file '%s' to '%s': %v", tempFilePath, fs.path, err)
		_ = os.Remove(tempFilePath)
		return fmt.Errorf("replacing database file: %v: %w", err, ErrIO)
	}

	return nil
}
