package db

import (
	"log"
	"sync"
	"time"

	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/models"
)

// Database is the service layer over a Store. Every operation performs a full
// document load, an in-memory filter/transform/mutate, and (for mutations) a
// full document save.
//
// The original implementation had no concurrency control, so two concurrent
// mutations could interleave and the second save would silently overwrite the
// first writer's changes. The single mutex below serializes every
// read-modify-write cycle against the store, which is the minimal fix for
// that lost-update race. This is a deliberate deviation; see DESIGN.md.
type Database struct {
	store Store
	mu    sync.Mutex
}

// NewDatabase creates a Database backed by a file store at the configured
// path. It performs an initial load so a corrupt database file fails startup
// instead of being discovered (or clobbered) on the first request.
func NewDatabase(cfg *config.Config) (*Database, error) {
	db := NewDatabaseWithStore(NewFileStore(cfg.DbFilePath, cfg.EnableBackup))

	log.Printf("INFO: Initializing database with file: %s", cfg.DbFilePath)
	doc, err := db.store.Load()
	if err != nil {
		log.Printf("ERROR: Database load failed with critical error: %v", err)
		return nil, err
	}
	log.Printf("INFO: Successfully loaded database from %s. Users: %d, Profiles: %d, Connections: %d, Messages: %d",
		cfg.DbFilePath, len(doc.Users), len(doc.Profiles), len(doc.Connections), len(doc.Messages))

	return db, nil
}

// NewDatabaseWithStore creates a Database over an arbitrary Store. Production
// code uses a FileStore; tests may inject other implementations.
func NewDatabaseWithStore(store Store) *Database {
	return &Database{store: store}
}

// timestampLayout matches the original ISO-8601 instants with millisecond
// precision, e.g. "2026-08-31T12:00:00.000Z".
const timestampLayout = "2006-01-02T15:04:05.000Z"

// --- Authentication ---

// Authenticate scans the users collection for an exact, case-sensitive match
// of both username and password. Empty or missing values never match. The
// comparison is against the stored plain-text password; see DESIGN.md for why
// this is preserved rather than fixed.
func (db *Database) Authenticate(username, password string) (models.User, bool, error) {
	if username == "" || password == "" {
		return models.User{}, false, nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return models.User{}, false, err
	}

	for _, user := range doc.Users {
		if user.UserName == username && user.Password == password {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

// --- Profile directory ---

// AllProfiles returns every profile with its computed FullName.
func (db *Database) AllProfiles() ([]models.ProfileView, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}

	views := make([]models.ProfileView, 0, len(doc.Profiles))
	for _, profile := range doc.Profiles {
		views = append(views, models.NewProfileView(profile))
	}
	return views, nil
}

// ProfileByUserName returns a zero- or one-element slice containing the
// profile with the exact (case-sensitive) username. The slice shape, rather
// than a bare object or null, is a compatibility contract with the original
// consumer.
func (db *Database) ProfileByUserName(username string) ([]models.ProfileView, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}

	for _, profile := range doc.Profiles {
		if profile.UserName == username {
			return []models.ProfileView{models.NewProfileView(profile)}, nil
		}
	}
	return []models.ProfileView{}, nil
}

// SearchProfiles returns the profiles matching the given raw content query
// parts (see query.go for the syntax). An empty query matches everything,
// making this a superset of AllProfiles.
func (db *Database) SearchProfiles(contentQuery []string) ([]models.ProfileView, error) {
	parsedQuery, err := ParseContentQuery(contentQuery)
	if err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}

	views := make([]models.ProfileView, 0, len(doc.Profiles))
	for _, profile := range doc.Profiles {
		match, err := EvaluateContentQuery(profile, parsedQuery)
		if err != nil {
			// A condition that cannot be evaluated against this profile
			// excludes it rather than failing the whole request.
			log.Printf("WARN: Error evaluating content query for profile '%s', skipping: %v", profile.UserName, err)
			continue
		}
		if match {
			views = append(views, models.NewProfileView(profile))
		}
	}
	return views, nil
}

// --- Connections ---

// InsertConnectionResult reports the outcome of a connection insert in the
// response-body shape expected by the client.
type InsertConnectionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AllConnections returns every connection record in insertion order.
func (db *Database) AllConnections() ([]models.Connection, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Connections, nil
}

// InsertConnection appends a directed follow edge nameOne -> nameTwo.
//
// A self-connection is rejected as a validation failure. An exact ordered
// pair that already exists is an idempotent no-op reported as success with
// "Already connected"; the reverse pair is a distinct edge and inserts
// normally. The new ConnectionID is max(existing)+1, or 1 for an empty
// collection. Neither username is validated against users or profiles;
// dangling references are allowed by the original contract.
func (db *Database) InsertConnection(nameOne, nameTwo string) (InsertConnectionResult, error) {
	if nameOne == nameTwo {
		return InsertConnectionResult{Success: false, Message: "Cannot connect to yourself"}, nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return InsertConnectionResult{}, err
	}

	for _, conn := range doc.Connections {
		if conn.NameOne == nameOne && conn.NameTwo == nameTwo {
			return InsertConnectionResult{Success: true, Message: "Already connected"}, nil
		}
	}

	newID := 1
	for _, conn := range doc.Connections {
		if conn.ConnectionID >= newID {
			newID = conn.ConnectionID + 1
		}
	}

	doc.Connections = append(doc.Connections, models.Connection{
		ConnectionID: newID,
		NameOne:      nameOne,
		NameTwo:      nameTwo,
	})

	if err := db.store.Save(doc); err != nil {
		return InsertConnectionResult{}, err
	}

	log.Printf("INFO: Created Connection ID %d: %s -> %s", newID, nameOne, nameTwo)
	return InsertConnectionResult{Success: true, Message: "Connected"}, nil
}

// --- Messaging ---

// MessagesBetween returns every message exchanged between the two users, in
// either direction, preserving insertion order. Messages are appended at
// creation and never reordered, so insertion order is chronological.
func (db *Database) MessagesBetween(user1, user2 string) ([]models.Message, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	for _, msg := range doc.Messages {
		if (msg.Sender == user1 && msg.Receiver == user2) ||
			(msg.Sender == user2 && msg.Receiver == user1) {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

// SendMessage appends a new message with a wall-clock-derived id and the
// current timestamp. No validation on content length, on sender or receiver
// existing, or on duplicate sends: every call creates a new record.
func (db *Database) SendMessage(sender, receiver, content string) (models.Message, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.store.Load()
	if err != nil {
		return models.Message{}, err
	}

	now := time.Now().UTC()
	id := now.UnixMilli()
	// Two sends inside the same millisecond would collide; nudge the id past
	// the last one so ids stay strictly increasing.
	if n := len(doc.Messages); n > 0 && id <= doc.Messages[n-1].ID {
		id = doc.Messages[n-1].ID + 1
	}

	msg := models.Message{
		ID:        id,
		Sender:    sender,
		Receiver:  receiver,
		Content:   content,
		Timestamp: now.Format(timestampLayout),
	}
	doc.Messages = append(doc.Messages, msg)

	if err := db.store.Save(doc); err != nil {
		return models.Message{}, err
	}

	log.Printf("INFO: Stored message %d: %s -> %s", msg.ID, sender, receiver)
	return msg, nil
}
