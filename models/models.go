package models

// JSON field names in this package are part of the wire and file contract
// with the existing SPA client: the database file and every response use the
// exact capitalization below (UserName, NameOne, ...; messages are lowercase).

// User is a credential + identity record. The password is stored and compared
// as plain text. That is a known weakness of this system, kept deliberately
// for behavioral compatibility; see DESIGN.md.
type User struct {
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
}

// Profile is the directory-facing identity record. FullName is computed on
// read and never persisted.
type Profile struct {
	UserName  string `json:"UserName"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	JobTitle  string `json:"JobTitle"`
	UserType  string `json:"UserType"`
	Mentoring string `json:"Mentoring"`
}

// FullName returns the display name derived from the profile's name fields.
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ProfileView is a Profile augmented with the computed FullName field, the
// shape every profile-returning endpoint responds with.
type ProfileView struct {
	Profile
	FullName string `json:"FullName"`
}

// NewProfileView builds the response shape for a stored profile.
func NewProfileView(p Profile) ProfileView {
	return ProfileView{Profile: p, FullName: p.FullName()}
}

// Connection is a directional follow edge: NameOne follows NameTwo. The
// ordered pair is significant; the reverse pair is a distinct record.
type Connection struct {
	ConnectionID int    `json:"ConnectionID"`
	NameOne      string `json:"NameOne"`
	NameTwo      string `json:"NameTwo"`
}

// Message is immutable once created. ID is derived from the wall clock in
// milliseconds at creation; Timestamp is an ISO-8601 instant.
type Message struct {
	ID        int64  `json:"id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Database is the root document persisted as a single JSON file. It is the
// sole source of truth; every mutation rewrites the whole document.
type Database struct {
	Profiles    []Profile    `json:"profiles"`
	Connections []Connection `json:"connections"`
	Users       []User       `json:"users"`
	Messages    []Message    `json:"messages"`
}

// Normalize replaces nil collections with empty ones. Older database files
// predate the messages feature and may lack that key entirely; a missing or
// null collection must behave as empty.
func (d *Database) Normalize() {
	if d.Profiles == nil {
		d.Profiles = []Profile{}
	}
	if d.Connections == nil {
		d.Connections = []Connection{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Messages == nil {
		d.Messages = []Message{}
	}
}
