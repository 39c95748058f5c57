package types

// SessionName identifies a stored simulation session.
type SessionName string

// String returns the string form of the session name.
func (n SessionName) String() string { return string(n) }

// Fingerprint is a short identifier for quaternions and derived keys
// presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Role is the speaker of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)
