package domain

import "encoding/json"

// Profile is the user record the RunPro API returns at login. Raw preserves
// the full upstream document so the dashboard sees every field the backend
// sent; Role, Name and Image are the fields the gateway itself interprets.
type Profile struct {
	Role  string
	Name  string
	Image string
	Raw   json.RawMessage
}

// ParseProfile decodes an upstream user document. Malformed JSON or a
// missing role yields ok=false; callers treat that as an absent profile
// rather than an error.
func ParseProfile(raw []byte) (Profile, bool) {
	var fields struct {
		Role  string `json:"role"`
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Profile{}, false
	}
	if fields.Role == "" {
		return Profile{}, false
	}
	return Profile{
		Role:  fields.Role,
		Name:  fields.Name,
		Image: fields.Image,
		Raw:   append(json.RawMessage(nil), raw...),
	}, true
}

// Snapshot is the current contents of one stored session. Credential and
// Profile are written together at login and cleared together at logout or
// revocation; a snapshot holding exactly one of them counts as not
// authenticated.
type Snapshot struct {
	Credential string
	Profile    *Profile
}

// Authenticated reports whether both the credential and the profile are
// present.
func (s Snapshot) Authenticated() bool {
	return s.Credential != "" && s.Profile != nil
}

// AuthorizedFor reports whether the session's role is allowed by the given
// policy. An absent profile is never authorized.
func (s Snapshot) AuthorizedFor(p Policy) bool {
	return s.Profile != nil && p.Allows(s.Profile.Role)
}

// LoginResult is what a successful login hands back to the dashboard.
type LoginResult struct {
	Token    string
	Profile  Profile
	Redirect string
}

// Audit event kinds recorded for every session-lifecycle decision.
const (
	AuditLoginGranted   = "login_granted"
	AuditLoginDenied    = "login_denied"
	AuditLogout         = "logout"
	AuditSessionRevoked = "session_revoked"
)

// AuditEvent is one session-lifecycle decision worth keeping.
type AuditEvent struct {
	Kind       string
	Identifier string
	Role       string
	Reason     string
}
