package model

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Limits applied to account fields.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MaxDisplayName    = 50
	MaxBioLength      = 500
	MaxLinks          = 50
	MaxConnections    = 20
	MaxLinkTitle      = 100

	// MaxFollowing caps the out-degree of the follow graph.
	MaxFollowing = 5000
)

var usernameRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// NormalizeUsername lowercases a username for case-insensitive matching.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidUsername reports whether a (normalized) username is acceptable:
// 3-30 characters, alphanumeric plus underscore.
func ValidUsername(username string) bool {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return false
	}
	return usernameRe.MatchString(username)
}

// ValidLinkURL reports whether a link URL is an absolute http(s) URL.
func ValidLinkURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ConnectionType identifies the platform behind a profile connection.
// The set is closed; anything outside it is rejected at the edge.
type ConnectionType string

const (
	ConnectionYouTube   ConnectionType = "youtube"
	ConnectionTwitch    ConnectionType = "twitch"
	ConnectionGitHub    ConnectionType = "github"
	ConnectionTwitter   ConnectionType = "twitter"
	ConnectionInstagram ConnectionType = "instagram"
	ConnectionLinkedIn  ConnectionType = "linkedin"
	ConnectionDiscord   ConnectionType = "discord"
	ConnectionPSN       ConnectionType = "psn"
	ConnectionXbox      ConnectionType = "xbox"
	ConnectionWebsite   ConnectionType = "website"
)

// Valid reports whether the connection type is one of the known platforms.
func (t ConnectionType) Valid() bool {
	switch t {
	case ConnectionYouTube, ConnectionTwitch, ConnectionGitHub,
		ConnectionTwitter, ConnectionInstagram, ConnectionLinkedIn,
		ConnectionDiscord, ConnectionPSN, ConnectionXbox, ConnectionWebsite:
		return true
	}
	return false
}

// Label returns the display name for the platform. The switch is exhaustive
// over the closed set; unknown values fall back to the raw tag.
func (t ConnectionType) Label() string {
	switch t {
	case ConnectionYouTube:
		return "YouTube"
	case ConnectionTwitch:
		return "Twitch"
	case ConnectionGitHub:
		return "GitHub"
	case ConnectionTwitter:
		return "X (Twitter)"
	case ConnectionInstagram:
		return "Instagram"
	case ConnectionLinkedIn:
		return "LinkedIn"
	case ConnectionDiscord:
		return "Discord"
	case ConnectionPSN:
		return "PlayStation"
	case ConnectionXbox:
		return "Xbox"
	case ConnectionWebsite:
		return "Website"
	}
	return string(t)
}

// Link is one entry on a profile page.
type Link struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Clicks int64  `json:"clicks"`
}

// Connection ties a profile to an account on another platform.
type Connection struct {
	Type  ConnectionType `json:"type"`
	Value string         `json:"value"`
}

// AccountStats holds the denormalized counters for an account.
// Followers and Following always equal the cardinality of the corresponding
// ID sets; Views and Clicks are monotonic best-effort counters.
type AccountStats struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Views     int64 `json:"views"`
	Clicks    int64 `json:"clicks"`
}

// Account is a user's profile record. Credentials live with the identity
// layer; Hash is never serialized.
type Account struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Bio         string       `json:"bio"`
	Theme       string       `json:"theme"`
	Links       []Link       `json:"links"`
	Connections []Connection `json:"connections"`
	Followers   []string     `json:"followers"`
	Following   []string     `json:"following"`
	Stats       AccountStats `json:"stats"`
	Hash        *string      `json:"-"`
	CreatedOn   time.Time    `json:"created_on"`
	UpdatedOn   time.Time    `json:"updated_on"`
}

// IsFollowing reports whether the account follows the given account ID.
func (a *Account) IsFollowing(id string) bool {
	for _, f := range a.Following {
		if f == id {
			return true
		}
	}
	return false
}

// PublicConnection is a connection as rendered on a public profile, with
// the platform's display label resolved.
type PublicConnection struct {
	Type  ConnectionType `json:"type"`
	Label string         `json:"label"`
	Value string         `json:"value"`
}

// PublicAccount is the view of an account exposed to other users.
type PublicAccount struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	DisplayName string             `json:"display_name"`
	Bio         string             `json:"bio"`
	Theme       string             `json:"theme"`
	Links       []Link             `json:"links"`
	Connections []PublicConnection `json:"connections"`
	Stats       AccountStats       `json:"stats"`
}

// ToPublic strips private fields from an account.
func (a *Account) ToPublic() *PublicAccount {
	connections := make([]PublicConnection, 0, len(a.Connections))
	for _, c := range a.Connections {
		connections = append(connections, PublicConnection{
			Type:  c.Type,
			Label: c.Type.Label(),
			Value: c.Value,
		})
	}
	return &PublicAccount{
		ID:          a.ID,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Bio:         a.Bio,
		Theme:       a.Theme,
		Links:       a.Links,
		Connections: connections,
		Stats:       a.Stats,
	}
}

// TokenClaims represents extracted JWT claims
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}
