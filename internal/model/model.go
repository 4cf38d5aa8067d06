package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Event is the detail-page snapshot of a single event. The backend owns
// interestingCount/saveCount; the client only mirrors them (and patches them
// locally while a like/save toggle is settling).
type Event struct {
	ID                     string     `json:"_id"`
	Title                  string     `json:"title"`
	BannerURL              string     `json:"bannerUrl,omitempty"`
	StartDate              time.Time  `json:"startDate"`
	EndDate                time.Time  `json:"endDate"`
	Location               string     `json:"location,omitempty"`
	Organization           string     `json:"organization,omitempty"`
	ShortDescription       string     `json:"shortDescription,omitempty"`
	Content                string     `json:"content,omitempty"`
	RegistrationFormURL    string     `json:"registrationFormUrl,omitempty"`
	FormSubmissionDeadline *time.Time `json:"formSubmissionDeadline,omitempty"`
	InterestingCount       int        `json:"interestingCount"`
	SaveCount              int        `json:"saveCount"`
}

// UserProfile is fetched once per app start for the navbar avatar menu.
type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Claims are the identity attributes embedded in the auth token. The client
// decodes them without verifying the signature; the server verifies on every
// request anyway.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool { return c != nil && c.Role == "admin" }

// Session is the per-render view of the persisted auth state.
//
// LoggedIn is computed from token presence alone while Claims may be nil when
// the token fails to decode. A corrupt-but-present token therefore yields
// LoggedIn==true with Claims==nil; both signals are deliberately independent
// ("has a token" vs "has valid claims").
type Session struct {
	Token    string
	LoggedIn bool
	Claims   *Claims
}
