package dto

import "time"

type CreateWorldRequest struct {
	Name      string `json:"name" validate:"required"`
	IsPrivate bool   `json:"is_private"`
}

// CreateWorldResponse is the only place an access code is ever returned; the
// creator sees it exactly once.
type CreateWorldResponse struct {
	Id         int       `json:"id"`
	Name       string    `json:"name"`
	IsPrivate  bool      `json:"is_private"`
	AccessCode *string   `json:"access_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type WorldResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

// ShowWorldResponse adds the access-gate verdict for the requesting session.
type ShowWorldResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	IsPrivate bool      `json:"is_private"`
	Editable  bool      `json:"editable"`
	CreatedAt time.Time `json:"created_at"`
}

// JoinWorldRequest accepts the field spellings different frontends have used
// for the access code.
type JoinWorldRequest struct {
	AccessCode    string `json:"access_code"`
	Code          string `json:"code"`
	AccessCodeAlt string `json:"accessCode"`
}

// RawCode returns the first non-empty spelling.
func (r *JoinWorldRequest) RawCode() string {
	if r.AccessCode != "" {
		return r.AccessCode
	}
	if r.Code != "" {
		return r.Code
	}
	return r.AccessCodeAlt
}
