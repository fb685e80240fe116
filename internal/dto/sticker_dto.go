package dto

import "time"

type CreateStickerRequest struct {
	WorldId   int     `json:"world_id"`
	XPosition int     `json:"x_position"`
	YPosition int     `json:"y_position"`
	Scale     float64 `json:"scale"`
	ImageUrl  string  `json:"image_url" validate:"required"`
	Locked    bool    `json:"locked"`

	Title      *string `json:"title"`
	Author     *string `json:"author"`
	ReaderName *string `json:"reader_name"`
	DateRead   *string `json:"date_read"`
}

// UpdateStickerRequest is a partial update: nil fields are left untouched.
type UpdateStickerRequest struct {
	XPosition *int     `json:"x_position"`
	YPosition *int     `json:"y_position"`
	Scale     *float64 `json:"scale"`
	Locked    *bool    `json:"locked"`
}

type StickerResponse struct {
	Id        int     `json:"id"`
	WorldId   int     `json:"world_id"`
	XPosition int     `json:"x_position"`
	YPosition int     `json:"y_position"`
	Scale     float64 `json:"scale"`
	ImageUrl  string  `json:"image_url"`
	Locked    bool    `json:"locked"`

	Title      *string `json:"title"`
	Author     *string `json:"author"`
	ReaderName *string `json:"reader_name"`
	DateRead   *string `json:"date_read"`

	CreatedAt time.Time `json:"created_at"`
}
