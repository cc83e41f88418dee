package proto

import "time"

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Document struct {
	ID         string    `json:"id"`
	NoteID     string    `json:"note_id"`
	OwnerID    string    `json:"owner_id"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	StorageKey string    `json:"storage_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// auth

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpResponse struct {
	UserID    string `json:"user_id"`
	Confirmed bool   `json:"confirmed"`
}

type ConfirmEmailRequest struct {
	Token string `json:"token"`
}

type ConfirmEmailResponse struct{}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

type SignOutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type SignOutResponse struct{}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type GetUserRequest struct{}

type GetUserResponse struct {
	User *User `json:"user"`
}

// notes

type ListNotesRequest struct{}

type ListNotesResponse struct {
	Notes []*Note `json:"notes"`
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateNoteResponse struct {
	Note *Note `json:"note"`
}

type GetNoteRequest struct {
	ID string `json:"id"`
}

type GetNoteResponse struct {
	Note *Note `json:"note"`
}

type UpdateNoteRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteResponse struct {
	Note *Note `json:"note"`
}

type DeleteNoteRequest struct {
	ID string `json:"id"`
}

type DeleteNoteResponse struct{}

// documents

type ListDocumentsRequest struct {
	NoteID string `json:"note_id"`
}

type ListDocumentsResponse struct {
	Documents []*Document `json:"documents"`
}

type CreateDocumentRequest struct {
	NoteID     string `json:"note_id"`
	FileName   string `json:"file_name"`
	FileURL    string `json:"file_url"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	StorageKey string `json:"storage_key"`
}

type CreateDocumentResponse struct {
	Document *Document `json:"document"`
}

type DeleteDocumentRequest struct {
	ID string `json:"id"`
}

type DeleteDocumentResponse struct{}

type GetDownloadURLRequest struct {
	ID string `json:"id"`
}

type GetDownloadURLResponse struct {
	URL string `json:"url"`
}

// blob store

type CreateUploadURLRequest struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type CreateUploadURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type GetPublicURLRequest struct {
	Key string `json:"key"`
}

type GetPublicURLResponse struct {
	URL string `json:"url"`
}

type RemoveObjectRequest struct {
	Key string `json:"key"`
}

type RemoveObjectResponse struct{}
