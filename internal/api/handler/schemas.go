package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// credentialsRequest is shared by signup and login; both take email+password.
type credentialsRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type createPostRequest struct {
	// Text is capped at 1 MiB. The service layer re-checks the byte length;
	// this tag rejects oversized payloads at the edge.
	Text string `json:"text" validate:"required,max=1048576"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type postResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	OwnerID string `json:"owner_id"`
}

type postListResponse struct {
	Posts []postResponse `json:"posts"`
}

type messageResponse struct {
	Message string `json:"message"`
}
