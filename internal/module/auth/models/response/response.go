package response

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Registered pairs the new account with a ready-to-use session token, so
// the client is signed in right after sign-up.
type Registered struct {
	User  Profile `json:"user"`
	Token Token   `json:"token"`
}

type Profile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ShopName        string `json:"shop_name,omitempty"`
	ShopDescription string `json:"shop_description,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Role            string `json:"role"`
	CreatedAt       string `json:"created_at"`
}
