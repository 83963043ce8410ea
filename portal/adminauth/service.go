package adminauth

// AuthService validates the fixed admin credential pair and issues
// session tokens. The credentials are configured strings compared
// verbatim; there is no user store behind them.
type AuthService struct {
	tokens   *TokenService
	username string
	password string
}

// NewAuthService creates the admin auth service.
func NewAuthService(tokens *TokenService, username, password string) *AuthService {
	return &AuthService{
		tokens:   tokens,
		username: username,
		password: password,
	}
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the submitted credentials and issues a session token.
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials()
	}
	if username != s.username || password != s.password {
		return nil, ErrInvalidCredentials()
	}

	token, _, err := s.tokens.Generate(username)
	if err != nil {
		return nil, ErrInvalidCredentials().WithCause(err)
	}

	return &LoginResponse{
		Message:  "Login successful",
		Token:    token,
		Username: username,
	}, nil
}
