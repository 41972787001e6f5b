package auth

// OAuthIdentity is the user information returned by an OAuth provider.
type OAuthIdentity struct {
	Email       string
	DisplayName *string
	PhotoURL    *string
	ProviderID  string
}
