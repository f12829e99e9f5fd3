package auth

const (
	RequesterClaimsCtxKey = "pvbu-requesterClaims"
)

const (
	tokenIssuer = "pvbu"
	jtiPrefix   = "jti:"
)
