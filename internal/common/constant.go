package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer
// session token on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// SessionCookieName is the cookie used as an alternative session token
// carrier for browser clients.
const SessionCookieName = "session"
