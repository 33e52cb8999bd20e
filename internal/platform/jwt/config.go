package jwtmw

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
// The middleware and the server wiring read the same key.
const EnvKeyJWTSecret = "JWT_SECRET"
