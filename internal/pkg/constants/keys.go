package constants

// Viper configuration keys.
const (
	ViperHTTPAddr    = "http.addr"
	ViperPostgresDSN = "postgres.dsn"
	ViperBadgerDir   = "badger.dir"
	ViperJWTSecret   = "auth.jwt_secret"
	ViperTimezone    = "app.timezone"
	ViperLogDev      = "log.dev"
)

// CtxKeyUser is the echo context key the auth middleware stores the
// parsed claims under.
const CtxKeyUser = "auth_user"
