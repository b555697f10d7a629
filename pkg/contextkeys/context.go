package contextkeys

type contextKey string

// DBContextKey holds the request-scoped *gorm.DB.
const DBContextKey = contextKey("db")

// ClaimsContextKey holds the verified token claims.
const ClaimsContextKey = contextKey("claims")
