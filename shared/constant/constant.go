package constant

import (
	"time"
)

const (
	RequestParamID       = "id"
	RequestParamDate     = "date"
	RequestParamMonth    = "month"
	RequestParamLimit    = "limit"
	RequestParamLocation = "location"
)

const (
	DefaultValueRecentLimit = 10
	MaxValueRecentLimit     = 50
)

const (
	FieldCreatedAt = "created_at"
)

const (
	PqErrorCodeUniqueViolation  = "23505"
	PqErrorCodeCheckViolation   = "23514"
	PqErrorCodeNotNullViolation = "23502"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
	MonthFormat    = "2006-01"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseHealthy                   = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
