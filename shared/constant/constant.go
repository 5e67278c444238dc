package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	AppVersion = "1.0.0"
)

const (
	RequestParamTodoID = "todo_id"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelToolScopeName       = "tool"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseBannerMessage = "Welcome to the Todo API"
	ResponseDocsPath      = "/docs"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
