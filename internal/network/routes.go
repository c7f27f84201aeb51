package network

// Gateway API paths shared by [Gateway] and the development gateway.
const (
	RouteInstallations = "/api/v1/installations"
	RouteIdentity      = "/api/v1/identities/{address}"
	RouteConversations = "/api/v1/conversations"
	RouteMessages      = "/api/v1/conversations/{topic}/messages"
	RouteStream        = "/api/v1/conversations/stream"

	// HeaderEnvironment carries the [models.Environment] of every request.
	HeaderEnvironment = "X-Network-Env"
)
