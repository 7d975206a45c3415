package standin

import (
	"sandboxenv/internal/capability"
)

// WebviewFactory cannot render anything.
type WebviewFactory struct{}

var _ capability.WebviewFactory = (*WebviewFactory)(nil)

// NewWebviewFactory returns the webview stand-in.
func NewWebviewFactory() *WebviewFactory {
	return &WebviewFactory{}
}

// ActiveWebview is always nil.
func (*WebviewFactory) ActiveWebview() capability.Webview {
	return nil
}

func (*WebviewFactory) CreateWebviewElement(string, capability.WebviewOptions, capability.WebviewContentOptions, *capability.WebviewExtensionDescription) (capability.WebviewElement, error) {
	return nil, capability.NotImplemented(capability.WebviewService, "createWebviewElement")
}

func (*WebviewFactory) CreateWebviewOverlay(string, capability.WebviewOptions, capability.WebviewContentOptions, *capability.WebviewExtensionDescription) (capability.WebviewOverlay, error) {
	return nil, capability.NotImplemented(capability.WebviewService, "createWebviewOverlay")
}
