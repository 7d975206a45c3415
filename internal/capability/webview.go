package capability

import (
	"sandboxenv/internal/resource"
)

// WebviewOptions configure the webview container.
type WebviewOptions struct {
	EnableFindWidget         bool
	RetainContextWhenHidden  bool
	TryRestoreScrollPosition bool
}

// WebviewContentOptions configure what the webview content may do.
type WebviewContentOptions struct {
	AllowScripts       bool
	AllowForms         bool
	LocalResourceRoots []resource.URI
}

// WebviewExtensionDescription names the extension owning a webview.
type WebviewExtensionDescription struct {
	ID       string
	Location resource.URI
}

// Webview is a rendered HTML surface.
type Webview interface {
	ID() string
	HTML() string
	SetHTML(html string)
	Dispose()
}

// WebviewElement is a webview mounted directly into a container.
type WebviewElement interface {
	Webview
	MountTo(parent string) error
}

// WebviewOverlay is a webview positioned over other content.
type WebviewOverlay interface {
	Webview
	ClaimOwner(owner string)
	ReleaseOwner(owner string)
}

// WebviewFactory creates webviews.
type WebviewFactory interface {
	ActiveWebview() Webview
	CreateWebviewElement(id string, options WebviewOptions, content WebviewContentOptions, ext *WebviewExtensionDescription) (WebviewElement, error)
	CreateWebviewOverlay(id string, options WebviewOptions, content WebviewContentOptions, ext *WebviewExtensionDescription) (WebviewOverlay, error)
}
