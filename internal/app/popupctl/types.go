package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Confirm
	TextInput
	Link
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Help,
	Confirm,
	TextInput,
	Link,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Link,
	TextInput,
	Confirm,
	Help,
	Error,
}

// InputMode represents what the text input popup is collecting.
type InputMode int

const (
	// InputNone indicates no text input is active.
	InputNone InputMode = iota
	// InputSection collects a gallery section.
	InputSection
	// InputUploadPath collects the path of an image to upload.
	InputUploadPath
)
