package gizmo

// Renderer draws handle geometry. It reads the handle configuration and
// opacity and produces no result.
type Renderer interface {
	DrawAxisHandle(handle *TranslationHandle)
	DrawPlaneHandle(handle *TranslationHandle)
}
