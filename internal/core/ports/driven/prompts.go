package driven

// PromptStore provides access to the vision extraction prompt texts.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt text for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt is
	// required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptExtractionContract is the shared multi-image extraction
	// contract sent to the vision model before any profile suffix.
	// This prompt has no format placeholders.
	PromptExtractionContract = "extraction_contract"
)
