package newsdoc

// Config holds the tag descriptors that drive extraction and the settings
// used to format the result for output.
type Config struct {
	// MainTag selects containers whose direct paragraph children are collected.
	MainTag Tag

	// SecondaryTags select elements that may hold paragraphs and are promoted
	// to main containers before collection.
	SecondaryTags []Tag

	// TextTag selects paragraph elements.
	TextTag Tag

	CharactersPerLine int
	ParagraphsIndent  string
	DefaultFileName   string
	FileExtension     string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		MainTag: MustTag("div", AnyClass),
		SecondaryTags: []Tag{
			MustTag("span", AnyClass),
			MustTag("li", AnyClass),
			MustTag("blockquote", AnyClass),
		},
		TextTag:           MustTag("p", AnyClass),
		CharactersPerLine: 80,
		ParagraphsIndent:  "\n\n",
		DefaultFileName:   "article",
		FileExtension:     "txt",
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.MainTag.IsZero() {
		return Errorf(EINVALID, "main tag required")
	}
	if c.TextTag.IsZero() {
		return Errorf(EINVALID, "text tag required")
	}
	for i, t := range c.SecondaryTags {
		if t.IsZero() {
			return Errorf(EINVALID, "secondary tag %d is empty", i)
		}
	}
	if c.CharactersPerLine <= 0 {
		return Errorf(EINVALID, "characters per line must be positive, got %d", c.CharactersPerLine)
	}
	if c.DefaultFileName == "" {
		return Errorf(EINVALID, "default file name required")
	}
	if c.FileExtension == "" {
		return Errorf(EINVALID, "file extension required")
	}
	return nil
}
