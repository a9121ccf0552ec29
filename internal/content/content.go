// Package content models the site copy rendered into pages: hero text,
// install options, feature cards, and footer links. A default document ships
// embedded in the binary; a YAML file on disk can override it and is
// hot-reloaded when watching is enabled.
package content

// Site is the root content document.
type Site struct {
	Name        string `yaml:"name" validate:"required"`
	Tagline     string `yaml:"tagline" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	BaseURL     string `yaml:"base_url" validate:"required,url"`
	RepoURL     string `yaml:"repo_url" validate:"required,url"`

	Hero        Hero            `yaml:"hero"`
	Install     []InstallOption `yaml:"install" validate:"required,min=1,dive"`
	Features    []Feature       `yaml:"features" validate:"required,min=1,dive"`
	FooterLinks []LinkGroup     `yaml:"footer_links" validate:"dive"`
}

// Hero is the opening section of the home page.
type Hero struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title" validate:"required"`
	Lede    string `yaml:"lede" validate:"required"`
}

// InstallOption is one tab of the install section. Lines are literal shell
// commands shown in order; the first is the one offered to the clipboard.
type InstallOption struct {
	Label string   `yaml:"label" validate:"required"`
	Lines []string `yaml:"lines" validate:"required,min=1,dive,required"`
}

// Feature is one card in the feature grid. Art names a terminal screen
// rendered into the card's media region. Classes are extra style tokens the
// card places ahead of its structural ones.
type Feature struct {
	Eyebrow    string `yaml:"eyebrow"`
	Title      string `yaml:"title" validate:"required"`
	Body       string `yaml:"body"`
	Art        string `yaml:"art" validate:"omitempty,screen_art"`
	Compact    bool   `yaml:"compact"`
	FadeTop    bool   `yaml:"fade_top"`
	FadeBottom bool   `yaml:"fade_bottom"`
	Classes    string `yaml:"classes" validate:"omitempty,class_tokens"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Title string `yaml:"title" validate:"required"`
	Links []Link `yaml:"links" validate:"required,min=1,dive"`
}

// Link is a single navigation link. External links open in a new browsing
// context with the referrer suppressed.
type Link struct {
	Label    string `yaml:"label" validate:"required"`
	Href     string `yaml:"href" validate:"required"`
	External bool   `yaml:"external"`
}
