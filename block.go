package mdpdf

// Kind identifies the type of a layout block.
type Kind int

const (
	KindTitle Kind = iota
	KindSubtitle
	KindHeading
	KindSubheading
	KindBody
	KindBullet
	KindPlaceholder
	KindCaption
	KindSpacer
	KindImage
	KindRule
)

var kindNames = [...]string{
	KindTitle:       "title",
	KindSubtitle:    "subtitle",
	KindHeading:     "heading",
	KindSubheading:  "subheading",
	KindBody:        "body",
	KindBullet:      "bullet",
	KindPlaceholder: "placeholder",
	KindCaption:     "caption",
	KindSpacer:      "spacer",
	KindImage:       "image",
	KindRule:        "rule",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsText reports whether blocks of this kind carry flowing text.
func (k Kind) IsText() bool {
	return k <= KindCaption
}

// MarshalText lets outlines and YAML dumps print kinds by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is one renderable element of a translated document. Dimensions are
// in points.
type Block struct {
	Kind  Kind   `yaml:"kind"`
	Text  string `yaml:"text,omitempty"`
	Style Style  `yaml:"-"`

	// Spacer and rule row height.
	Height float64 `yaml:"height,omitempty"`

	Image *ImageAsset `yaml:"image,omitempty"`
	Rule  *Rule       `yaml:"rule,omitempty"`
}

// ImageAsset is a resolved, decodable image scaled to fit the text column.
type ImageAsset struct {
	Alt    string  `yaml:"alt,omitempty"`
	Path   string  `yaml:"path"`
	Format string  `yaml:"format"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rule is a horizontal separator line centred in the text column.
type Rule struct {
	Width     float64 `yaml:"width"`
	Thickness float64 `yaml:"thickness"`
	Color     [3]int  `yaml:"color,flow"`
}

// Metadata describes the document for the PDF info dictionary.
type Metadata struct {
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Subject  string   `yaml:"subject"`
	Keywords []string `yaml:"keywords"`
}

// Document is the ordered block sequence produced by Translate.
type Document struct {
	Meta   Metadata `yaml:"meta"`
	Blocks []Block  `yaml:"blocks"`
}

// Count returns the number of blocks of the given kind.
func (d Document) Count(kind Kind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}
