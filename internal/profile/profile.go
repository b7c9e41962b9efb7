package profile

// Profile defines what a generate run writes besides the game assets.
type Profile struct {
	Name          string
	PreviewScale  int    // nearest-neighbour enlargement for previews; 0 = no previews
	PreviewFormat string // registry format name for previews
	PreviewDir    string // preview output directory, relative to the game directory
}

// Previews reports whether the profile writes preview images.
func (p Profile) Previews() bool { return p.PreviewScale > 1 }

// Built-in profiles.
var profiles = map[string]Profile{
	"default": {
		Name: "default",
	},
	"preview": {
		Name:          "preview",
		PreviewScale:  4,
		PreviewFormat: "png",
		PreviewDir:    "previews",
	},
	"preview-bmp": {
		Name:          "preview-bmp",
		PreviewScale:  4,
		PreviewFormat: "bmp",
		PreviewDir:    "previews",
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name // preserve requested name
	return p
}

// Names returns the built-in profile names.
func Names() []string {
	return []string{"default", "preview", "preview-bmp"}
}
