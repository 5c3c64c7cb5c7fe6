package fetch

// CatalogEntry describes a built-in subscription source.
type CatalogEntry struct {
	ID          string
	Name        string
	URL         string
	Output      string
	Description string
	Default     bool
}

// Catalog lists the built-in subscription sources available for
// selection. Entries marked Default are processed when no sources are
// configured.
var Catalog = map[string]CatalogEntry{
	"kejiland": {
		ID:          "kejiland",
		Name:        "Kejiland personal node list",
		URL:         "https://raw.githubusercontent.com/Graysongon/google/refs/heads/main/%E4%B8%AA%E4%BA%BA",
		Output:      "kejiland.txt",
		Description: "Mixed ss/vmess/vless node list published on GitHub.",
		Default:     true,
	},
	"freefq": {
		ID:          "freefq",
		Name:        "freefq v2 list",
		URL:         "https://raw.githubusercontent.com/freefq/free/master/v2",
		Output:      "freefq.txt",
		Description: "Community-maintained free node list.",
	},
	"v2rayfree": {
		ID:          "v2rayfree",
		Name:        "aiboboxx v2rayfree list",
		URL:         "https://raw.githubusercontent.com/aiboboxx/v2rayfree/main/v2",
		Output:      "v2rayfree.txt",
		Description: "Daily-updated free v2ray node list.",
	},
}
