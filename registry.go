package dock

import (
	"encoding/json"
	"fmt"
	"image/color"
	_ "image/png" // icon decoding
	"io/fs"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// AppDescriptor describes one application shown in the dock.
type AppDescriptor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`    // asset path resolved by LoadIcons
	CanOpen bool   `json:"canOpen"` // false renders the icon dimmed and inert
}

// Key returns the identity the dock uses for this entry's icon.
func (a AppDescriptor) Key() string {
	return a.ID + "-" + a.Name
}

type registryFile struct {
	Apps []AppDescriptor `json:"apps"`
}

// LoadRegistry parses an app registry of the form {"apps": [...]}.
// Entries without an id are assigned a random UUID; entries without a name
// are rejected.
func LoadRegistry(jsonData []byte) ([]AppDescriptor, error) {
	var file registryFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse app registry: %w", err)
	}
	for i := range file.Apps {
		app := &file.Apps[i]
		if app.Name == "" {
			return nil, fmt.Errorf("parse app registry: app %d: missing name", i)
		}
		if app.ID == "" {
			app.ID = uuid.NewString()
		}
	}
	return file.Apps, nil
}

// IconSet maps an AppDescriptor.Icon path to its decoded image.
type IconSet map[string]*ebiten.Image

// LoadIcons decodes the icon of every app from fsys. Icons that are missing
// or fail to decode are left out of the set and reported in debug mode; the
// dock draws a placeholder for them.
func LoadIcons(fsys fs.FS, apps []AppDescriptor) IconSet {
	icons := make(IconSet, len(apps))
	for _, app := range apps {
		if app.Icon == "" {
			continue
		}
		if _, ok := icons[app.Icon]; ok {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, app.Icon)
		if err != nil {
			debugf("icon %q for app %q: %v", app.Icon, app.ID, err)
			continue
		}
		icons[app.Icon] = img
	}
	return icons
}

// lookup returns the icon for path, or the magenta placeholder.
func (set IconSet) lookup(path string) *ebiten.Image {
	if img, ok := set[path]; ok && img != nil {
		return img
	}
	debugf("icon %q not loaded, using placeholder", path)
	return ensurePlaceholderIcon()
}

// placeholderIcon is created on first use. Scenes are single-threaded.
var placeholderIcon *ebiten.Image

func ensurePlaceholderIcon() *ebiten.Image {
	if placeholderIcon == nil {
		placeholderIcon = ebiten.NewImage(1, 1)
		placeholderIcon.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return placeholderIcon
}
