// Package deck loads the ordered set of panels a swipedeck session shows.
package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Slide is one panel of a deck. Slides render themselves into a cell
// region; the carousel controller decides which region is visible.
type Slide interface {
	Title() string
	Render(width, height int) string
}

// Deck is an ordered, immutable set of slides loaded from one source.
type Deck struct {
	Path   string
	Slides []Slide
}

// Count returns the number of slides.
func (d *Deck) Count() int { return len(d.Slides) }

var textExtensions = map[string]bool{
	".md":  true,
	".txt": true,
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Load builds a deck from a file or directory. Directories contribute
// their text and image files in lexical order; unknown extensions are
// skipped. An empty result is an error: a deck needs at least one slide.
func Load(path string) (*Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if textExtensions[ext] || imageExtensions[ext] {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(files)
	} else {
		files = []string{path}
	}

	deck := &Deck{Path: path}
	for _, file := range files {
		slide, err := loadSlide(file)
		if err != nil {
			return nil, fmt.Errorf("load slide %s: %w", filepath.Base(file), err)
		}
		deck.Slides = append(deck.Slides, slide)
	}

	if len(deck.Slides) == 0 {
		return nil, fmt.Errorf("no slides found in %s", path)
	}
	return deck, nil
}

func loadSlide(path string) (Slide, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if imageExtensions[ext] {
		return loadImageSlide(path)
	}
	return loadTextSlide(path)
}

// slideTitle derives a display title from a file name: the extension goes,
// underscores and dashes read as spaces, leading sort prefixes are kept.
func slideTitle(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// Demo returns the built-in deck shown when no path is configured.
func Demo() *Deck {
	return &Deck{
		Path: "demo",
		Slides: []Slide{
			NewTextSlide("welcome", strings.Join([]string{
				"swipedeck",
				"",
				"A swipe-driven panel deck for the terminal.",
				"",
				"Drag with the mouse to pull the next panel in,",
				"or flick to commit the move early.",
			}, "\n"), 0),
			NewTextSlide("navigation", strings.Join([]string{
				"Navigation",
				"",
				"h / left    previous panel",
				"l / right   next panel",
				"g           jump to a panel by number",
				"G           last panel",
				"wheel       previous / next",
			}, "\n"), 0),
			NewTextSlide("decks", strings.Join([]string{
				"Bring your own deck",
				"",
				"Point swipedeck at a directory of .md, .txt,",
				".png or .jpg files: every file becomes a panel,",
				"in lexical order.",
				"",
				"  swipedeck ~/talks/gophercon",
			}, "\n"), 0),
			NewTextSlide("autoplay", strings.Join([]string{
				"Autoplay",
				"",
				"Set autoplay_ms in the config to advance",
				"automatically. Touching the deck pauses it;",
				"letting go resumes.",
			}, "\n"), 0),
		},
	}
}
