package logo

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"

	"logo-studio/render"
)

// Font catalog built from the fonts installed on the system.
// The catalog maps display names to font files, and hands out gg text
// faces the render package can draw with.

const FontCacheDirName = "font-cache"

// DefaultFontName is the catalog entry that stands for "whatever sans
// serif this machine has".
const DefaultFontName = "Default"

var defaultFamilyPreference = []string{
	"dejavu sans",
	"liberation sans",
	"noto sans",
	"arial",
	"helvetica",
	"ubuntu",
	"cantarell",
}

type FontEntry struct {
	Name string
	Path string
}

type faceKey struct {
	path string
	size float64
}

type FontCatalog struct {
	Entries []FontEntry

	defaultPath string

	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

var TheFontCatalog FontCatalog

func InitFontCatalog(logger *log.Logger) error {
	fc := &TheFontCatalog

	fc.sources = make(map[string]*text.FontSource)
	fc.faces = make(map[faceKey]text.Face)

	cacheDir := ""
	if resolved, err := RelativePath(FontCacheDirName); err == nil {
		cacheDir = resolved
	}

	footprints, err := fontscan.SystemFonts(logger, cacheDir)

	if err != nil || len(footprints) == 0 {
		logger.Printf("system font scan failed, walking font directories : %v", err)
		fc.Entries = walkFontDirs()
	} else {
		fc.Entries = entriesFromFootprints(footprints)
	}

	if len(fc.Entries) == 0 {
		return fmt.Errorf("no usable fonts found on this system")
	}

	fc.defaultPath = pickDefaultFont(fc.Entries)

	return nil
}

func entriesFromFootprints(footprints []fontscan.Footprint) []FontEntry {
	seen := make(map[string]bool)

	var entries []FontEntry

	for _, fp := range footprints {
		path := fp.Location.File

		if !isFontFile(path) {
			continue
		}

		family := strings.TrimSpace(string(fp.Family))
		if family == "" {
			continue
		}

		name := titleCase(family)

		if seen[name] {
			continue
		}
		seen[name] = true

		entries = append(entries, FontEntry{Name: name, Path: path})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// walkFontDirs is the fallback when the scanner finds nothing. Names
// come from file basenames like the directories give them to us.
func walkFontDirs() []FontEntry {
	var dirs []string

	switch {
	case isWindows():
		dirs = append(dirs, filepath.Join(os.Getenv("WINDIR"), "Fonts"))
	default:
		dirs = append(dirs,
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			"/Library/Fonts",
			"/System/Library/Fonts",
		)
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs,
				filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local/share/fonts"),
				filepath.Join(home, "Library/Fonts"),
			)
		}
	}

	seen := make(map[string]bool)

	var entries []FontEntry

	for _, dir := range dirs {
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}

			base := filepath.Base(path)
			name := strings.TrimSuffix(base, filepath.Ext(base))

			if seen[name] {
				return nil
			}
			seen[name] = true

			entries = append(entries, FontEntry{Name: name, Path: path})
			return nil
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func isWindows() bool {
	return os.Getenv("WINDIR") != ""
}

func titleCase(s string) string {
	words := strings.Fields(s)

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

func pickDefaultFont(entries []FontEntry) string {
	for _, pref := range defaultFamilyPreference {
		for _, entry := range entries {
			if strings.ToLower(entry.Name) == pref {
				return entry.Path
			}
		}
	}

	return entries[0].Path
}

// Names lists the catalog for the font menu item, Default first.
func (fc *FontCatalog) Names() []string {
	names := make([]string, 0, len(fc.Entries)+1)

	names = append(names, DefaultFontName)

	for _, entry := range fc.Entries {
		names = append(names, entry.Name)
	}

	return names
}

func (fc *FontCatalog) PathByName(name string) (string, bool) {
	if name == "" || name == DefaultFontName {
		return fc.defaultPath, fc.defaultPath != ""
	}

	for _, entry := range fc.Entries {
		if entry.Name == name {
			return entry.Path, true
		}
	}

	return "", false
}

func (fc *FontCatalog) source(path string) (*text.FontSource, error) {
	if source, ok := fc.sources[path]; ok {
		return source, nil
	}

	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}

	fc.sources[path] = source

	return source, nil
}

// ResolveFace turns a design's font choice into a drawable face.
// A design with an explicit FontPath wins over the catalog lookup, so
// designs saved on another machine still render if the file moved with
// them.
func (fc *FontCatalog) ResolveFace(design render.Design) (text.Face, error) {
	path := design.FontPath

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	if path == "" {
		resolved, ok := fc.PathByName(design.FontName)
		if !ok {
			return nil, fmt.Errorf("unknown font %q", design.FontName)
		}
		path = resolved
	}

	if path == "" {
		return nil, render.ErrNoFont
	}

	key := faceKey{path: path, size: design.FontSize}

	if face, ok := fc.faces[key]; ok {
		return face, nil
	}

	source, err := fc.source(path)
	if err != nil {
		return nil, err
	}

	face := source.Face(design.FontSize)
	fc.faces[key] = face

	return face, nil
}
