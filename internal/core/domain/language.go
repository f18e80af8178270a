package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// languageFamily groups every accepted identifier of one language with its extensions.
type languageFamily struct {
	canonical  string
	aliases    []string
	extensions []string
}

// families is the alias table.
var families = []languageFamily{
	{canonical: "python", aliases: []string{"python", "python2", "python3", "py"}, extensions: []string{"py", "pyi"}},
	{canonical: "javascript", aliases: []string{"js", "javascript"}, extensions: []string{"js"}},
	{canonical: "java", aliases: []string{"java"}, extensions: []string{"java"}},
	{canonical: "c", aliases: []string{"c"}, extensions: []string{"c"}},
	{canonical: "go", aliases: []string{"go", "golang"}, extensions: []string{"go"}},
	{canonical: "ocaml", aliases: []string{"ml", "ocaml"}, extensions: []string{"mli", "ml", "mly", "mll"}},
}

var aliasIndex = func() map[string]*languageFamily {
	idx := make(map[string]*languageFamily)
	for i := range families {
		for _, alias := range families[i].aliases {
			idx[alias] = &families[i]
		}
	}
	return idx
}()

func lookupLanguage(lang string) (*languageFamily, error) {
	family, ok := aliasIndex[lang]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrUnsupportedLanguage, "language is not supported"), "language", lang)
	}
	return family, nil
}

// Extensions returns the file extensions (without the leading dot) recognized for lang.
// The returned slice is a copy and may be modified by the caller.
func Extensions(lang string) ([]string, error) {
	family, err := lookupLanguage(lang)
	if err != nil {
		return nil, err
	}
	return slices.Clone(family.extensions), nil
}

// CanonicalLanguage maps an alias such as "py" or "golang" to its canonical name.
func CanonicalLanguage(lang string) (string, error) {
	family, err := lookupLanguage(lang)
	if err != nil {
		return "", err
	}
	return family.canonical, nil
}

// Languages returns every accepted language identifier, sorted.
func Languages() []string {
	names := make([]string, 0, len(aliasIndex))
	for alias := range aliasIndex {
		names = append(names, alias)
	}
	slices.Sort(names)
	return names
}
