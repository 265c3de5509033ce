// Package naming provides the string transforms used to derive class names,
// namespaces, file paths and view identifiers from user input.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamespaceSeparator separates PHP namespace segments.
const NamespaceSeparator = `\`

// ResourceSuffix is appended to resource names that lack it.
const ResourceSuffix = "Resource"

// identifierRegex matches a single PHP class or namespace segment.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// TrimSeparators removes path separators and whitespace from both ends.
func TrimSeparators(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '/' || r == '\\' || unicode.IsSpace(r)
	})
}

// NormalizeName trims separators and converts forward slashes to the
// namespace separator. Applying it twice yields the same result.
func NormalizeName(s string) string {
	return strings.ReplaceAll(TrimSeparators(s), "/", NamespaceSeparator)
}

// Split returns the segment after the last namespace separator and
// everything before it. The prefix is empty when there is no separator.
func Split(name string) (class, prefix string) {
	i := strings.LastIndex(name, NamespaceSeparator)
	if i < 0 {
		return name, ""
	}
	return name[i+len(NamespaceSeparator):], name[:i]
}

// Segments splits a normalized name into its namespace segments.
func Segments(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, NamespaceSeparator)
}

// Studly converts s to class-style casing: hyphens, underscores and spaces
// become word breaks and every word starts with an upper-case letter.
// Existing capitals are preserved, so "userResource" becomes "UserResource".
func Studly(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, word := range strings.Fields(s) {
		b.WriteString(caser.String(word))
	}
	return b.String()
}

// Kebab converts s to hyphenated lower-case. A hyphen is inserted before
// every upper-case letter that is not the first character, so
// "UserResource" becomes "user-resource".
func Kebab(s string) string {
	if isLower(s) {
		return s
	}

	caser := cases.Title(language.Und, cases.NoLower)
	s = strings.Join(strings.Fields(caser.String(s)), "")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isLower(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// NormalizeResource converts a resource reference to class-style casing per
// segment and makes sure it ends with ResourceSuffix exactly once.
func NormalizeResource(s string) string {
	segments := strings.FieldsFunc(TrimSeparators(s), func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(segments) == 0 {
		return ""
	}

	for i, seg := range segments {
		segments[i] = Studly(seg)
	}

	resource := strings.Join(segments, NamespaceSeparator)
	if !strings.HasSuffix(resource, ResourceSuffix) {
		resource += ResourceSuffix
	}
	return resource
}

// IsIdentifier reports whether s is a valid PHP class or namespace segment.
func IsIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

// InvalidSegment returns the first segment of name that is not a valid
// identifier, and false if every segment is valid.
func InvalidSegment(name string) (string, bool) {
	for _, seg := range Segments(name) {
		if !IsIdentifier(seg) {
			return seg, true
		}
	}
	return "", false
}
