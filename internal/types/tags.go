package types

import "strings"

// XacroPrefix is the namespace prefix xacro directives may carry;
// <include> and <xacro:include> are the same directive.
const XacroPrefix = "xacro:"

// TagKind classifies an element tag after prefix normalization.
type TagKind string

const (
	TagInclude  TagKind = "include"
	TagProperty TagKind = "property"
	TagMacro    TagKind = "macro"
	TagOther    TagKind = ""
)

// NormalizeTag strips the fixed xacro prefix from a tag name.
func NormalizeTag(tag string) string {
	return strings.TrimPrefix(tag, XacroPrefix)
}

// KindOfTag maps a (possibly prefixed) tag name onto the closed set of
// directive kinds.
func KindOfTag(tag string) TagKind {
	switch NormalizeTag(tag) {
	case "include":
		return TagInclude
	case "property":
		return TagProperty
	case "macro":
		return TagMacro
	default:
		return TagOther
	}
}
