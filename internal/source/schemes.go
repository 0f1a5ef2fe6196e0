package source

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kk-code-lab/mdview/internal/textutil"
)

// DefaultSchemes are the link schemes accepted out of the box.
var DefaultSchemes = []string{"http", "https", "ftp", "steam", "irc", "news", "mumble", "ssh"}

// SchemeSet decides which link destinations are followable.
type SchemeSet struct {
	schemes  map[string]struct{}
	relative bool
}

// NewSchemeSet builds an allow-list. Scheme names are case-insensitive.
// allowRelative admits destinations starting with a single '/'.
func NewSchemeSet(schemes []string, allowRelative bool) *SchemeSet {
	set := &SchemeSet{schemes: make(map[string]struct{}, len(schemes)), relative: allowRelative}
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set.schemes[s] = struct{}{}
		}
	}
	return set
}

// DefaultSchemeSet accepts DefaultSchemes and relative paths.
func DefaultSchemeSet() *SchemeSet {
	return NewSchemeSet(DefaultSchemes, true)
}

// Names returns the accepted schemes in sorted order.
func (s *SchemeSet) Names() []string {
	names := make([]string, 0, len(s.schemes))
	for name := range s.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Allowed reports whether dest may become a link.
func (s *SchemeSet) Allowed(dest string) bool {
	if dest == "" || textutil.HasControlRunes(dest) || textutil.HasFormattingRunes(dest) {
		return false
	}
	if strings.IndexFunc(dest, unicode.IsSpace) >= 0 {
		return false
	}
	if strings.HasPrefix(dest, "/") {
		return s.relative && !strings.HasPrefix(dest, "//")
	}
	idx := strings.Index(dest, "://")
	if idx <= 0 {
		return false
	}
	scheme := strings.ToLower(dest[:idx])
	if !validScheme(scheme) {
		return false
	}
	_, ok := s.schemes[scheme]
	return ok && len(dest) > idx+3
}

func validScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
