package checks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/unicode/norm"
)

var (
	slugDropPattern      = regexp.MustCompile(`[^\w\s-]`)
	slugSeparatorPattern = regexp.MustCompile(`[-\s]+`)
	slugCountPattern     = regexp.MustCompile(`^(.*)_([0-9]+)$`)
)

// slugify turns heading text into the anchor the MkDocs toc extension
// would give it. Non-ASCII letters are folded to their base letter first.
func slugify(text string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(text) {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	s := strings.ToLower(strings.TrimSpace(slugDropPattern.ReplaceAllString(b.String(), "")))
	return slugSeparatorPattern.ReplaceAllString(s, "-")
}

// tocIDs generates heading ids compatible with the MkDocs toc extension.
// Duplicates get a _1, _2, ... suffix. It is scoped to one document.
type tocIDs struct {
	seen map[string]bool
}

var _ parser.IDs = (*tocIDs)(nil)

func newTocIDs() *tocIDs {
	return &tocIDs{seen: make(map[string]bool)}
}

func (t *tocIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	id := slugify(string(value))
	for id == "" || t.seen[id] {
		if m := slugCountPattern.FindStringSubmatch(id); m != nil {
			n, _ := strconv.Atoi(m[2])
			id = fmt.Sprintf("%s_%d", m[1], n+1)
		} else {
			id += "_1"
		}
	}
	t.seen[id] = true
	return []byte(id)
}

func (t *tocIDs) Put(value []byte) {
	t.seen[string(value)] = true
}
