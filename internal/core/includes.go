package core

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xacro-convert/internal/ports"
	"xacro-convert/internal/types"
	"xacro-convert/internal/xmltree"
)

var findPattern = regexp.MustCompile(`\$\(\s*find\s+([^)\s]+)\s*\)`)

// IncludeResolver inlines include directives in place. Content spliced
// from an included file is itself rescanned, so transitively nested
// includes resolve before the parent's resolution completes. Relative
// paths at every nesting level resolve against the root document's
// directory. There is no cycle detection: a self-including file
// recurses until the stack is exhausted (known limitation, kept
// deliberately so authoring errors stay visible).
type IncludeResolver struct {
	Documents ports.DocumentPort
	Finder    ports.PackageFinderPort
}

func NewIncludeResolver(documents ports.DocumentPort, finder ports.PackageFinderPort) IncludeResolver {
	return IncludeResolver{Documents: documents, Finder: finder}
}

// Resolve mutates doc in place and returns the ordered list of
// resolved include paths. A file included twice appears twice.
func (r IncludeResolver) Resolve(ctx context.Context, doc *xmltree.Document, baseDir string) ([]string, error) {
	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	var includes []string
	children, err := r.resolveNodes(ctx, root.Children, root, baseDir, &includes)
	if err != nil {
		return nil, err
	}
	root.Children = children
	log.Ctx(ctx).Debug().Int("includes", len(includes)).Msg("includes resolved")
	return includes, nil
}

func (r IncludeResolver) resolveNodes(ctx context.Context, nodes []xmltree.Node, docRoot *xmltree.Element, baseDir string, includes *[]string) ([]xmltree.Node, error) {
	var out []xmltree.Node
	for _, node := range nodes {
		el, ok := node.(*xmltree.Element)
		if !ok {
			out = append(out, node)
			continue
		}
		if types.KindOfTag(el.Tag) == types.TagInclude {
			spliced, err := r.inline(ctx, el, docRoot, baseDir, includes)
			if err != nil {
				return nil, err
			}
			// Rescan the spliced content for nested includes.
			resolved, err := r.resolveNodes(ctx, spliced, docRoot, baseDir, includes)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved...)
			continue
		}
		children, err := r.resolveNodes(ctx, el.Children, docRoot, baseDir, includes)
		if err != nil {
			return nil, err
		}
		el.Children = children
		out = append(out, el)
	}
	return out, nil
}

// inline loads the include target and returns the top-level child
// elements of its root, to be spliced where the include element stood.
func (r IncludeResolver) inline(ctx context.Context, include *xmltree.Element, docRoot *xmltree.Element, baseDir string, includes *[]string) ([]xmltree.Node, error) {
	raw, _ := include.Attr("filename")
	// Runs before property extraction: only literal text and numeric
	// expressions can appear in a filename here.
	filename, err := EvalText(raw, NewSymbolTable(nil))
	if err != nil {
		return nil, err
	}
	filename = r.expandFindTokens(filename, baseDir)
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(baseDir, filename)
	}

	included, err := r.Documents.Load(filename)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("failed to include %q", filename)).
			WithCause(err)
	}
	*includes = append(*includes, filename)
	log.Ctx(ctx).Debug().Str("path", filename).Msg("include inlined")

	includedRoot := included.Root()
	var spliced []xmltree.Node
	for _, child := range includedRoot.ChildElements() {
		spliced = append(spliced, child)
	}
	// Namespace declarations on the included root move up to the
	// including document's root.
	for _, attr := range includedRoot.Attrs {
		if strings.HasPrefix(attr.Name, "xmlns:") {
			docRoot.SetAttr(attr.Name, attr.Value)
		}
	}
	return spliced, nil
}

// expandFindTokens substitutes $(find pkg) tokens, leaving unresolved
// ones in place.
func (r IncludeResolver) expandFindTokens(path string, baseDir string) string {
	return findPattern.ReplaceAllStringFunc(path, func(token string) string {
		name := findPattern.FindStringSubmatch(token)[1]
		if dir, ok := r.Finder.FindPackageDir(name, baseDir); ok {
			return dir
		}
		return token
	})
}
