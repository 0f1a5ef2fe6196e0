package compiler

import "github.com/kk-code-lab/mdview/internal/doctree"

// binder forwards link nodes to the registrar. A nil registrar drops them.
type binder struct {
	registrar LinkRegistrar
}

func (b binder) bind(link *doctree.Link, target string) *doctree.Link {
	if b.registrar != nil {
		b.registrar.RegisterLink(link, target)
	}
	return link
}
