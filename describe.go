// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

import (
	"strings"

	tp "github.com/xlab/treeprint"
)

// Describe renders a clause sequence as an indented tree, one node per
// clause in sequence order. The rendering is diagnostic: it names clause
// kinds, bound names, and declared uses, but never invokes clause
// closures, so it is safe on malformed sequences.
func Describe(clauses []Clause) string {
	tree := tp.New()
	tree.SetValue("for")
	for _, c := range clauses {
		switch c := c.(type) {
		case BindClause:
			branch := tree.AddBranch("bind " + c.Name)
			if len(c.Uses) > 0 {
				branch.AddNode("uses " + strings.Join(c.Uses, ", "))
			}
		case GuardClause:
			tree.AddNode("guard on " + strings.Join(c.Uses, ", "))
		case YieldClause:
			if len(c.Uses) > 0 {
				tree.AddNode("yield " + strings.Join(c.Uses, ", "))
			} else {
				tree.AddNode("yield")
			}
		}
	}
	return tree.String()
}
