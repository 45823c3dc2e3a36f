package Trees

import (
	"fmt"
	"io"
)

// to control the print routine
type branch byte

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Print draws the tree sideways to w, the right subtree above its parent and the
// left below, each node as "key h=height b=balance". Returns the height of the tree.
// Recursive.
func (u *AVL[T, S]) Print(w io.Writer) int {
	return u.printNode(w, u.root, "", atRoot)
}

func (u *AVL[T, S]) printNode(w io.Writer, i S, prefix string, br branch) int {
	if i == 0 {
		return 0
	}
	cur := u.ifs[i]
	t := "       "
	if br == atLeft {
		t = "|      "
	}
	rd := u.printNode(w, cur.r, prefix+t, atRight)
	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d b=%+d\n", *u.key(i), cur.h, u.balance(i))
	t = "       "
	if br == atRight {
		t = "|      "
	}
	ld := u.printNode(w, cur.l, prefix+t, atLeft)
	return 1 + max(rd, ld)
}

// Dot outputs the structure of the tree in Graphviz DOT format (for debugging purposes).
// Nodes are named by their arena index; absent children are drawn as small empty circles.
func (u *AVL[T, S]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist string
	u.walk(false, func(i S) bool {
		cur := u.ifs[i]
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%v\\nh=%d\"];\n", i, *u.key(i), cur.h)
		if cur.l == 0 && cur.r == 0 {
			return true
		}
		for side, c := range [2]S{cur.l, cur.r} {
			if c != 0 {
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, c)
			} else {
				nilid := fmt.Sprintf("nil%d_%d", i, side)
				nodelist += fmt.Sprintf("\t\"%s\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.2];\n", nilid)
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%s\";\n", i, nilid)
			}
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
