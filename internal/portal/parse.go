package portal

import (
	"strings"

	"golang.org/x/net/html"
)

// findByClass walks the node tree depth-first and returns the first
// element with the given tag whose class attribute contains name.
func findByClass(n *html.Node, tag, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, cls := range strings.Fields(attr(n, "class")) {
			if cls == name {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByClass(child, tag, name); found != nil {
			return found
		}
	}
	return nil
}

// findByTag returns the first descendant element with the given tag.
func findByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText extracts the visible text of a subtree, skipping script and
// style bodies, with single spaces between text runs.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
