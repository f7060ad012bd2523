package classcube

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const accountNamePrefix = "当前账号："

var (
	punchTaskPattern = regexp.MustCompile(`punch_gps\((\d+)\)`)
	classLinkPattern = regexp.MustCompile(`/student/course/(\d+)`)
)

func walk(node *html.Node, visit func(*html.Node)) {
	visit(node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(node *html.Node) string {
	var builder strings.Builder
	walk(node, func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
	})
	return strings.TrimSpace(builder.String())
}

// findPunchTaskIDs collects the numeric IDs from every element carrying an
// onclick of the form punch_gps(N). Only GPS tasks have this handler; QR and
// code check-ins use different ones and are skipped.
func findPunchTaskIDs(root *html.Node) []string {
	var ids []string
	seen := map[string]bool{}

	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		match := punchTaskPattern.FindStringSubmatch(attr(n, "onclick"))
		if match == nil || seen[match[1]] {
			return
		}
		seen[match[1]] = true
		ids = append(ids, match[1])
	})

	return ids
}

func findAccountLink(root *html.Node) *html.Node {
	var link *html.Node
	walk(root, func(n *html.Node) {
		if link == nil && n.Type == html.ElementNode && n.Data == "a" && attr(n, "href") == "/student/account" {
			link = n
		}
	})
	return link
}

// accountName extracts the display name from the account link text, which
// reads like "当前账号：王小明(3241319117)".
func accountName(root *html.Node) string {
	link := findAccountLink(root)
	if link == nil {
		return ""
	}

	text := nodeText(link)
	if idx := strings.Index(text, accountNamePrefix); idx >= 0 {
		text = text[idx+len(accountNamePrefix):]
	}
	return strings.TrimSpace(text)
}

// findClassLinks lists the courses linked from the student home page,
// deduplicated by class ID.
func findClassLinks(root *html.Node) []classLink {
	var links []classLink
	seen := map[string]bool{}

	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "a" {
			return
		}
		match := classLinkPattern.FindStringSubmatch(attr(n, "href"))
		if match == nil || seen[match[1]] {
			return
		}
		seen[match[1]] = true
		links = append(links, classLink{ID: match[1], Name: nodeText(n)})
	})

	return links
}

type classLink struct {
	ID   string
	Name string
}

func findElementByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
		}
	})
	return found
}

func findElementByClass(root *html.Node, class string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		for _, candidate := range strings.Fields(attr(n, "class")) {
			if candidate == class {
				found = n
				return
			}
		}
	})
	return found
}
