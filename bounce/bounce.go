// Package bounce extracts delivery-failure details from non-delivery
// report (NDR) emails. NDR bodies have no schema; both extractors are
// best-effort and report "not found" as an empty string, never as an
// error, so one unrecognizable notification cannot stop a run.
package bounce

import (
	"strings"

	"golang.org/x/net/html"
)

// recipientMarker precedes the undeliverable address in an NDR body.
const recipientMarker = "Recipient Address:"

// receiptLabel is the exact inner text of the label cell preceding the
// receipt number in an archived receipt email. The newline framing
// comes from the receipt template and is part of the match; the parser
// folds CRLF from transported copies to LF, so the match is against the
// LF-normalized form.
const receiptLabel = "\nReceipt Number:\n"

// senderMarker identifies the mail system that generates NDRs.
const senderMarker = "MICROSOFT"

// IsBounceNotice reports whether the sender address belongs to the mail
// system that produces genuine non-delivery reports.
func IsBounceNotice(from string) bool {
	return strings.Contains(strings.ToUpper(from), senderMarker)
}

// ExtractRecipient pulls the originally-undeliverable address out of an
// NDR body: the text between the recipient marker and the next '<', or
// end of body if none, trimmed. Returns "" when the marker is absent.
func ExtractRecipient(body string) string {
	if body == "" {
		return ""
	}

	start := strings.Index(body, recipientMarker)
	if start == -1 {
		return ""
	}
	start += len(recipientMarker)

	end := strings.IndexByte(body[start:], '<')
	if end == -1 {
		return strings.TrimSpace(body[start:])
	}
	return strings.TrimSpace(body[start : start+end])
}

// ExtractReceiptID pulls the receipt number out of an archived receipt
// email body: the text of the cell adjacent to the label cell in the
// same table row. Returns "" when the label cell is missing or the body
// does not parse.
func ExtractReceiptID(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	label := findCellWithText(doc, receiptLabel)
	if label == nil || label.Parent == nil {
		return ""
	}

	for sibling := label.Parent.FirstChild; sibling != nil; sibling = sibling.NextSibling {
		if sibling.Type == html.ElementNode && sibling.Data == "td" && sibling != label {
			return strings.TrimSpace(innerText(sibling))
		}
	}
	return ""
}

// findCellWithText walks the tree for a td whose inner text equals
// target exactly. Text nodes arrive LF-normalized from the parser.
func findCellWithText(n *html.Node, target string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "td" && innerText(n) == target {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findCellWithText(child, target); found != nil {
			return found
		}
	}
	return nil
}

// innerText concatenates every text node in the subtree, untrimmed.
func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
