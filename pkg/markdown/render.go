// Package markdown turns generated itinerary markdown into HTML that is safe
// to embed in the site and in emails.
package markdown

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

var blockedElements = "script, style, iframe, object, embed, form, link, meta"

// ToHTML renders src and strips active content. Raw HTML in the source is
// dropped by the renderer; the goquery pass covers the rest.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}

	return sanitize(buf.String())
}

func sanitize(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	doc.Find(blockedElements).Remove()

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		var drop []string
		for _, attr := range s.Nodes[0].Attr {
			key := strings.ToLower(attr.Key)
			if strings.HasPrefix(key, "on") {
				drop = append(drop, attr.Key)
			}
			if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
				drop = append(drop, attr.Key)
			}
		}
		for _, key := range drop {
			s.RemoveAttr(key)
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		s.SetAttr("target", "_blank")
		s.SetAttr("rel", "noopener noreferrer")
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Title returns the text of the first heading, or "" when there is none.
func Title(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
