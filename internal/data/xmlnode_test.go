package data

import (
	"strings"
	"testing"
)

func TestParseXMLTree(t *testing.T) {
	n, err := parseXMLTree(strings.NewReader(`<?xml version="1.0"?>
<List>
  <skill ID="100" Name="Power Strike">
    <table name="#power">10 20 30</table>
    <set name="power" val="#power"/>
  </skill>
</List>`))
	if err != nil {
		t.Fatalf("parseXMLTree: %v", err)
	}
	if n.Name() != "list" {
		t.Errorf("root = %q, element names are lowered", n.Name())
	}
	if len(n.children) != 1 {
		t.Fatalf("root children = %d", len(n.children))
	}

	sk := n.children[0]
	if v, ok := sk.Attr("id"); !ok || v != "100" {
		t.Errorf("attr lookup must be case-insensitive, got (%q, %v)", v, ok)
	}
	if sk.AttrDefault("levels", "1") != "1" {
		t.Error("AttrDefault on absent attribute")
	}

	// Child order follows the document.
	if sk.children[0].name != "table" || sk.children[1].name != "set" {
		t.Errorf("child order lost: %s, %s", sk.children[0].name, sk.children[1].name)
	}
	if got := sk.children[0].Text(); got != "10 20 30" {
		t.Errorf("table text = %q", got)
	}
	if sk.children[0].line == 0 {
		t.Error("nodes must carry their source line")
	}
}

func TestParseXMLTreeErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"truncated":      `<list><skill id="1"`,
		"unbalanced":     `<list><skill></list>`,
		"multiple roots": `<list/><list/>`,
	}
	for name, body := range cases {
		if _, err := parseXMLTree(strings.NewReader(body)); err == nil {
			t.Errorf("%s document must fail", name)
		}
	}
}
