package csstree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/px2vw/csstree"
)

func TestParseBasicRule(t *testing.T) {
	root, err := csstree.Parse(".btn {\n  width: 10px;\n  color: red;\n}", "app.css")
	require.NoError(t, err)

	var rules []*csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rules = append(rules, r) })
	require.Len(t, rules, 1)

	rule := rules[0]
	assert.Equal(t, ".btn", rule.Selector)
	assert.Equal(t, "", rule.ParentParams())
	assert.Equal(t, "app.css", rule.Pos().File)
	assert.Equal(t, 1, rule.Pos().Line)

	decls := rule.Declarations()
	require.Len(t, decls, 2)
	assert.Equal(t, "width", decls[0].Prop)
	assert.Equal(t, "10px", decls[0].Value)
	assert.Equal(t, 2, decls[0].Pos().Line)
	assert.Equal(t, 3, decls[0].Pos().Column)
	assert.Equal(t, "color", decls[1].Prop)
	assert.Equal(t, "red", decls[1].Value)
	assert.Equal(t, 3, decls[1].Pos().Line)
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		css  string
	}{
		{
			name: "multi line rule",
			css:  ".a {\n  color: red;\n}",
		},
		{
			name: "single line rule",
			css:  ".a { margin: 0 auto; }",
		},
		{
			name: "two rules with blank line",
			css:  ".a {\n  color: red;\n}\n\n.b {\n  color: blue;\n}",
		},
		{
			name: "leading comment",
			css:  "/* header */\n.a {\n  color: red;\n}",
		},
		{
			name: "comment between declarations",
			css:  ".a { width: 1px; /* c */ height: 2px; }",
		},
		{
			name: "media block",
			css:  "@media (min-width: 500px) {\n  .a {\n    width: 10px;\n  }\n}",
		},
		{
			name: "statement at-rule",
			css:  "@import url(\"a.css\");\n\nbody {\n  margin: 0;\n}",
		},
		{
			name: "multiple selectors",
			css:  ".a,\n.b {\n  color: red;\n}",
		},
		{
			name: "important value",
			css:  ".a {\n  width: 10px !important;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := csstree.Parse(tt.css, "")
			require.NoError(t, err)
			assert.Equal(t, tt.css, root.String())
		})
	}
}

func TestParseComments(t *testing.T) {
	root, err := csstree.Parse(".a {\n  width: 1px; /* trailing */\n  /*  padded  */\n}", "")
	require.NoError(t, err)

	var rule *csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rule = r })
	require.NotNil(t, rule)
	require.Len(t, rule.Nodes(), 3)

	trailing, ok := rule.Nodes()[1].(*csstree.Comment)
	require.True(t, ok)
	assert.Equal(t, "trailing", trailing.Text())
	assert.Equal(t, " ", trailing.Before())

	padded, ok := rule.Nodes()[2].(*csstree.Comment)
	require.True(t, ok)
	assert.Equal(t, "padded", padded.Text())
	assert.Contains(t, padded.Before(), "\n")
}

func TestDeclarationSiblings(t *testing.T) {
	root, err := csstree.Parse(".a { width: 1px; /* c */ height: 2px; }", "")
	require.NoError(t, err)

	var rule *csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rule = r })
	decls := rule.Declarations()
	require.Len(t, decls, 2)

	assert.Nil(t, decls[0].Prev())
	comment, ok := decls[0].Next().(*csstree.Comment)
	require.True(t, ok)
	assert.Equal(t, "c", comment.Text())
	assert.Same(t, comment, decls[1].Prev().(*csstree.Comment))
	assert.Nil(t, decls[1].Next())
}

func TestParseNestedAtRule(t *testing.T) {
	root, err := csstree.Parse("@media screen and (orientation: landscape) {\n  .a {\n    width: 10px;\n  }\n}", "")
	require.NoError(t, err)

	var rule *csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rule = r })
	require.NotNil(t, rule)
	assert.Equal(t, "screen and (orientation: landscape)", rule.ParentParams())
}

func TestWalkRulesOrder(t *testing.T) {
	css := ".first {\n  color: red;\n}\n@media print {\n  .second {\n    color: blue;\n  }\n}\n.third {\n  color: green;\n}"
	root, err := csstree.Parse(css, "")
	require.NoError(t, err)

	var selectors []string
	root.WalkRules(func(r *csstree.Rule) { selectors = append(selectors, r.Selector) })
	assert.Equal(t, []string{".first", ".second", ".third"}, selectors)
}

func TestRuleMutation(t *testing.T) {
	root, err := csstree.Parse(".a {\n  width: 10px;\n  height: 20px;\n}", "")
	require.NoError(t, err)

	var rule *csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rule = r })
	decls := rule.Declarations()

	assert.True(t, rule.HasDeclaration("width", "10px"))
	assert.False(t, rule.HasDeclaration("width", "11px"))

	clone := decls[0].CloneWithValue("3.125vw")
	rule.InsertAfter(decls[0], clone)
	require.Len(t, rule.Declarations(), 3)
	assert.Same(t, clone, decls[0].Next())
	assert.True(t, rule.HasDeclaration("width", "3.125vw"))

	rule.RemoveChild(clone)
	require.Len(t, rule.Declarations(), 2)
	assert.Same(t, decls[1], decls[0].Next())
}

func TestCloneEmpty(t *testing.T) {
	root, err := csstree.Parse(".a {\n  width: 10px;\n}", "orig.css")
	require.NoError(t, err)

	var rule *csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rule = r })

	clone := rule.CloneEmpty()
	assert.Equal(t, ".a", clone.Selector)
	assert.Equal(t, "orig.css", clone.Pos().File)
	assert.Empty(t, clone.Nodes())

	clone.Append(&csstree.Declaration{Prop: "width", Value: "5vw"})
	assert.Len(t, clone.Nodes(), 1)
	// The original rule is untouched.
	assert.Len(t, rule.Nodes(), 1)
	assert.True(t, rule.HasDeclaration("width", "10px"))
}

func TestSynthesizedMediaBlock(t *testing.T) {
	root := &csstree.Root{}
	media := csstree.NewAtRule("media", "(orientation: landscape)")
	rule := &csstree.Rule{Selector: ".a"}
	rule.Append(&csstree.Declaration{Prop: "width", Value: "10vw"})
	media.Append(rule)
	root.Append(media)

	want := "@media (orientation: landscape) {\n  .a {\n    width: 10vw;\n  }\n}"
	assert.Equal(t, want, root.String())
}

func TestParseMissingSemicolonBeforeBrace(t *testing.T) {
	root, err := csstree.Parse(".a {\n  width: 10px\n}", "")
	require.NoError(t, err)

	var rule *csstree.Rule
	root.WalkRules(func(r *csstree.Rule) { rule = r })
	decls := rule.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, "10px", decls[0].Value)
	// The printer normalizes the missing semicolon.
	assert.Equal(t, ".a {\n  width: 10px;\n}", root.String())
}
