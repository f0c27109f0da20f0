package colfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/colfmt"
)

var (
	_ colfmt.Renderer = colfmt.Screen{}
	_ colfmt.Renderer = colfmt.Markdown{}
)

func TestTableRender(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows(peopleRows, true, colfmt.AlignAuto)
	assert.Equal(t, "Name   Age\n-----  ---\nAlice   25\nBob     30", colfmt.NewTable().Render(m))
}

func TestScreenRender(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows(peopleRows, true, colfmt.AlignAuto)
	assert.Equal(t, "Alice   25\nBob     30", colfmt.NewScreen().Render(m))
}

func TestTableRenderWithoutHeadings(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows(peopleRows, false, colfmt.AlignAuto)
	assert.Equal(t, "Name   Age\nAlice   25\nBob     30", colfmt.NewTable().Render(m))
}

func TestTableRenderWithoutSeparator(t *testing.T) {
	t.Parallel()
	r := colfmt.NewTable()
	r.ShowSeparator = false
	m := colfmt.FromRows(peopleRows, true, colfmt.AlignAuto)
	assert.Equal(t, "Name   Age\nAlice   25\nBob     30", r.Render(m))
}

func TestTableRenderSpacer(t *testing.T) {
	t.Parallel()
	r := colfmt.NewTable()
	r.Spacer = " | "
	m := colfmt.FromRows(peopleRows, true, colfmt.AlignAuto)
	assert.Equal(t, "Name  | Age\n----- | ---\nAlice |  25\nBob   |  30", r.Render(m))
}

func TestTableRenderShrinks(t *testing.T) {
	t.Parallel()
	r := colfmt.NewTable()
	r.Width = 12
	m := colfmt.FromRows([][]string{{"Name", "Description"}, {"Bob", "a long text"}}, true, colfmt.AlignAuto)
	want := "Name  Descri\n" +
		"      ption\n" +
		"----  ------\n" +
		"Bob   a long\n" +
		"       text"
	assert.Equal(t, want, r.Render(m))
}

func TestTableRenderExplicitWidth(t *testing.T) {
	t.Parallel()
	score := colfmt.Column{Data: []string{"95", "87"}, Heading: "Score", Width: 8, Align: colfmt.AlignRight}
	m := colfmt.New([]colfmt.Column{score}, nil, colfmt.AlignAuto)
	assert.Equal(t, "   Score\n--------\n      95\n      87", colfmt.NewTable().Render(m))
}

func TestTableRenderHeadingStyle(t *testing.T) {
	t.Parallel()
	r := colfmt.NewTable()
	r.HeadingStyle = func(s string) string { return "<" + s + ">" }
	m := colfmt.FromRows(peopleRows, true, colfmt.AlignAuto)
	assert.Equal(t, "<Name   Age>\n-----  ---\nAlice   25\nBob     30", r.Render(m))
}

func TestRenderEmptyModel(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows(nil, true, colfmt.AlignAuto)
	assert.Equal(t, "", colfmt.NewTable().Render(m))
	assert.Equal(t, "", colfmt.NewScreen().Render(m))
	assert.Equal(t, "", colfmt.Markdown{}.Render(m))
}

func TestMarkdownRender(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows(peopleRows, true, colfmt.AlignAuto)
	want := "| Name  | Age |\n" +
		"| ----- | --: |\n" +
		"| Alice |  25 |\n" +
		"| Bob   |  30 |"
	assert.Equal(t, want, colfmt.Markdown{}.Render(m))
}

func TestMarkdownRenderCenter(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows([][]string{{"ID"}, {"A1"}}, true, colfmt.AlignCenter)
	assert.Equal(t, "| ID  |\n| :-: |\n| A1  |", colfmt.Markdown{}.Render(m))
}

func TestMarkdownRenderEscapesPipes(t *testing.T) {
	t.Parallel()
	m := colfmt.FromRows([][]string{{"k"}, {"a|b"}}, true, colfmt.AlignLeft)
	assert.Equal(t, "| k    |\n| ---- |\n| a\\|b |", colfmt.Markdown{}.Render(m))
}

func TestMarkdownRenderWithoutHeadings(t *testing.T) {
	t.Parallel()
	m := colfmt.FromColumns([][]string{{"x", "y"}}, nil, colfmt.AlignLeft)
	assert.Equal(t, "|     |\n| --- |\n| x   |\n| y   |", colfmt.Markdown{}.Render(m))
}
