package doctree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() (*Node, map[string]*Node) {
	doc := NewDocument("sample.md")
	para := NewBlock(KindParagraph, "こんにちは `code` 世界", 3)
	t1 := NewText("こんにちは ", 0)
	lit := New(KindLiteral).Append(NewText("code", 0))
	t2 := NewText(" 世界", 0)
	para.Append(t1, lit, t2)

	todo := New(KindTodo)
	todoPara := NewBlock(KindParagraph, "あとで", 5)
	todoText := NewText("あとで", 0)
	todo.Append(todoPara.Append(todoText))

	doc.Append(para, todo)
	return doc, map[string]*Node{
		"para": para, "t1": t1, "lit": lit, "t2": t2, "todo": todo, "todoText": todoText,
	}
}

func TestTextNodes_SkipsExcludedSubtrees(t *testing.T) {
	doc, n := buildSample()

	got := doc.TextNodes()
	require.Len(t, got, 2)
	assert.Same(t, n["t1"], got[0])
	assert.Same(t, n["t2"], got[1])
}

func TestTextNodes_FromInsideExcludedSubtree(t *testing.T) {
	_, n := buildSample()
	assert.Empty(t, n["todoText"].Parent().TextNodes())
}

func TestExcluded(t *testing.T) {
	_, n := buildSample()
	assert.False(t, n["t1"].Excluded())
	assert.True(t, n["lit"].Children()[0].Excluded())
	assert.True(t, n["todoText"].Excluded())
}

func TestEffectiveLineAndSourceBlock(t *testing.T) {
	_, n := buildSample()
	assert.Equal(t, 3, n["t1"].EffectiveLine())
	assert.Same(t, n["para"], n["t1"].SourceBlock())
	assert.Equal(t, 0, NewText("orphan", 0).EffectiveLine())
	assert.Nil(t, NewText("orphan", 0).SourceBlock())
}

func TestText_Flattens(t *testing.T) {
	_, n := buildSample()
	assert.Equal(t, "こんにちは code 世界", n["para"].Text())
}

func TestInsertAfter(t *testing.T) {
	_, n := buildSample()
	marker := New(KindSystemMessage)

	require.True(t, n["t1"].InsertAfter(marker))
	children := n["para"].Children()
	require.Len(t, children, 4)
	assert.Same(t, n["t1"], children[0])
	assert.Same(t, marker, children[1])
	assert.Same(t, n["lit"], children[2])
	assert.Same(t, n["para"], marker.Parent())

	assert.False(t, NewText("orphan", 0).InsertAfter(New(KindSystemMessage)))
}

func TestInsertAfter_LastChild(t *testing.T) {
	_, n := buildSample()
	marker := New(KindSystemMessage)
	require.True(t, n["t2"].InsertAfter(marker))
	children := n["para"].Children()
	assert.Same(t, marker, children[len(children)-1])
}

func TestTags(t *testing.T) {
	assert.True(t, New(KindLiteralBlock).Tags.Has(TagLiteral))
	assert.True(t, New(KindSystemMessage).Tags.Has(TagExcluded))
	assert.False(t, New(KindParagraph).Tags.Has(ExcludedTags))
	assert.Equal(t, "raw,comment", (TagRaw | TagComment).String())
	assert.True(t, New(KindElement, TagComment).Tags.Has(TagComment))
}

func TestName(t *testing.T) {
	doc, n := buildSample()
	assert.Equal(t, "sample.md", doc.Name())
	assert.Equal(t, "sample.md", n["t2"].Name())
}

func TestDump(t *testing.T) {
	doc, _ := buildSample()
	var b strings.Builder
	require.NoError(t, Dump(&b, doc))
	out := b.String()
	assert.Contains(t, out, `<document source="sample.md">`)
	assert.Contains(t, out, `    <paragraph line="3">`)
	assert.Contains(t, out, "        こんにちは ")
	assert.Contains(t, out, "<todo>")
}
